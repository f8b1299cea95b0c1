package recommend

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/kailas-cloud/gamerec/internal/domain"
	"github.com/kailas-cloud/gamerec/internal/domain/game"
	"github.com/kailas-cloud/gamerec/internal/domain/recommendation"
)

func TestService_PassesEngineResultThrough(t *testing.T) {
	catalog := threeGames()
	want := []recommendation.Entry{recommendation.Scored(catalog[2], 0.9)}
	rec := &mockRecorder{}
	svc := New(&mockEngine{kind: recommendation.EngineVector, entries: want}, catalog).WithRecorder(rec)

	got := svc.ByTitle(context.Background(), "anything", 3)
	if !slices.Equal(titles(got), []string{"Witcher"}) {
		t.Errorf("ByTitle() = %v", titles(got))
	}
	if len(rec.calls) != 1 || rec.calls[0].outcome != OutcomeOK || rec.calls[0].mode != recommendation.ModeTitle {
		t.Errorf("unexpected recorder calls: %+v", rec.calls)
	}
}

func TestService_EngineErrorDegradesToCatalogHead(t *testing.T) {
	rec := &mockRecorder{}
	svc := New(&mockEngine{
		kind: recommendation.EngineVector,
		err:  domain.ErrQuery,
	}, threeGames()).WithRecorder(rec)

	for _, got := range [][]recommendation.Entry{
		svc.ByTitle(context.Background(), "Witcher", 2),
		svc.ByFeatures(context.Background(), "rpg", 2),
	} {
		if want := []string{"Cyberpunk", "GTA"}; !slices.Equal(titles(got), want) {
			t.Errorf("degraded result = %v, want %v", titles(got), want)
		}
		for i := range got {
			if _, ok := got[i].Score(); ok {
				t.Error("default slice must not carry scores")
			}
		}
	}
	if len(rec.calls) != 2 {
		t.Fatalf("expected 2 recorded calls, got %d", len(rec.calls))
	}
	for _, c := range rec.calls {
		if c.outcome != OutcomeDegraded {
			t.Errorf("outcome = %q, want %q", c.outcome, OutcomeDegraded)
		}
	}
}

func TestService_EnginePanicDegrades(t *testing.T) {
	svc := New(&mockEngine{kind: recommendation.EngineVector, panicWith: "index out of range"}, threeGames())

	got := svc.ByFeatures(context.Background(), "rpg", 1)
	if want := []string{"Cyberpunk"}; !slices.Equal(titles(got), want) {
		t.Errorf("ByFeatures() = %v, want %v", titles(got), want)
	}
}

func TestService_DegradedTopNZero(t *testing.T) {
	svc := New(&mockEngine{kind: recommendation.EngineKeyword, err: errors.New("boom")}, threeGames())
	if got := svc.ByTitle(context.Background(), "x", 0); len(got) != 0 {
		t.Errorf("expected empty result, got %d", len(got))
	}
}

func TestService_Engine(t *testing.T) {
	svc := New(&mockEngine{kind: recommendation.EngineKeyword}, nil)
	if svc.Engine() != recommendation.EngineKeyword {
		t.Errorf("Engine() = %q", svc.Engine())
	}
	if svc.CatalogSize() != 0 {
		t.Errorf("CatalogSize() = %d", svc.CatalogSize())
	}
}

func TestService_EndToEndScenarios(t *testing.T) {
	ctx := context.Background()
	catalog := threeGames()

	vec, sel, err := Build(ctx, &mockLoader{games: catalog}, StrategyAuto, DefaultIndexConfig())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if sel.FallbackReason != nil || vec.Engine() != recommendation.EngineVector {
		t.Fatalf("expected vector engine, got %q (%v)", vec.Engine(), sel.FallbackReason)
	}
	if got := titles(vec.ByTitle(ctx, "Witcher", 2)); !slices.Equal(got, []string{"Cyberpunk", "GTA"}) {
		t.Errorf("vector ByTitle = %v", got)
	}

	kw := New(NewKeywordRecommender(catalog), catalog)
	if got := titles(kw.ByTitle(ctx, "Witcher", 2)); !slices.Equal(got, []string{"Cyberpunk"}) {
		t.Errorf("keyword ByTitle = %v", got)
	}

	for _, svc := range []*Service{vec, kw} {
		if got := titles(svc.ByTitle(ctx, "zzz-nomatch", 2)); !slices.Equal(got, []string{"Cyberpunk", "GTA"}) {
			t.Errorf("%s nomatch = %v", svc.Engine(), got)
		}
		if got := svc.ByFeatures(ctx, "rpg", 0); len(got) != 0 {
			t.Errorf("%s topN=0 = %d entries", svc.Engine(), len(got))
		}
		if got := svc.ByTitle(ctx, "Witcher", 50); len(got) > len(catalog) {
			t.Errorf("%s oversized topN = %d entries", svc.Engine(), len(got))
		}
	}
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name         string
		catalog      []game.Game
		strategy     Strategy
		wantEngine   recommendation.Engine
		wantFallback bool
		wantErr      bool
	}{
		{"auto vector", threeGames(), StrategyAuto, recommendation.EngineVector, false, false},
		{"auto degenerate", degenerateGames(), StrategyAuto, recommendation.EngineKeyword, true, false},
		{"auto empty", nil, StrategyAuto, recommendation.EngineKeyword, true, false},
		{"forced keyword", threeGames(), StrategyKeyword, recommendation.EngineKeyword, false, false},
		{"strict vector", threeGames(), StrategyVector, recommendation.EngineVector, false, false},
		{"strict vector degenerate", degenerateGames(), StrategyVector, "", false, true},
		{"unknown", threeGames(), Strategy("bm25"), "", false, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sel, err := Select(tc.catalog, tc.strategy, DefaultIndexConfig())
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if sel.Engine.Kind() != tc.wantEngine {
				t.Errorf("engine = %q, want %q", sel.Engine.Kind(), tc.wantEngine)
			}
			if (sel.FallbackReason != nil) != tc.wantFallback {
				t.Errorf("FallbackReason = %v, wantFallback %v", sel.FallbackReason, tc.wantFallback)
			}
			if tc.wantFallback && !errors.Is(sel.FallbackReason, domain.ErrConstruction) {
				t.Errorf("FallbackReason should wrap ErrConstruction: %v", sel.FallbackReason)
			}
		})
	}
}

func TestBuild_LoaderFailure(t *testing.T) {
	loader := &mockLoader{err: errors.New("disk gone")}

	svc, sel, err := Build(context.Background(), loader, StrategyAuto, DefaultIndexConfig())
	if err != nil {
		t.Fatalf("auto must not fail: %v", err)
	}
	if svc.Engine() != recommendation.EngineKeyword || !errors.Is(sel.FallbackReason, domain.ErrUnavailable) {
		t.Errorf("expected keyword fallback with ErrUnavailable, got %q (%v)", svc.Engine(), sel.FallbackReason)
	}
	if got := svc.ByTitle(context.Background(), "x", 3); len(got) != 0 {
		t.Errorf("empty catalog should yield no entries, got %d", len(got))
	}

	if _, _, err := Build(context.Background(), loader, StrategyVector, DefaultIndexConfig()); err == nil {
		t.Error("strict vector must fail when the catalog cannot be loaded")
	}
}

func TestStrategy_IsValid(t *testing.T) {
	for _, s := range []Strategy{StrategyAuto, StrategyVector, StrategyKeyword} {
		if !s.IsValid() {
			t.Errorf("%q must be valid", s)
		}
	}
	for _, s := range []Strategy{"", "bm25", "Vector"} {
		if s.IsValid() {
			t.Errorf("%q must be invalid", s)
		}
	}
}
