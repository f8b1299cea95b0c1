package gamerec

import (
	"context"

	"github.com/kailas-cloud/gamerec/internal/domain/game"
	"github.com/kailas-cloud/gamerec/internal/domain/recommendation"
	cataloguc "github.com/kailas-cloud/gamerec/internal/usecase/catalog"
	healthuc "github.com/kailas-cloud/gamerec/internal/usecase/health"
)

// --- catalogUseCase mock ---

type mockCatalogUC struct {
	listFn   func(ctx context.Context) ([]game.Game, error)
	lookupFn func(ctx context.Context, needle string) ([]game.Game, error)
	searchFn func(ctx context.Context, term string) ([]game.Game, error)
	seedFn   func(ctx context.Context, games []game.Game, allowDuplicates bool) (cataloguc.SeedResult, error)
}

func (m *mockCatalogUC) List(ctx context.Context) ([]game.Game, error) {
	return m.listFn(ctx)
}

func (m *mockCatalogUC) Lookup(ctx context.Context, needle string) ([]game.Game, error) {
	return m.lookupFn(ctx, needle)
}

func (m *mockCatalogUC) Search(ctx context.Context, term string) ([]game.Game, error) {
	return m.searchFn(ctx, term)
}

func (m *mockCatalogUC) Seed(
	ctx context.Context, games []game.Game, allowDuplicates bool,
) (cataloguc.SeedResult, error) {
	return m.seedFn(ctx, games, allowDuplicates)
}

// --- recommendUseCase mock ---

type mockRecommendUC struct {
	engine    recommendation.Engine
	byTitleFn func(ctx context.Context, title string, topN int) []recommendation.Entry
	byFeatFn  func(ctx context.Context, text string, topN int) []recommendation.Entry
}

func (m *mockRecommendUC) ByTitle(ctx context.Context, title string, topN int) []recommendation.Entry {
	return m.byTitleFn(ctx, title, topN)
}

func (m *mockRecommendUC) ByFeatures(ctx context.Context, text string, topN int) []recommendation.Entry {
	return m.byFeatFn(ctx, text, topN)
}

func (m *mockRecommendUC) Engine() recommendation.Engine { return m.engine }

// --- healthUseCase mock ---

type mockHealthUC struct {
	report healthuc.Report
}

func (m *mockHealthUC) Check(_ context.Context) healthuc.Report { return m.report }
