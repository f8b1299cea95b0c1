package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/kailas-cloud/gamerec/internal/domain"
)

func TestNew_Valid(t *testing.T) {
	g, err := New("  Minecraft ", "Sandbox", "PC", 89.9, 9.5, "building", []string{"sandbox"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Title() != "Minecraft" {
		t.Errorf("Title() = %q, want %q", g.Title(), "Minecraft")
	}
	if g.ID() != 0 {
		t.Errorf("ID() = %d, want 0", g.ID())
	}
	if len(g.Tags()) != 1 {
		t.Errorf("Tags() len = %d, want 1", len(g.Tags()))
	}
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		genre    string
		platform string
		price    float64
		want     string
	}{
		{"empty title", " ", "RPG", "PC", 0, "title is required"},
		{"empty genre", "A", "", "PC", 0, "genre is required"},
		{"empty platform", "A", "RPG", "", 0, "platform is required"},
		{"negative price", "A", "RPG", "PC", -1, "price must be >= 0"},
		{"long title", strings.Repeat("x", MaxTitleLength+1), "RPG", "PC", 0, "title too long"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.title, tc.genre, tc.platform, tc.price, 0, "", nil)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error = %q, want substring %q", err.Error(), tc.want)
			}
		})
	}
}

func TestReconstruct_NilTagsBecomeEmpty(t *testing.T) {
	g := Reconstruct(7, "GTA", "Action", "PC", 1, 2, "d", nil)
	if g.Tags() == nil {
		t.Fatal("Tags() must never be nil")
	}
	if g.ID() != 7 {
		t.Errorf("ID() = %d, want 7", g.ID())
	}
}

func TestWithID(t *testing.T) {
	g := Reconstruct(0, "GTA", "Action", "PC", 1, 2, "d", nil)
	c := g.WithID(42)
	if c.ID() != 42 || g.ID() != 0 {
		t.Errorf("WithID mutated the receiver or failed: orig=%d copy=%d", g.ID(), c.ID())
	}
}

func TestParseTags(t *testing.T) {
	tests := []struct {
		raw     string
		want    []string
		wantErr bool
	}{
		{"", []string{}, false},
		{"   ", []string{}, false},
		{"null", []string{}, false},
		{"[]", []string{}, false},
		{`["rpg", "open-world"]`, []string{"rpg", "open-world"}, false},
		{`["rpg"`, []string{}, true},
		{`{"a":1}`, []string{}, true},
		{`[1, 2]`, []string{}, true},
	}
	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := ParseTags(tc.raw)
			if tc.wantErr {
				if !errors.Is(err, domain.ErrData) {
					t.Errorf("expected ErrData, got %v", err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if got == nil {
				t.Fatal("ParseTags must never return nil")
			}
			if strings.Join(got, ",") != strings.Join(tc.want, ",") {
				t.Errorf("ParseTags(%q) = %v, want %v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestEncodeTags(t *testing.T) {
	if got := EncodeTags(nil); got != "[]" {
		t.Errorf("EncodeTags(nil) = %q, want []", got)
	}
	if got := EncodeTags([]string{"a", "b"}); got != `["a","b"]` {
		t.Errorf("EncodeTags = %q", got)
	}
}

func TestCompose_FieldOrder(t *testing.T) {
	g := Reconstruct(1, "Witcher", "RPG", "PC", 0, 0, "open world", []string{"fantasy", "story"})
	want := "Witcher RPG PC open world fantasy story"
	if got := Compose(&g); got != want {
		t.Errorf("Compose() = %q, want %q", got, want)
	}
}

func TestCorpus_PreservesOrder(t *testing.T) {
	games := []Game{
		Reconstruct(1, "B", "g", "p", 0, 0, "", nil),
		Reconstruct(2, "A", "g", "p", 0, 0, "", nil),
	}
	docs := Corpus(games)
	if len(docs) != 2 || !strings.HasPrefix(docs[0], "B ") || !strings.HasPrefix(docs[1], "A ") {
		t.Errorf("Corpus() = %q", docs)
	}
}

func TestDedup_MinIDWins(t *testing.T) {
	games := []Game{
		Reconstruct(9, "Doom", "FPS", "PC", 0, 0, "later", nil),
		Reconstruct(3, "Anno", "Strategy", "PC", 0, 0, "", nil),
		Reconstruct(5, "Doom", "FPS", "PC", 0, 0, "earlier", nil),
	}
	got := Dedup(games)
	if len(got) != 2 {
		t.Fatalf("expected 2 games, got %d", len(got))
	}
	if got[0].Title() != "Anno" || got[1].Title() != "Doom" {
		t.Errorf("unexpected order: %s, %s", got[0].Title(), got[1].Title())
	}
	if got[1].ID() != 5 {
		t.Errorf("Doom ID = %d, want 5", got[1].ID())
	}
}

func TestDedup_Empty(t *testing.T) {
	if got := Dedup(nil); len(got) != 0 {
		t.Errorf("expected empty, got %d", len(got))
	}
}
