package catalog

import (
	"context"
	"slices"
	"testing"

	"github.com/kailas-cloud/gamerec/internal/db/sqlite"
	"github.com/kailas-cloud/gamerec/internal/domain/game"
)

func newRepo(t *testing.T) (*Repo, *sqlite.Store) {
	t.Helper()
	s := sqlite.NewTestStore(t)
	return New(s), s
}

func mustInsert(t *testing.T, r *Repo, title, genre string, tags []string) game.Game {
	t.Helper()
	g, err := game.New(title, genre, "PC", 10, 8, title+" description", tags)
	if err != nil {
		t.Fatalf("game.New: %v", err)
	}
	stored, err := r.Insert(context.Background(), &g)
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	return stored
}

func rawInsert(t *testing.T, s *sqlite.Store, id int64, title string, tags any) {
	t.Helper()
	_, err := s.ExecContext(context.Background(),
		`INSERT INTO games (id, title, genre, platform, price, rating, description, tags) VALUES (?, ?, 'RPG', 'PC', NULL, NULL, NULL, ?)`,
		id, title, tags)
	if err != nil {
		t.Fatalf("raw insert: %v", err)
	}
}

func TestInsert_AssignsID(t *testing.T) {
	r, _ := newRepo(t)
	a := mustInsert(t, r, "Witcher", "RPG", []string{"rpg"})
	b := mustInsert(t, r, "GTA", "Action", nil)
	if a.ID() == 0 || b.ID() <= a.ID() {
		t.Errorf("unexpected IDs: %d, %d", a.ID(), b.ID())
	}

	n, err := r.Count(context.Background())
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 2 {
		t.Errorf("Count() = %d, want 2", n)
	}
}

func TestLoadAll_DedupMinIDAndTitleOrder(t *testing.T) {
	r, s := newRepo(t)
	rawInsert(t, s, 9, "Doom", `["late"]`)
	rawInsert(t, s, 5, "Doom", `["early"]`)
	rawInsert(t, s, 7, "Anno", nil)

	got, err := r.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 games, got %d", len(got))
	}
	if got[0].Title() != "Anno" || got[1].Title() != "Doom" {
		t.Errorf("order = %s, %s", got[0].Title(), got[1].Title())
	}
	if got[1].ID() != 5 {
		t.Errorf("Doom ID = %d, want 5", got[1].ID())
	}
	if !slices.Equal(got[1].Tags(), []string{"early"}) {
		t.Errorf("Doom tags = %v", got[1].Tags())
	}
}

func TestLoadAll_Empty(t *testing.T) {
	r, _ := newRepo(t)
	got, err := r.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", got)
	}
}

func TestLoadAll_MalformedTagsBecomeEmpty(t *testing.T) {
	r, s := newRepo(t)
	rawInsert(t, s, 1, "Broken", `["rpg"`)
	rawInsert(t, s, 2, "Null", nil)
	rawInsert(t, s, 3, "Blank", "")

	got, err := r.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	for i := range got {
		if tags := got[i].Tags(); tags == nil || len(tags) != 0 {
			t.Errorf("%s: tags = %v, want empty", got[i].Title(), tags)
		}
	}
}

func TestFindByTitleSubstring(t *testing.T) {
	r, s := newRepo(t)
	rawInsert(t, s, 1, "The Witcher 3", `["rpg"]`)
	rawInsert(t, s, 2, "The Witcher 3", `["rpg"]`)
	rawInsert(t, s, 3, "GTA V", nil)
	rawInsert(t, s, 4, "100% Orange Juice", nil)

	got, err := r.FindByTitleSubstring(context.Background(), "WITCHER")
	if err != nil {
		t.Fatalf("FindByTitleSubstring: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected both raw rows, got %d", len(got))
	}
	if got[0].ID() != 1 || got[1].ID() != 2 {
		t.Errorf("IDs = %d, %d", got[0].ID(), got[1].ID())
	}

	got, err = r.FindByTitleSubstring(context.Background(), "%")
	if err != nil {
		t.Fatalf("FindByTitleSubstring: %v", err)
	}
	if len(got) != 1 || got[0].Title() != "100% Orange Juice" {
		t.Errorf("literal %% match = %d results", len(got))
	}
}

func TestFindByTitleSubstring_UnicodeCase(t *testing.T) {
	r, s := newRepo(t)
	rawInsert(t, s, 1, "ÉLITE Dangerous", nil)
	rawInsert(t, s, 2, "Ōkami HD", nil)
	rawInsert(t, s, 3, "Elite Beat Agents", nil)

	tests := []struct {
		needle string
		want   []int64
	}{
		{"ÉLITE", []int64{1}},
		{"élite", []int64{1}},
		{"Élite", []int64{1}},
		{"dangerous", []int64{1}},
		{"ōKAMI", []int64{2}},
		{"elite", []int64{3}},
	}
	for _, tt := range tests {
		t.Run(tt.needle, func(t *testing.T) {
			got, err := r.FindByTitleSubstring(context.Background(), tt.needle)
			if err != nil {
				t.Fatalf("FindByTitleSubstring: %v", err)
			}
			ids := make([]int64, len(got))
			for i := range got {
				ids[i] = got[i].ID()
			}
			if !slices.Equal(ids, tt.want) {
				t.Errorf("IDs = %v, want %v", ids, tt.want)
			}
		})
	}
}

func TestEscapeLike(t *testing.T) {
	tests := map[string]string{
		"abc": "abc",
		"50%": `50\%`,
		"a_b": `a\_b`,
		`a\b`: `a\\b`,
	}
	for in, want := range tests {
		if got := escapeLike(in); got != want {
			t.Errorf("escapeLike(%q) = %q, want %q", in, got, want)
		}
	}
}
