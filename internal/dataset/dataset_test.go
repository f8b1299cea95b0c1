package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse_YAMLList(t *testing.T) {
	data := []byte(`
- title: Witcher
  genre: RPG
  platform: PC
  price: 79.9
  rating: 9.7
  description: open world
  tags: [rpg, fantasy]
- title: GTA
  genre: Action
  platform: PC
`)
	games, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("expected 2 games, got %d", len(games))
	}
	if games[0].Title() != "Witcher" || len(games[0].Tags()) != 2 {
		t.Errorf("unexpected first game: %q %v", games[0].Title(), games[0].Tags())
	}
	if games[1].Tags() == nil {
		t.Error("missing tags must become an empty slice")
	}
}

func TestParse_WrappedDocument(t *testing.T) {
	games, err := Parse([]byte("games:\n  - {title: A, genre: RPG, platform: PC}\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(games) != 1 || games[0].Title() != "A" {
		t.Errorf("unexpected games: %d", len(games))
	}
}

func TestParse_JSON(t *testing.T) {
	games, err := Parse([]byte(`[{"title": "FIFA 23", "genre": "Sports", "platform": "PC", "tags": ["soccer"]}]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(games) != 1 || games[0].Genre() != "Sports" {
		t.Errorf("unexpected games: %d", len(games))
	}
}

func TestParse_Empty(t *testing.T) {
	games, err := Parse([]byte("  \n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(games) != 0 {
		t.Errorf("expected no games, got %d", len(games))
	}
}

func TestParse_InvalidEntry(t *testing.T) {
	_, err := Parse([]byte("- {title: A, genre: RPG, platform: PC, price: -1}\n"))
	if err == nil {
		t.Fatal("expected error for negative price")
	}
	if !strings.Contains(err.Error(), "dataset entry 0") {
		t.Errorf("error should name the entry: %v", err)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.json")
	if err := os.WriteFile(path, []byte(`[{"title": "A", "genre": "RPG", "platform": "PC"}]`), 0o600); err != nil {
		t.Fatal(err)
	}
	games, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(games) != 1 {
		t.Errorf("expected 1 game, got %d", len(games))
	}
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	if _, err := Load("games.csv"); err == nil {
		t.Fatal("expected error for csv")
	}
}

func TestLoad_SampleDataset(t *testing.T) {
	games, err := Load(filepath.Join("..", "..", "data", "games.yaml"))
	if err != nil {
		t.Fatalf("sample dataset must load: %v", err)
	}
	if len(games) < 5 {
		t.Errorf("expected at least 5 sample games, got %d", len(games))
	}
}
