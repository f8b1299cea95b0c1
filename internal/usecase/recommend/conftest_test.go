package recommend

import (
	"context"
	"time"

	"github.com/kailas-cloud/gamerec/internal/domain/game"
	"github.com/kailas-cloud/gamerec/internal/domain/recommendation"
)

// threeGames is the catalog in title order: Cyberpunk, GTA, Witcher.
func threeGames() []game.Game {
	return game.Dedup([]game.Game{
		game.Reconstruct(1, "Witcher", "RPG", "PC", 79.9, 9.7,
			"open world fantasy story", []string{"rpg", "open-world", "fantasy"}),
		game.Reconstruct(2, "Cyberpunk", "RPG", "PC", 199.9, 8.9,
			"open world futuristic city", []string{"rpg", "open-world", "cyberpunk"}),
		game.Reconstruct(3, "GTA", "Action", "PC", 149.9, 9.1,
			"crime city driving", []string{"action", "crime"}),
	})
}

func fiveGames() []game.Game {
	return game.Dedup([]game.Game{
		game.Reconstruct(1, "The Witcher 3: Wild Hunt", "RPG", "PC, PS4, XBOX", 79.9, 9.7,
			"open world fantasy adventure", []string{"rpg", "open-world", "fantasy"}),
		game.Reconstruct(2, "Counter-Strike 2", "FPS", "PC", 0, 9.3,
			"tactical competitive multiplayer shooter", []string{"fps", "multiplayer", "competitive"}),
		game.Reconstruct(3, "FIFA 23", "Sports", "PC, PS5, XBOX", 249.9, 8.5,
			"soccer simulation with real teams", []string{"sports", "soccer", "multiplayer"}),
		game.Reconstruct(4, "Cyberpunk 2077", "RPG", "PC, PS5, XBOX", 199.9, 8.9,
			"action rpg in an open world city", []string{"rpg", "open-world", "cyberpunk"}),
		game.Reconstruct(5, "Red Dead Redemption 2", "Action-Adventure", "PC, PS4, XBOX", 189.9, 9.8,
			"adventure in the american wild west", []string{"action", "adventure", "open-world"}),
	})
}

// degenerateGames yields no vocabulary once stop words and short tokens are removed.
func degenerateGames() []game.Game {
	return []game.Game{
		game.Reconstruct(1, "a", "x", "z", 0, 0, "the", nil),
		game.Reconstruct(2, "b", "x", "z", 0, 0, "of", []string{"it"}),
	}
}

func titles(entries []recommendation.Entry) []string {
	out := make([]string, len(entries))
	for i := range entries {
		g := entries[i].Game()
		out[i] = g.Title()
	}
	return out
}

// --- Mocks ---

type mockEngine struct {
	kind      recommendation.Engine
	entries   []recommendation.Entry
	err       error
	panicWith any
}

func (m *mockEngine) Kind() recommendation.Engine { return m.kind }

func (m *mockEngine) ByTitle(_ string, _ int) ([]recommendation.Entry, error) {
	if m.panicWith != nil {
		panic(m.panicWith)
	}
	return m.entries, m.err
}

func (m *mockEngine) ByFeatures(_ string, _ int) ([]recommendation.Entry, error) {
	if m.panicWith != nil {
		panic(m.panicWith)
	}
	return m.entries, m.err
}

type recordedCall struct {
	mode    recommendation.Mode
	engine  recommendation.Engine
	outcome Outcome
}

type mockRecorder struct {
	calls []recordedCall
}

func (m *mockRecorder) ObserveRecommendation(
	mode recommendation.Mode, engine recommendation.Engine, outcome Outcome, _ time.Duration,
) {
	m.calls = append(m.calls, recordedCall{mode: mode, engine: engine, outcome: outcome})
}

type mockLoader struct {
	games []game.Game
	err   error
}

func (m *mockLoader) LoadAll(_ context.Context) ([]game.Game, error) {
	return m.games, m.err
}
