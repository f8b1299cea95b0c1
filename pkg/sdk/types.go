package gamerec

import (
	"fmt"

	"github.com/kailas-cloud/gamerec/internal/domain/game"
	"github.com/kailas-cloud/gamerec/internal/domain/recommendation"
)

// Game is a catalog item.
type Game struct {
	ID          int64
	Title       string
	Genre       string
	Platform    string
	Price       float64
	Rating      float64
	Description string
	Tags        []string
}

// Recommendation is a recommended game. HasScore is false when the result
// came from keyword matching or from the catalog-order default.
type Recommendation struct {
	Game     Game
	Score    float64
	HasScore bool
}

// SeedResult reports how many games Seed inserted and skipped.
type SeedResult struct {
	Inserted int
	Skipped  int
}

func gameFromDomain(g *game.Game) Game {
	return Game{
		ID:          g.ID(),
		Title:       g.Title(),
		Genre:       g.Genre(),
		Platform:    g.Platform(),
		Price:       g.Price(),
		Rating:      g.Rating(),
		Description: g.Description(),
		Tags:        g.Tags(),
	}
}

func gamesFromDomain(games []game.Game) []Game {
	out := make([]Game, len(games))
	for i := range games {
		out[i] = gameFromDomain(&games[i])
	}
	return out
}

func gameToDomain(g *Game) (game.Game, error) {
	d, err := game.New(g.Title, g.Genre, g.Platform, g.Price, g.Rating, g.Description, g.Tags)
	if err != nil {
		return game.Game{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return d, nil
}

func recommendationsFromDomain(entries []recommendation.Entry) []Recommendation {
	out := make([]Recommendation, len(entries))
	for i := range entries {
		g := entries[i].Game()
		score, ok := entries[i].Score()
		out[i] = Recommendation{Game: gameFromDomain(&g), Score: score, HasScore: ok}
	}
	return out
}
