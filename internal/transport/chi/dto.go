package chi

import (
	"github.com/kailas-cloud/gamerec/internal/domain/game"
	"github.com/kailas-cloud/gamerec/internal/domain/recommendation"
)

type gameDTO struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Genre       string   `json:"genre"`
	Platform    string   `json:"platform"`
	Price       float64  `json:"price"`
	Rating      float64  `json:"rating"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

type entryDTO struct {
	gameDTO
	SimilarityScore *float64 `json:"similarity_score,omitempty"`
}

type gamesResponse struct {
	Success bool      `json:"success"`
	Count   int       `json:"count"`
	Games   []gameDTO `json:"games"`
}

type searchResponse struct {
	Success    bool      `json:"success"`
	SearchTerm string    `json:"search_term"`
	Count      int       `json:"count"`
	Results    []gameDTO `json:"results"`
}

type featuresRequest struct {
	Features string `json:"features"`
	N        *int   `json:"n"`
}

type recommendResponse struct {
	Success         bool       `json:"success"`
	InputGame       string     `json:"input_game,omitempty"`
	InputFeatures   string     `json:"input_features,omitempty"`
	Engine          string     `json:"engine"`
	Count           int        `json:"count"`
	Recommendations []entryDTO `json:"recommendations"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Engine string            `json:"engine"`
	Checks map[string]string `json:"checks"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func gameToDTO(g *game.Game) gameDTO {
	return gameDTO{
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

func gamesToDTO(games []game.Game) []gameDTO {
	out := make([]gameDTO, len(games))
	for i := range games {
		out[i] = gameToDTO(&games[i])
	}
	return out
}

func entriesToDTO(entries []recommendation.Entry) []entryDTO {
	out := make([]entryDTO, len(entries))
	for i := range entries {
		g := entries[i].Game()
		out[i] = entryDTO{gameDTO: gameToDTO(&g)}
		if score, ok := entries[i].Score(); ok {
			out[i].SimilarityScore = &score
		}
	}
	return out
}
