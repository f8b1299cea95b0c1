package recommendation

import "github.com/kailas-cloud/gamerec/internal/domain/game"

// DefaultTopN is the result size used when the caller does not specify one.
const DefaultTopN = 3

// Engine identifies the active recommendation engine.
type Engine string

const (
	// EngineVector ranks by TF-IDF cosine similarity.
	EngineVector Engine = "vector"
	// EngineKeyword matches by genre and keyword substrings.
	EngineKeyword Engine = "keyword"
)

// IsValid reports whether e is a known engine.
func (e Engine) IsValid() bool {
	return e == EngineVector || e == EngineKeyword
}

// Mode identifies the query operation.
type Mode string

const (
	// ModeTitle recommends items similar to a reference title.
	ModeTitle Mode = "title"
	// ModeFeatures recommends items matching a free-text description.
	ModeFeatures Mode = "features"
)

// Entry is a recommended game with an optional similarity score.
type Entry struct {
	game     game.Game
	score    float64
	hasScore bool
}

// Scored creates an entry produced by the vector engine.
func Scored(g game.Game, score float64) Entry {
	return Entry{game: g, score: score, hasScore: true}
}

// Unscored creates an entry without a similarity score.
func Unscored(g game.Game) Entry {
	return Entry{game: g}
}

// Game returns the recommended game.
func (e *Entry) Game() game.Game { return e.game }

// Score returns the similarity score and whether one is present.
func (e *Entry) Score() (float64, bool) { return e.score, e.hasScore }

// FromGames wraps games as unscored entries, preserving order.
func FromGames(games []game.Game) []Entry {
	out := make([]Entry, len(games))
	for i, g := range games {
		out[i] = Unscored(g)
	}
	return out
}
