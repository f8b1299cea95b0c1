package recommend

import (
	"context"
	"time"

	"github.com/kailas-cloud/gamerec/internal/domain/game"
	"github.com/kailas-cloud/gamerec/internal/domain/recommendation"
)

// Engine produces recommendations over a fixed catalog snapshot.
// Implementations report failures instead of substituting results; the
// Service decides what the caller sees.
type Engine interface {
	Kind() recommendation.Engine
	ByTitle(title string, topN int) ([]recommendation.Entry, error)
	ByFeatures(text string, topN int) ([]recommendation.Entry, error)
}

// CatalogLoader reads the deduplicated catalog snapshot.
type CatalogLoader interface {
	LoadAll(ctx context.Context) ([]game.Game, error)
}

// Recorder observes recommendation outcomes (metrics).
type Recorder interface {
	ObserveRecommendation(
		mode recommendation.Mode, engine recommendation.Engine, outcome Outcome, d time.Duration,
	)
}

// Outcome classifies a served recommendation.
type Outcome string

const (
	// OutcomeOK means the engine result was served.
	OutcomeOK Outcome = "ok"
	// OutcomeDegraded means the default catalog slice replaced a failed engine result.
	OutcomeDegraded Outcome = "degraded"
)
