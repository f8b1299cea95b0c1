package recommend

import (
	"context"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/gamerec/internal/domain"
	"github.com/kailas-cloud/gamerec/internal/domain/game"
	"github.com/kailas-cloud/gamerec/internal/domain/recommendation"
	"github.com/kailas-cloud/gamerec/internal/logger"
)

// Service is the recommendation facade. It never returns an error: a failing
// engine is replaced by the first topN catalog games.
type Service struct {
	engine  Engine
	catalog []game.Game
	rec     Recorder
}

// New creates a Service over the snapshot the engine was built from.
func New(engine Engine, catalog []game.Game) *Service {
	return &Service{engine: engine, catalog: slices.Clone(catalog)}
}

// WithRecorder attaches a metrics recorder.
func (s *Service) WithRecorder(r Recorder) *Service {
	s.rec = r
	return s
}

// Engine returns the active engine kind.
func (s *Service) Engine() recommendation.Engine { return s.engine.Kind() }

// CatalogSize returns the number of games in the served snapshot.
func (s *Service) CatalogSize() int { return len(s.catalog) }

// ByTitle recommends games similar to the game matching title.
func (s *Service) ByTitle(ctx context.Context, title string, topN int) []recommendation.Entry {
	return s.serve(ctx, recommendation.ModeTitle, topN, func() ([]recommendation.Entry, error) {
		return s.engine.ByTitle(title, topN)
	})
}

// ByFeatures recommends games matching a free-text description.
func (s *Service) ByFeatures(ctx context.Context, text string, topN int) []recommendation.Entry {
	return s.serve(ctx, recommendation.ModeFeatures, topN, func() ([]recommendation.Entry, error) {
		return s.engine.ByFeatures(text, topN)
	})
}

func (s *Service) serve(
	ctx context.Context, mode recommendation.Mode, topN int,
	query func() ([]recommendation.Entry, error),
) []recommendation.Entry {
	start := time.Now()
	entries, err := guard(query)

	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeDegraded
		logger.FromContext(ctx).Warn("recommendation degraded to catalog order",
			append(logger.Recommendation(mode, s.engine.Kind(), topN), zap.Error(err))...,
		)
		entries = head(s.catalog, topN)
	}

	if s.rec != nil {
		s.rec.ObserveRecommendation(mode, s.engine.Kind(), outcome, time.Since(start))
	}
	return entries
}

// guard runs query and turns a panic into a domain.ErrQuery failure.
func guard(query func() ([]recommendation.Entry, error)) (entries []recommendation.Entry, err error) {
	defer func() {
		if r := recover(); r != nil {
			entries, err = nil, fmt.Errorf("%w: panic: %v", domain.ErrQuery, r)
		}
	}()
	return query()
}
