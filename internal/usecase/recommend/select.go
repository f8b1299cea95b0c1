package recommend

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/gamerec/internal/domain"
	"github.com/kailas-cloud/gamerec/internal/domain/game"
	"github.com/kailas-cloud/gamerec/internal/domain/recommendation"
)

// Strategy chooses how the engine is selected at startup.
type Strategy string

const (
	// StrategyAuto tries the vector engine and falls back to keywords.
	StrategyAuto Strategy = "auto"
	// StrategyVector requires the vector engine; construction failure is an error.
	StrategyVector Strategy = "vector"
	// StrategyKeyword always uses the keyword engine.
	StrategyKeyword Strategy = "keyword"
)

// IsValid reports whether s is auto or names a concrete engine.
func (s Strategy) IsValid() bool {
	return s == StrategyAuto || recommendation.Engine(s).IsValid()
}

// Selection is the engine chosen at startup. FallbackReason is set when
// StrategyAuto had to settle for the keyword engine.
type Selection struct {
	Engine         Engine
	FallbackReason error
}

// Select builds the engine for a catalog snapshot. The choice is final for
// the life of the returned engine.
func Select(catalog []game.Game, strategy Strategy, cfg IndexConfig) (Selection, error) {
	switch strategy {
	case StrategyKeyword:
		return Selection{Engine: NewKeywordRecommender(catalog)}, nil
	case StrategyVector:
		v, err := NewVectorRecommender(catalog, cfg)
		if err != nil {
			return Selection{}, fmt.Errorf("build vector engine: %w", err)
		}
		return Selection{Engine: v}, nil
	case StrategyAuto, "":
		v, err := NewVectorRecommender(catalog, cfg)
		if err != nil {
			return Selection{Engine: NewKeywordRecommender(catalog), FallbackReason: err}, nil
		}
		return Selection{Engine: v}, nil
	default:
		return Selection{}, fmt.Errorf("unknown engine strategy %q", strategy)
	}
}

// Build loads the catalog snapshot once and wires the facade over the
// selected engine. Later catalog changes are not seen by the returned Service.
func Build(
	ctx context.Context, loader CatalogLoader, strategy Strategy, cfg IndexConfig,
) (*Service, Selection, error) {
	catalog, err := loader.LoadAll(ctx)
	if err != nil {
		if strategy != StrategyAuto && strategy != "" {
			return nil, Selection{}, fmt.Errorf("load catalog: %w", err)
		}
		sel := Selection{
			Engine:         NewKeywordRecommender(nil),
			FallbackReason: fmt.Errorf("%w: load catalog: %w", domain.ErrUnavailable, err),
		}
		return New(sel.Engine, nil), sel, nil
	}
	sel, err := Select(catalog, strategy, cfg)
	if err != nil {
		return nil, Selection{}, err
	}
	return New(sel.Engine, catalog), sel, nil
}
