package health

import (
	"context"

	"github.com/kailas-cloud/gamerec/internal/domain/recommendation"
)

// DBPinger checks database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// EngineReporter reports the active recommendation engine.
type EngineReporter interface {
	Engine() recommendation.Engine
}
