package health

import (
	"context"

	"github.com/kailas-cloud/gamerec/internal/domain/recommendation"
)

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure or the fallback engine.
	Degraded Status = "degraded"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
	// CheckFallback indicates the keyword engine is serving recommendations.
	CheckFallback CheckResult = "fallback"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Engine recommendation.Engine
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	db     DBPinger
	engine EngineReporter
}

// New creates a Service.
func New(db DBPinger, engine EngineReporter) *Service {
	return &Service{db: db, engine: engine}
}

// Check runs health checks against all components.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	if err := s.db.Ping(ctx); err != nil {
		checks["database"] = CheckError
	} else {
		checks["database"] = CheckOK
	}

	engine := s.engine.Engine()
	if engine == recommendation.EngineVector {
		checks["recommender"] = CheckOK
	} else {
		checks["recommender"] = CheckFallback
	}

	status := Healthy
	for _, v := range checks {
		if v != CheckOK {
			status = Degraded
			break
		}
	}

	return Report{Status: status, Engine: engine, Checks: checks}
}
