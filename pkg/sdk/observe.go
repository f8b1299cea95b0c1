package gamerec

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kailas-cloud/gamerec/internal/domain/recommendation"
)

// Catalog operation labels.
const (
	opGames  = "games"
	opLookup = "lookup"
	opSearch = "search"
	opSeed   = "seed"
)

var resultBuckets = []float64{0, 1, 3, 5, 10, 25, 50, 100}

// sdkMetrics holds the collectors behind an observer.
// Catalog calls can fail and are labelled by status; recommendation calls
// never fail and are labelled by mode and the engine that served them.
type sdkMetrics struct {
	catalogOps      *prometheus.CounterVec
	catalogDuration *prometheus.HistogramVec
	catalogGames    *prometheus.HistogramVec

	recommendations   *prometheus.CounterVec
	recommendDuration *prometheus.HistogramVec
	recommendResults  *prometheus.HistogramVec
}

func newSDKMetrics(reg prometheus.Registerer) (*sdkMetrics, error) {
	m := &sdkMetrics{
		catalogOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gamerec",
			Subsystem: "sdk",
			Name:      "catalog_operations_total",
			Help:      "Catalog calls by operation and status.",
		}, []string{"operation", "status"}),
		catalogDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "gamerec",
			Subsystem: "sdk",
			Name:      "catalog_operation_duration_seconds",
			Help:      "Catalog call duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		catalogGames: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "gamerec",
			Subsystem: "sdk",
			Name:      "catalog_games",
			Help:      "Games returned (or inserted, for seed) per successful catalog call.",
			Buckets:   resultBuckets,
		}, []string{"operation"}),
		recommendations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gamerec",
			Subsystem: "sdk",
			Name:      "recommendations_total",
			Help:      "Recommendation calls by mode and serving engine.",
		}, []string{"mode", "engine"}),
		recommendDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "gamerec",
			Subsystem: "sdk",
			Name:      "recommendation_duration_seconds",
			Help:      "Recommendation call duration in seconds.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}, []string{"mode", "engine"}),
		recommendResults: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "gamerec",
			Subsystem: "sdk",
			Name:      "recommendation_results",
			Help:      "Entries returned per recommendation call.",
			Buckets:   resultBuckets,
		}, []string{"mode", "engine"}),
	}
	if err := registerOrReuse(reg, &m.catalogOps); err != nil {
		return nil, err
	}
	if err := registerOrReuse(reg, &m.recommendations); err != nil {
		return nil, err
	}
	for _, h := range []**prometheus.HistogramVec{
		&m.catalogDuration, &m.catalogGames, &m.recommendDuration, &m.recommendResults,
	} {
		if err := registerOrReuse(reg, h); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// registerOrReuse registers a collector or swaps in the one already registered
// under the same descriptor, so several clients can share a registry.
func registerOrReuse[T prometheus.Collector](reg prometheus.Registerer, c *T) error {
	if err := reg.Register(*c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			existing, ok := are.ExistingCollector.(T)
			if !ok {
				return fmt.Errorf("gamerec: metric already registered with incompatible type: %T", are.ExistingCollector)
			}
			*c = existing
			return nil
		}
		return fmt.Errorf("gamerec: register metric: %w", err)
	}
	return nil
}

// observer logs and measures SDK calls. A nil observer is a no-op.
type observer struct {
	logger  *slog.Logger
	metrics *sdkMetrics
}

func newObserver(logger *slog.Logger, reg prometheus.Registerer) (*observer, error) {
	var m *sdkMetrics
	if reg != nil {
		var err error
		m, err = newSDKMetrics(reg)
		if err != nil {
			return nil, err
		}
	}
	return &observer{logger: logger, metrics: m}, nil
}

// catalog records a catalog call that touched n games.
func (o *observer) catalog(op string, start time.Time, n int, err error) {
	if o == nil {
		return
	}
	dur := time.Since(start)

	if o.metrics != nil {
		status := "ok"
		if err != nil {
			status = "error"
		}
		o.metrics.catalogOps.WithLabelValues(op, status).Inc()
		o.metrics.catalogDuration.WithLabelValues(op).Observe(dur.Seconds())
		if err == nil {
			o.metrics.catalogGames.WithLabelValues(op).Observe(float64(n))
		}
	}

	if o.logger == nil {
		return
	}
	if err != nil {
		o.logger.Warn("catalog call failed",
			"op", op,
			"duration", dur,
			"error", err,
		)
		return
	}
	o.logger.Debug("catalog call completed",
		"op", op,
		"games", n,
		"duration", dur,
	)
}

// recommend records a recommendation call answered by engine with n entries.
func (o *observer) recommend(mode recommendation.Mode, engine recommendation.Engine, start time.Time, n int) {
	if o == nil {
		return
	}
	dur := time.Since(start)

	if o.metrics != nil {
		o.metrics.recommendations.WithLabelValues(string(mode), string(engine)).Inc()
		o.metrics.recommendDuration.WithLabelValues(string(mode), string(engine)).Observe(dur.Seconds())
		o.metrics.recommendResults.WithLabelValues(string(mode), string(engine)).Observe(float64(n))
	}

	if o.logger != nil {
		o.logger.Debug("recommendation served",
			"mode", string(mode),
			"engine", string(engine),
			"results", n,
			"duration", dur,
		)
	}
}
