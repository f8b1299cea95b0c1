package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kailas-cloud/gamerec/internal/domain/recommendation"
	"github.com/kailas-cloud/gamerec/internal/usecase/recommend"
)

// Recommendation Prometheus metrics.
var (
	RecommendationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gamerec",
			Name:      "recommendations_total",
			Help:      "Total recommendation requests by outcome",
		},
		[]string{"mode", "engine", "outcome"}, // outcome: "ok" / "degraded"
	)

	RecommendationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "gamerec",
			Name:      "recommendation_duration_seconds",
			Help:      "Recommendation computation time in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
		[]string{"mode", "engine"},
	)

	EngineInfo = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "gamerec",
			Name:      "engine_info",
			Help:      "Active recommendation engine (1 for the selected engine)",
		},
		[]string{"engine"},
	)

	VocabularySize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "gamerec",
			Name:      "vocabulary_size",
			Help:      "Number of terms in the fitted vector index",
		},
	)
)

var registerRecommendation sync.Once

// RegisterRecommendationMetrics registers recommendation metrics on reg.
// Only the first call has an effect.
func RegisterRecommendationMetrics(reg prometheus.Registerer) {
	registerRecommendation.Do(func() {
		reg.MustRegister(RecommendationsTotal, RecommendationDuration, EngineInfo, VocabularySize)
	})
}

// SetEngine records the engine selected at startup.
func SetEngine(engine recommendation.Engine, vocabulary int) {
	EngineInfo.Reset()
	EngineInfo.WithLabelValues(string(engine)).Set(1)
	VocabularySize.Set(float64(vocabulary))
}

// Recorder implements recommend.Recorder on the package metrics.
type Recorder struct{}

var _ recommend.Recorder = Recorder{}

// ObserveRecommendation records one served recommendation.
func (Recorder) ObserveRecommendation(
	mode recommendation.Mode, engine recommendation.Engine, outcome recommend.Outcome, d time.Duration,
) {
	RecommendationsTotal.WithLabelValues(string(mode), string(engine), string(outcome)).Inc()
	RecommendationDuration.WithLabelValues(string(mode), string(engine)).Observe(d.Seconds())
}
