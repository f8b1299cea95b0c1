package gamerec

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Engine selects how the recommender is chosen at startup.
type Engine string

const (
	// EngineAuto tries the vector engine and falls back to keyword matching.
	EngineAuto Engine = "auto"
	// EngineVector requires the vector engine; New fails if it cannot be built.
	EngineVector Engine = "vector"
	// EngineKeyword always uses keyword matching.
	EngineKeyword Engine = "keyword"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	path          string
	busyTimeoutMS int

	engine      Engine
	maxFeatures int
	stopWords   bool

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithSQLite sets the SQLite database file. It is created if missing.
func WithSQLite(path string) Option {
	return optionFunc(func(c *clientConfig) {
		c.path = path
	})
}

// WithBusyTimeout sets the SQLite busy timeout in milliseconds. Default: 5000.
func WithBusyTimeout(ms int) Option {
	return optionFunc(func(c *clientConfig) {
		c.busyTimeoutMS = ms
	})
}

// WithEngine selects the engine strategy. Default: EngineAuto.
func WithEngine(e Engine) Option {
	return optionFunc(func(c *clientConfig) {
		c.engine = e
	})
}

// WithMaxFeatures limits the vector vocabulary size. 0 means unlimited.
// Default: 1000.
func WithMaxFeatures(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.maxFeatures = n
	})
}

// WithoutStopWords keeps English function words in the vocabulary.
func WithoutStopWords() Option {
	return optionFunc(func(c *clientConfig) {
		c.stopWords = false
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
