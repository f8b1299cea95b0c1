package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/gamerec/internal/config"
	"github.com/kailas-cloud/gamerec/internal/db/sqlite"
	logpkg "github.com/kailas-cloud/gamerec/internal/logger"
	"github.com/kailas-cloud/gamerec/internal/metrics"
	catalogrepo "github.com/kailas-cloud/gamerec/internal/repository/catalog"
	chiTransport "github.com/kailas-cloud/gamerec/internal/transport/chi"
	cataloguc "github.com/kailas-cloud/gamerec/internal/usecase/catalog"
	healthuc "github.com/kailas-cloud/gamerec/internal/usecase/health"
	recommenduc "github.com/kailas-cloud/gamerec/internal/usecase/recommend"
	"github.com/kailas-cloud/gamerec/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting gamerec API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_path", cfg.Database.Path),
		zap.String("engine", cfg.Recommender.Engine),
	)

	store, err := sqlite.NewStore(sqlite.Config{
		Path:          cfg.Database.Path,
		BusyTimeoutMS: cfg.Database.BusyTimeoutMS,
	})
	if err != nil {
		logger.Fatal("Failed to open database", zap.Error(err))
	}
	defer func() { _ = store.Close() }()

	ctx := logpkg.ContextWithLogger(context.Background(), logger)
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	if err := store.Migrate(ctx); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}
	logger.Info("Connected to database")

	// Register metrics explicitly (no init())
	metrics.RegisterHTTPMetrics(prometheus.DefaultRegisterer)
	metrics.RegisterRecommendationMetrics(prometheus.DefaultRegisterer)

	catalogRepo := catalogrepo.New(store)
	catalogSvc := cataloguc.New(catalogRepo)

	// The engine is fitted once over the snapshot loaded here.
	recSvc, sel, err := recommenduc.Build(ctx, catalogRepo,
		recommenduc.Strategy(cfg.Recommender.Engine),
		recommenduc.IndexConfig{
			MaxFeatures: cfg.Recommender.MaxFeatures,
			StopWords:   recommenduc.StopWords(cfg.Recommender.StopWords),
		},
	)
	if err != nil {
		logger.Fatal("Failed to build recommender", zap.Error(err))
	}
	recSvc = recSvc.WithRecorder(metrics.Recorder{})

	vocabulary := 0
	if v, ok := sel.Engine.(*recommenduc.VectorRecommender); ok {
		vocabulary = v.VocabularySize()
	}
	metrics.SetEngine(recSvc.Engine(), vocabulary)

	if sel.FallbackReason != nil {
		logger.Warn("Vector engine unavailable, serving keyword fallback",
			zap.Int("catalog_size", recSvc.CatalogSize()),
			zap.Error(sel.FallbackReason),
		)
	} else {
		logger.Info("Recommender ready",
			zap.String("engine", string(recSvc.Engine())),
			zap.Int("catalog_size", recSvc.CatalogSize()),
			zap.Int("vocabulary_size", vocabulary),
		)
	}

	healthSvc := healthuc.New(store, recSvc)

	server := chiTransport.NewServer(catalogSvc, recSvc, healthSvc, chiTransport.Limits{
		DefaultTopN: cfg.Recommender.DefaultTopN,
		MaxTopN:     cfg.Recommender.MaxTopN,
	}, logger)

	r := chi.NewRouter()
	r.Use(chiTransport.JSONRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(chiTransport.WideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}
