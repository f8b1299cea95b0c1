package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kailas-cloud/gamerec/internal/db/sqlite"
	"github.com/kailas-cloud/gamerec/internal/domain/game"
	"github.com/kailas-cloud/gamerec/internal/domain/recommendation"
	logpkg "github.com/kailas-cloud/gamerec/internal/logger"
	catalogrepo "github.com/kailas-cloud/gamerec/internal/repository/catalog"
	cataloguc "github.com/kailas-cloud/gamerec/internal/usecase/catalog"
	"github.com/kailas-cloud/gamerec/internal/version"
)

var (
	dbPath   string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:           "gamerec-cli",
	Short:         "gamerec - game catalog and recommendations",
	Long:          `gamerec-cli seeds the game catalog and queries the recommender directly against the SQLite database.`,
	Version:       version.String(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", envOr("GAMEREC_DB_PATH", "data/games.db"), "SQLite database path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(gamesCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(recommendCmd)
}

// app holds the collaborators shared by all commands.
type app struct {
	store   *sqlite.Store
	repo    *catalogrepo.Repo
	catalog *cataloguc.Service
	logger  *zap.Logger
}

func openApp(ctx context.Context) (*app, context.Context, error) {
	logger, err := logpkg.NewLogger(logpkg.EnvCLI, logLevel)
	if err != nil {
		return nil, ctx, err
	}
	ctx = logpkg.ContextWithLogger(ctx, logger)

	store, err := sqlite.NewStore(sqlite.Config{Path: dbPath})
	if err != nil {
		return nil, ctx, fmt.Errorf("open database: %w", err)
	}
	if err := store.WaitForReady(ctx, 5*time.Second); err != nil {
		_ = store.Close()
		return nil, ctx, fmt.Errorf("database not ready: %w", err)
	}
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, ctx, fmt.Errorf("migrate: %w", err)
	}

	repo := catalogrepo.New(store)
	return &app{store: store, repo: repo, catalog: cataloguc.New(repo), logger: logger}, ctx, nil
}

func (a *app) Close() {
	_ = a.store.Close()
	_ = a.logger.Sync()
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// --- Output ---

type gameOut struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Genre       string   `json:"genre"`
	Platform    string   `json:"platform"`
	Price       float64  `json:"price"`
	Rating      float64  `json:"rating"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

type entryOut struct {
	gameOut
	SimilarityScore *float64 `json:"similarity_score,omitempty"`
}

func toGameOut(g *game.Game) gameOut {
	return gameOut{
		ID: g.ID(), Title: g.Title(), Genre: g.Genre(), Platform: g.Platform(),
		Price: g.Price(), Rating: g.Rating(), Description: g.Description(), Tags: g.Tags(),
	}
}

func toGamesOut(games []game.Game) []gameOut {
	out := make([]gameOut, len(games))
	for i := range games {
		out[i] = toGameOut(&games[i])
	}
	return out
}

func toEntriesOut(entries []recommendation.Entry) []entryOut {
	out := make([]entryOut, len(entries))
	for i := range entries {
		g := entries[i].Game()
		out[i] = entryOut{gameOut: toGameOut(&g)}
		if s, ok := entries[i].Score(); ok {
			out[i].SimilarityScore = &s
		}
	}
	return out
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
