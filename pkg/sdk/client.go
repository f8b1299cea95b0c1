package gamerec

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/kailas-cloud/gamerec/internal/db/sqlite"
	"github.com/kailas-cloud/gamerec/internal/domain/game"
	"github.com/kailas-cloud/gamerec/internal/domain/recommendation"
	catalogrepo "github.com/kailas-cloud/gamerec/internal/repository/catalog"
	cataloguc "github.com/kailas-cloud/gamerec/internal/usecase/catalog"
	healthuc "github.com/kailas-cloud/gamerec/internal/usecase/health"
	recommenduc "github.com/kailas-cloud/gamerec/internal/usecase/recommend"
)

const defaultReadinessTimeout = 10 * time.Second

// Internal interfaces, replaced by mocks in tests.
type catalogUseCase interface {
	List(ctx context.Context) ([]game.Game, error)
	Lookup(ctx context.Context, needle string) ([]game.Game, error)
	Search(ctx context.Context, term string) ([]game.Game, error)
	Seed(ctx context.Context, games []game.Game, allowDuplicates bool) (cataloguc.SeedResult, error)
}

type recommendUseCase interface {
	ByTitle(ctx context.Context, title string, topN int) []recommendation.Entry
	ByFeatures(ctx context.Context, text string, topN int) []recommendation.Entry
	Engine() recommendation.Engine
}

// Client is the gamerec SDK entry point.
type Client struct {
	store      *sqlite.Store
	catalogSvc catalogUseCase
	recSvc     recommendUseCase
	healthSvc  healthUseCase
	obs        *observer
}

// New opens the database, loads the catalog and fits the recommender.
// The provided context is used for the readiness check and the catalog load.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		engine:      EngineAuto,
		maxFeatures: recommenduc.DefaultIndexConfig().MaxFeatures,
		stopWords:   true,
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	if cfg.path == "" {
		return nil, errors.New("gamerec: database path required (use WithSQLite)")
	}
	strategy := recommenduc.Strategy(cfg.engine)
	if !strategy.IsValid() {
		return nil, fmt.Errorf("gamerec: unknown engine %q", cfg.engine)
	}

	store, err := sqlite.NewStore(sqlite.Config{Path: cfg.path, BusyTimeoutMS: cfg.busyTimeoutMS})
	if err != nil {
		return nil, fmt.Errorf("gamerec: open database: %w", err)
	}
	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("gamerec: database not ready: %w", err)
	}
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("gamerec: migrate: %w", err)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	c, err := wireClient(ctx, store, cfg, strategy, obs)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	return c, nil
}

func wireClient(
	ctx context.Context, store *sqlite.Store, cfg *clientConfig, strategy recommenduc.Strategy, obs *observer,
) (*Client, error) {
	repo := catalogrepo.New(store)

	idx := recommenduc.IndexConfig{MaxFeatures: cfg.maxFeatures, StopWords: recommenduc.StopWordsEnglish}
	if !cfg.stopWords {
		idx.StopWords = recommenduc.StopWordsNone
	}
	recSvc, sel, err := recommenduc.Build(ctx, repo, strategy, idx)
	if err != nil {
		return nil, fmt.Errorf("gamerec: build recommender: %w", err)
	}
	if sel.FallbackReason != nil && cfg.logger != nil {
		cfg.logger.Warn("vector engine unavailable, using keyword fallback",
			slog.String("reason", sel.FallbackReason.Error()),
		)
	}

	return &Client{
		store:      store,
		catalogSvc: cataloguc.New(repo),
		recSvc:     recSvc,
		healthSvc:  healthuc.New(store, recSvc),
		obs:        obs,
	}, nil
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		_ = c.store.Close()
	}
}

// Engine reports the engine selected when the client was created.
func (c *Client) Engine() string {
	return string(c.recSvc.Engine())
}

// Games returns the deduplicated catalog in title order.
func (c *Client) Games(ctx context.Context) (games []Game, err error) {
	start := time.Now()
	defer func() { c.obs.catalog(opGames, start, len(games), err) }()

	list, err := c.catalogSvc.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	return gamesFromDomain(list), nil
}

// Lookup returns every stored game whose title contains needle, duplicates included.
func (c *Client) Lookup(ctx context.Context, needle string) (games []Game, err error) {
	start := time.Now()
	defer func() { c.obs.catalog(opLookup, start, len(games), err) }()

	list, err := c.catalogSvc.Lookup(ctx, needle)
	if err != nil {
		return nil, fmt.Errorf("lookup: %w", err)
	}
	return gamesFromDomain(list), nil
}

// Search matches term against title, genre and description.
func (c *Client) Search(ctx context.Context, term string) (games []Game, err error) {
	start := time.Now()
	defer func() { c.obs.catalog(opSearch, start, len(games), err) }()

	list, err := c.catalogSvc.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	return gamesFromDomain(list), nil
}

// Seed stores games. Existing titles are skipped unless allowDuplicates.
// Recommendations keep using the catalog loaded by New.
func (c *Client) Seed(ctx context.Context, games []Game, allowDuplicates bool) (res SeedResult, err error) {
	start := time.Now()
	defer func() { c.obs.catalog(opSeed, start, res.Inserted, err) }()

	domGames := make([]game.Game, len(games))
	for i := range games {
		if domGames[i], err = gameToDomain(&games[i]); err != nil {
			return SeedResult{}, fmt.Errorf("game %d: %w", i, err)
		}
	}
	r, err := c.catalogSvc.Seed(ctx, domGames, allowDuplicates)
	if err != nil {
		return SeedResult{Inserted: r.Inserted, Skipped: r.Skipped}, fmt.Errorf("seed: %w", err)
	}
	return SeedResult{Inserted: r.Inserted, Skipped: r.Skipped}, nil
}

// RecommendByTitle returns up to topN games similar to title.
func (c *Client) RecommendByTitle(ctx context.Context, title string, topN int) []Recommendation {
	start := time.Now()
	entries := c.recSvc.ByTitle(ctx, title, topN)
	c.obs.recommend(recommendation.ModeTitle, c.recSvc.Engine(), start, len(entries))

	return recommendationsFromDomain(entries)
}

// RecommendByFeatures returns up to topN games matching a free-text description.
func (c *Client) RecommendByFeatures(ctx context.Context, text string, topN int) []Recommendation {
	start := time.Now()
	entries := c.recSvc.ByFeatures(ctx, text, topN)
	c.obs.recommend(recommendation.ModeFeatures, c.recSvc.Engine(), start, len(entries))

	return recommendationsFromDomain(entries)
}
