package catalog

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/kailas-cloud/gamerec/internal/domain"
	"github.com/kailas-cloud/gamerec/internal/domain/game"
	"github.com/kailas-cloud/gamerec/internal/logger"
)

// Service reads and seeds the live catalog. Unlike the recommender it always
// sees the current stored data.
type Service struct {
	repo Repository
}

// New creates a catalog service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the deduplicated catalog in title order.
func (s *Service) List(ctx context.Context) ([]game.Game, error) {
	games, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	return games, nil
}

// Lookup returns raw stored rows whose title contains needle.
func (s *Service) Lookup(ctx context.Context, needle string) ([]game.Game, error) {
	if strings.TrimSpace(needle) == "" {
		return nil, domain.NewFieldError("title", "is required")
	}
	games, err := s.repo.FindByTitleSubstring(ctx, needle)
	if err != nil {
		return nil, fmt.Errorf("lookup games: %w", err)
	}
	return games, nil
}

// Search returns catalog games whose title, genre or description contains
// term, case-insensitively, in catalog order.
func (s *Service) Search(ctx context.Context, term string) ([]game.Game, error) {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil, domain.NewFieldError("q", "is required")
	}

	games, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("search games: %w", err)
	}

	out := make([]game.Game, 0, len(games))
	for i := range games {
		g := &games[i]
		if strings.Contains(strings.ToLower(g.Title()), term) ||
			strings.Contains(strings.ToLower(g.Genre()), term) ||
			strings.Contains(strings.ToLower(g.Description()), term) {
			out = append(out, *g)
		}
	}
	return out, nil
}

// SeedResult summarizes a Seed run.
type SeedResult struct {
	Inserted int
	Skipped  int
}

// Seed inserts games, skipping titles already stored unless allowDuplicates.
func (s *Service) Seed(ctx context.Context, games []game.Game, allowDuplicates bool) (SeedResult, error) {
	existing := make(map[string]struct{})
	if !allowDuplicates {
		current, err := s.repo.LoadAll(ctx)
		if err != nil {
			return SeedResult{}, fmt.Errorf("seed: load existing: %w", err)
		}
		for i := range current {
			existing[current[i].Title()] = struct{}{}
		}
	}

	log := logger.FromContext(ctx)
	var res SeedResult
	for i := range games {
		g := &games[i]
		if _, dup := existing[g.Title()]; dup && !allowDuplicates {
			res.Skipped++
			log.Debug("skip existing title", zap.String(logger.KeyTitle, g.Title()))
			continue
		}
		if _, err := s.repo.Insert(ctx, g); err != nil {
			return res, fmt.Errorf("seed: %w", err)
		}
		existing[g.Title()] = struct{}{}
		res.Inserted++
	}
	return res, nil
}
