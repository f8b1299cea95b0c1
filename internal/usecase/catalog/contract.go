package catalog

import (
	"context"

	"github.com/kailas-cloud/gamerec/internal/domain/game"
)

// Repository defines the storage contract for the catalog.
type Repository interface {
	LoadAll(ctx context.Context) ([]game.Game, error)
	FindByTitleSubstring(ctx context.Context, needle string) ([]game.Game, error)
	Insert(ctx context.Context, g *game.Game) (game.Game, error)
}
