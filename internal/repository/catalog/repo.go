package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/kailas-cloud/gamerec/internal/db"
	"github.com/kailas-cloud/gamerec/internal/domain/game"
	"github.com/kailas-cloud/gamerec/internal/logger"
)

const selectColumns = `SELECT id, title, genre, platform, price, rating, description, tags FROM games`

// Repo is the catalog store. Every call reads storage afresh; nothing is cached.
type Repo struct {
	store db.Querier
}

// New creates a catalog repository.
func New(s db.Querier) *Repo {
	return &Repo{store: s}
}

// LoadAll returns the catalog deduplicated by title (smallest ID wins),
// sorted by title.
func (r *Repo) LoadAll(ctx context.Context) ([]game.Game, error) {
	games, err := r.query(ctx, selectColumns+` ORDER BY title, id`)
	if err != nil {
		return nil, fmt.Errorf("load all: %w", err)
	}
	return game.Dedup(games), nil
}

// FindByTitleSubstring returns every stored row (duplicates included) whose
// title contains needle, case-insensitively, ordered by ID. Both sides are
// folded with the same Unicode lower-casing (fold is registered on every
// connection by the sqlite store).
func (r *Repo) FindByTitleSubstring(ctx context.Context, needle string) ([]game.Game, error) {
	pattern := "%" + escapeLike(strings.ToLower(needle)) + "%"
	games, err := r.query(ctx, selectColumns+` WHERE fold(title) LIKE ? ESCAPE '\' ORDER BY id`, pattern)
	if err != nil {
		return nil, fmt.Errorf("find by title %q: %w", needle, err)
	}
	return games, nil
}

// Insert persists g and returns it with its assigned ID.
func (r *Repo) Insert(ctx context.Context, g *game.Game) (game.Game, error) {
	res, err := r.store.ExecContext(ctx,
		`INSERT INTO games (title, genre, platform, price, rating, description, tags) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		g.Title(), g.Genre(), g.Platform(), g.Price(), g.Rating(), g.Description(), game.EncodeTags(g.Tags()),
	)
	if err != nil {
		return game.Game{}, fmt.Errorf("insert %q: %w", g.Title(), err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return game.Game{}, fmt.Errorf("insert %q: last insert id: %w", g.Title(), err)
	}
	return g.WithID(id), nil
}

// Count returns the number of stored rows, duplicates included.
func (r *Repo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.store.QueryRowContext(ctx, `SELECT COUNT(*) FROM games`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}

func (r *Repo) query(ctx context.Context, query string, args ...any) ([]game.Game, error) {
	rows, err := r.store.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []game.Game
	for rows.Next() {
		g, err := scanGame(ctx, rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, &db.Error{Op: db.OpScan, Err: err}
	}
	return out, nil
}

func scanGame(ctx context.Context, rows *sql.Rows) (game.Game, error) {
	var (
		id                    int64
		title, genre, plat    string
		price, rating         sql.NullFloat64
		description, tagsJSON sql.NullString
	)
	if err := rows.Scan(&id, &title, &genre, &plat, &price, &rating, &description, &tagsJSON); err != nil {
		return game.Game{}, &db.Error{Op: db.OpScan, Err: err}
	}

	tags, err := game.ParseTags(tagsJSON.String)
	if err != nil {
		logger.FromContext(ctx).Warn("malformed tags, using none",
			zap.Int64("game_id", id),
			zap.Error(err),
		)
	}

	return game.Reconstruct(id, title, genre, plat, price.Float64, rating.Float64, description.String, tags), nil
}

// escapeLike escapes LIKE wildcards so needle matches literally.
func escapeLike(s string) string {
	if !strings.ContainsAny(s, `%_\`) {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		if r == '%' || r == '_' || r == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
