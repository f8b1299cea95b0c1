package sqlite

import (
	"context"
	"path/filepath"
	"testing"
)

// NewTestStore opens a migrated store in a per-test temp directory.
func NewTestStore(t testing.TB) *Store {
	t.Helper()
	s, err := NewStore(Config{Path: filepath.Join(t.TempDir(), "games.db")})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	if err := s.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return s
}
