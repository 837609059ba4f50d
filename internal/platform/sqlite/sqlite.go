// Package sqlite opens a SQLite-backed store.KV using the pure-Go
// modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/visionfocus/focushours/internal/platform/migrations"
	"github.com/visionfocus/focushours/internal/platform/sqlkv"
	"github.com/visionfocus/focushours/internal/store"
)

// Dialect is the sqlkv configuration for SQLite.
var Dialect = sqlkv.Dialect{Name: "sqlite"}

// DSN builds the driver connection string for path. ":memory:" is passed
// through unchanged.
func DSN(path string) string {
	if path == ":memory:" {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}

// Open opens or creates the database at path, applies the schema and returns
// the store.
func Open(ctx context.Context, path string, log *slog.Logger) (*sqlkv.Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("%w: open sqlite: %v", store.ErrUnavailable, err)
		}
	}

	db, err := sql.Open("sqlite", DSN(path))
	if err != nil {
		return nil, fmt.Errorf("%w: open sqlite: %v", store.ErrUnavailable, err)
	}
	// One writer at a time; also keeps ":memory:" on a single connection.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: ping sqlite: %v", store.ErrUnavailable, err)
	}

	if _, err := migrations.Up(ctx, db, migrations.SQLite, log); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}

	return sqlkv.New(db, Dialect), nil
}
