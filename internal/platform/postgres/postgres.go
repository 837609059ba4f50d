package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver

	"github.com/visionfocus/focushours/internal/platform/migrations"
	"github.com/visionfocus/focushours/internal/platform/sqlkv"
	"github.com/visionfocus/focushours/internal/store"
)

// Dialect is the sqlkv configuration for PostgreSQL. Keys compare under the C
// collation so prefix ranges follow byte order.
var Dialect = sqlkv.Dialect{
	Name:     "postgres",
	Numbered: true,
	KeyExpr:  `key COLLATE "C"`,
	MapError: MapError,
}

// PingTimeout bounds the startup connectivity check.
var PingTimeout = 5 * time.Second

// Open connects to the database at url, configures the pool, applies the
// schema and returns the store.
func Open(ctx context.Context, url string, log *slog.Logger) (*sqlkv.Store, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("%w: open postgres: %v", store.ErrUnavailable, err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, PingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: ping postgres: %v", store.ErrUnavailable, err)
	}

	if _, err := migrations.Up(ctx, db, migrations.Postgres, log); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}

	if log != nil {
		log.Info("database connection established", "component", "postgres")
	}
	return sqlkv.New(db, Dialect), nil
}
