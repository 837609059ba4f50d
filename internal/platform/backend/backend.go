// Package backend opens the key-value store selected by configuration.
package backend

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/visionfocus/focushours/internal/config"
	"github.com/visionfocus/focushours/internal/platform/bolt"
	"github.com/visionfocus/focushours/internal/platform/memory"
	"github.com/visionfocus/focushours/internal/platform/postgres"
	"github.com/visionfocus/focushours/internal/platform/sqlite"
	"github.com/visionfocus/focushours/internal/store"
)

// Store is an opened backend. Close releases its file handles or
// connections.
type Store interface {
	store.KV
	io.Closer
}

// Open returns the backend named by cfg.Driver.
func Open(ctx context.Context, cfg config.StorageConfig, log *slog.Logger) (Store, error) {
	if log == nil {
		log = slog.Default()
	}
	log = log.With("component", "backend", "driver", cfg.Driver)

	var (
		kv  Store
		err error
	)
	switch cfg.Driver {
	case config.DriverMemory:
		kv = memory.New()
	case config.DriverBolt:
		kv, err = bolt.Open(cfg.Path)
	case config.DriverSQLite:
		kv, err = sqlite.Open(ctx, cfg.Path, log)
	case config.DriverPostgres:
		kv, err = postgres.Open(ctx, cfg.URL, log)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s storage: %w", cfg.Driver, err)
	}

	log.Debug("storage opened", "path", cfg.Path)
	return kv, nil
}
