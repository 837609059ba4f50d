//go:build integration

package postgres_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/visionfocus/focushours/internal/platform/logger"
	"github.com/visionfocus/focushours/internal/platform/postgres"
	"github.com/visionfocus/focushours/internal/store"
	"github.com/visionfocus/focushours/internal/store/storetest"
)

func TestConformance(t *testing.T) {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set")
	}

	storetest.RunKVSuite(t, func(t *testing.T) store.KV {
		ctx := context.Background()
		s, err := postgres.Open(ctx, url, logger.Discard())
		require.NoError(t, err)
		_, err = s.DB().ExecContext(ctx, "TRUNCATE kv_entries")
		require.NoError(t, err)
		t.Cleanup(func() { _ = s.Close() })
		return s
	})
}
