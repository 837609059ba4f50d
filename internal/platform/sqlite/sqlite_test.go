package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visionfocus/focushours/internal/platform/logger"
	"github.com/visionfocus/focushours/internal/platform/sqlite"
	"github.com/visionfocus/focushours/internal/store"
	"github.com/visionfocus/focushours/internal/store/storetest"
)

func TestConformance(t *testing.T) {
	storetest.RunKVSuite(t, func(t *testing.T) store.KV {
		s, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "kv.db"), logger.Discard())
		require.NoError(t, err)
		t.Cleanup(func() { _ = s.Close() })
		return s
	})
}

func TestInMemory(t *testing.T) {
	ctx := context.Background()
	s, err := sqlite.Open(ctx, ":memory:", logger.Discard())
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	require.NoError(t, s.Set(ctx, "k", []byte("v")))
	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", string(got))
}

func TestReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "sub", "kv.db")

	s, err := sqlite.Open(ctx, path, logger.Discard())
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "vfh_user", []byte(`{"wallet":"0x1"}`)))
	require.NoError(t, s.Close())

	s, err = sqlite.Open(ctx, path, logger.Discard())
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	got, err := s.Get(ctx, "vfh_user")
	require.NoError(t, err)
	assert.JSONEq(t, `{"wallet":"0x1"}`, string(got))
}

func TestClosed(t *testing.T) {
	ctx := context.Background()
	s, err := sqlite.Open(ctx, ":memory:", logger.Discard())
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = s.Get(ctx, "k")
	assert.ErrorIs(t, err, store.ErrClosed)
}

func TestDSN(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ":memory:", sqlite.DSN(":memory:"))
	assert.Equal(t, "a.db?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", sqlite.DSN("a.db"))
	assert.Equal(t, "a.db?mode=ro&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", sqlite.DSN("a.db?mode=ro"))
}
