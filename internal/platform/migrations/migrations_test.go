package migrations_test

import (
	"context"
	"database/sql"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/visionfocus/focushours/internal/platform/logger"
	"github.com/visionfocus/focushours/internal/platform/migrations"
)

func TestFilesPerDialect(t *testing.T) {
	t.Parallel()

	for _, dialect := range []string{migrations.Postgres, migrations.SQLite} {
		fsys, err := migrations.Files(dialect)
		require.NoError(t, err)

		names, err := fs.Glob(fsys, "*.sql")
		require.NoError(t, err)
		assert.NotEmpty(t, names, dialect)
	}

	_, err := migrations.Files("mysql")
	assert.Error(t, err)
}

func TestUpSQLiteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "m.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log, buf := logger.GetTestLogger(t)

	v1, err := migrations.Up(ctx, db, migrations.SQLite, log)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v1)

	v2, err := migrations.Up(ctx, db, migrations.SQLite, log)
	require.NoError(t, err)
	assert.Equal(t, v1, v2)

	var n int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM kv_entries").Scan(&n))
	assert.Zero(t, n)
	logger.AssertLogContains(t, buf, "schema up to date")
}

func TestUpRejectsUnknownDialect(t *testing.T) {
	t.Parallel()

	_, err := migrations.Up(context.Background(), nil, "oracle", nil)
	assert.Error(t, err)
}
