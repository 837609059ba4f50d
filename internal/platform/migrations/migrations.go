// Package migrations applies the embedded SQL schema for the SQL-backed
// key-value stores using goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"
)

//go:embed sql
var embedded embed.FS

// Supported dialect directories under sql/.
const (
	Postgres = "postgres"
	SQLite   = "sqlite"
)

// slogGooseLogger adapts the goose logger interface to slog.
type slogGooseLogger struct {
	log *slog.Logger
}

// Printf forwards goose progress messages at info level.
func (l *slogGooseLogger) Printf(format string, v ...any) {
	l.log.Info(fmt.Sprintf(format, v...))
}

// Fatalf logs at error level. It does not exit; the error is returned by Up.
func (l *slogGooseLogger) Fatalf(format string, v ...any) {
	l.log.Error(fmt.Sprintf(format, v...))
}

func gooseDialect(name string) (goose.Dialect, error) {
	switch name {
	case Postgres:
		return goose.DialectPostgres, nil
	case SQLite:
		return goose.DialectSQLite3, nil
	default:
		return "", fmt.Errorf("unsupported migration dialect %q", name)
	}
}

// Files returns the migration files for dialect, rooted at the dialect
// directory.
func Files(dialect string) (fs.FS, error) {
	if _, err := gooseDialect(dialect); err != nil {
		return nil, err
	}
	return fs.Sub(embedded, "sql/"+dialect)
}

// Up applies every pending migration for dialect to db and returns the
// resulting schema version.
func Up(ctx context.Context, db *sql.DB, dialect string, log *slog.Logger) (int64, error) {
	if log == nil {
		log = slog.Default()
	}
	log = log.With("component", "migrations", "dialect", dialect)

	d, err := gooseDialect(dialect)
	if err != nil {
		return 0, err
	}
	fsys, err := Files(dialect)
	if err != nil {
		return 0, err
	}

	provider, err := goose.NewProvider(d, db, fsys,
		goose.WithLogger(&slogGooseLogger{log: log}),
		goose.WithVerbose(true),
	)
	if err != nil {
		return 0, fmt.Errorf("create migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("apply migrations: %w", err)
	}
	for _, r := range results {
		log.Debug("migration applied", "source", r.Source.Path, "duration", r.Duration)
	}

	version, err := provider.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	log.Info("schema up to date", "version", version, "applied", len(results))
	return version, nil
}
