// Package sqlkv implements store.KV over a single database/sql table. The
// sqlite and postgres packages configure it with their dialect.
package sqlkv

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/visionfocus/focushours/internal/store"
)

// Dialect captures the differences between SQL engines that matter here.
type Dialect struct {
	// Name labels errors, e.g. "sqlite".
	Name string
	// Numbered is true for engines using $1-style placeholders.
	Numbered bool
	// KeyExpr wraps the key column where a byte-order comparison needs an
	// explicit collation.
	KeyExpr string
	// MapError translates driver errors. Nil means identity.
	MapError func(error) error
}

// Table is the name of the key-value table created by the migrations.
const Table = "kv_entries"

// Store is a store.KV over db.
type Store struct {
	db      *sql.DB
	dialect Dialect
	closed  atomic.Bool
	now     func() time.Time

	getQ, setQ, delQ, keysQ, keysRangeQ string
}

// New wraps an open database whose schema is already migrated.
func New(db *sql.DB, d Dialect) *Store {
	if d.KeyExpr == "" {
		d.KeyExpr = "key"
	}
	s := &Store{db: db, dialect: d, now: time.Now}
	s.getQ = s.rebind("SELECT value FROM " + Table + " WHERE key = ?")
	s.setQ = s.rebind("INSERT INTO " + Table + " (key, value, updated_at) VALUES (?, ?, ?) " +
		"ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at")
	s.delQ = s.rebind("DELETE FROM " + Table + " WHERE key = ?")
	s.keysQ = s.rebind("SELECT key FROM " + Table + " WHERE " + d.KeyExpr + " >= ? ORDER BY " + d.KeyExpr)
	s.keysRangeQ = s.rebind("SELECT key FROM " + Table + " WHERE " + d.KeyExpr + " >= ? AND " +
		d.KeyExpr + " < ? ORDER BY " + d.KeyExpr)
	return s
}

// DB exposes the underlying handle, mainly for tests.
func (s *Store) DB() *sql.DB { return s.db }

// Close closes the database handle.
func (s *Store) Close() error {
	s.closed.Store(true)
	return s.db.Close()
}

func (s *Store) rebind(q string) string {
	if !s.dialect.Numbered {
		return q
	}
	var b strings.Builder
	n := 0
	for _, r := range q {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (s *Store) fail(op, key string, err error) error {
	if s.dialect.MapError != nil {
		err = s.dialect.MapError(err)
	}
	return store.NewStoreError(s.dialect.Name, op, key, err)
}

func (s *Store) guard(ctx context.Context, op, key string) error {
	if s.closed.Load() {
		return store.NewStoreError(s.dialect.Name, op, key, store.ErrClosed)
	}
	return ctx.Err()
}

// Get implements store.KV.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := s.guard(ctx, "get", key); err != nil {
		return nil, err
	}
	var value []byte
	err := s.db.QueryRowContext(ctx, s.getQ, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, s.fail("get", key, err)
	}
	if value == nil {
		value = []byte{}
	}
	return value, nil
}

// Set implements store.KV.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := store.ValidateKey(key); err != nil {
		return err
	}
	if err := s.guard(ctx, "set", key); err != nil {
		return err
	}
	if value == nil {
		value = []byte{}
	}
	if _, err := s.db.ExecContext(ctx, s.setQ, key, value, s.now().UnixMilli()); err != nil {
		return s.fail("set", key, err)
	}
	return nil
}

// Delete implements store.KV.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.guard(ctx, "delete", key); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, s.delQ, key); err != nil {
		return s.fail("delete", key, err)
	}
	return nil
}

// DeleteKeys implements store.BatchDeleter inside one transaction.
func (s *Store) DeleteKeys(ctx context.Context, keys []string) error {
	if err := s.guard(ctx, "delete", ""); err != nil {
		return err
	}
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return deleteAll(ctx, tx, s.delQ, keys)
	})
	if err != nil {
		return s.fail("delete", "", err)
	}
	return nil
}

func deleteAll(ctx context.Context, db store.DBTX, q string, keys []string) error {
	for _, k := range keys {
		if _, err := db.ExecContext(ctx, q, k); err != nil {
			return err
		}
	}
	return nil
}

// Keys implements store.KV. The range scan relies on byte-order comparison of
// keys, so HasPrefix is re-checked on every row.
func (s *Store) Keys(ctx context.Context, prefix string) ([]string, error) {
	if err := s.guard(ctx, "keys", prefix); err != nil {
		return nil, err
	}

	var (
		rows *sql.Rows
		err  error
	)
	if end, ok := prefixEnd(prefix); ok {
		rows, err = s.db.QueryContext(ctx, s.keysRangeQ, prefix, end)
	} else {
		rows, err = s.db.QueryContext(ctx, s.keysQ, prefix)
	}
	if err != nil {
		return nil, s.fail("keys", prefix, err)
	}
	defer func() { _ = rows.Close() }()

	keys := []string{}
	p := []byte(prefix)
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, s.fail("keys", prefix, err)
		}
		if bytes.HasPrefix([]byte(k), p) {
			keys = append(keys, k)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, s.fail("keys", prefix, err)
	}
	return keys, nil
}

// prefixEnd returns the smallest string greater than every string with the
// given prefix. ok is false when no such bound exists.
func prefixEnd(prefix string) (string, bool) {
	b := []byte(prefix)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] < 0xff {
			b[i]++
			return string(b[:i+1]), true
		}
	}
	return "", false
}
