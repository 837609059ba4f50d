// Package bolt implements store.KV on a single bbolt bucket.
package bolt

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"

	"github.com/visionfocus/focushours/internal/store"
)

const backend = "bolt"

// DefaultBucket holds every key.
var DefaultBucket = []byte("kv")

// OpenTimeout bounds how long Open waits for the file lock held by another
// process.
var OpenTimeout = time.Second

// Store is a bbolt-backed store.KV.
type Store struct {
	db     *bbolt.DB
	bucket []byte
}

// Open opens or creates the database file at path, creating parent
// directories as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%w: bbolt open: %v", store.ErrUnavailable, err)
		}
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: OpenTimeout})
	if err != nil {
		return nil, fmt.Errorf("%w: bbolt open: %v", store.ErrUnavailable, err)
	}

	s := &Store{db: db, bucket: DefaultBucket}
	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(s.bucket)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: create bucket: %v", store.ErrUnavailable, err)
	}
	return s, nil
}

// Path returns the database file path.
func (s *Store) Path() string { return s.db.Path() }

// Close releases the file lock.
func (s *Store) Close() error { return s.db.Close() }

func wrap(op, key string, err error) error {
	if errors.Is(err, bbolt.ErrDatabaseNotOpen) {
		err = store.ErrClosed
	}
	return store.NewStoreError(backend, op, key, err)
}

// Get implements store.KV.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(s.bucket).Get([]byte(key))
		if v == nil {
			return store.ErrNotFound
		}
		// v is only valid for the life of the transaction.
		out = append([]byte(nil), v...)
		return nil
	})
	if errors.Is(err, store.ErrNotFound) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, wrap("get", key, err)
	}
	return out, nil
}

// Set implements store.KV.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := store.ValidateKey(key); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(s.bucket).Put([]byte(key), value)
	})
	if err != nil {
		return wrap("set", key, err)
	}
	return nil
}

// Delete implements store.KV.
func (s *Store) Delete(ctx context.Context, key string) error {
	return s.DeleteKeys(ctx, []string{key})
}

// DeleteKeys implements store.BatchDeleter in one bbolt transaction.
func (s *Store) DeleteKeys(ctx context.Context, keys []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(s.bucket)
		for _, k := range keys {
			if err := b.Delete([]byte(k)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return wrap("delete", "", err)
	}
	return nil
}

// Keys implements store.KV with a cursor seek; bbolt keeps keys sorted.
func (s *Store) Keys(ctx context.Context, prefix string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	keys := []string{}
	p := []byte(prefix)
	err := s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket(s.bucket).Cursor()
		for k, _ := c.Seek(p); k != nil && bytes.HasPrefix(k, p); k, _ = c.Next() {
			keys = append(keys, string(k))
		}
		return nil
	})
	if err != nil {
		return nil, wrap("keys", prefix, err)
	}
	return keys, nil
}
