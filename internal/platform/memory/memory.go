// Package memory provides an in-process store.KV, used by tests and by the
// "memory" storage driver.
package memory

import (
	"context"
	"sync"

	"github.com/visionfocus/focushours/internal/store"
)

// FaultFunc decides whether an operation should fail. op is one of get, set,
// delete or keys.
type FaultFunc func(op, key string) error

// Store is a map-backed store.KV. The zero value is not usable; call New.
type Store struct {
	mu     sync.RWMutex
	data   map[string][]byte
	fault  FaultFunc
	closed bool
}

// Option configures a Store.
type Option func(*Store)

// WithFault installs a fault injector consulted before every operation.
func WithFault(f FaultFunc) Option {
	return func(s *Store) { s.fault = f }
}

// New returns an empty Store.
func New(opts ...Option) *Store {
	s := &Store{data: make(map[string][]byte)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetFault replaces the fault injector. Pass nil to clear it.
func (s *Store) SetFault(f FaultFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fault = f
}

func (s *Store) check(op, key string) error {
	if s.closed {
		return store.NewStoreError("memory", op, key, store.ErrClosed)
	}
	if s.fault != nil {
		if err := s.fault(op, key); err != nil {
			return store.NewStoreError("memory", op, key, err)
		}
	}
	return nil
}

// Get implements store.KV.
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.check("get", key); err != nil {
		return nil, err
	}
	v, ok := s.data[key]
	if !ok {
		return nil, store.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

// Set implements store.KV.
func (s *Store) Set(_ context.Context, key string, value []byte) error {
	if err := store.ValidateKey(key); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.check("set", key); err != nil {
		return err
	}
	s.data[key] = append([]byte(nil), value...)
	return nil
}

// Delete implements store.KV.
func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.check("delete", key); err != nil {
		return err
	}
	delete(s.data, key)
	return nil
}

// Keys implements store.KV.
func (s *Store) Keys(_ context.Context, prefix string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.check("keys", prefix); err != nil {
		return nil, err
	}
	all := make([]string, 0, len(s.data))
	for k := range s.data {
		all = append(all, k)
	}
	return store.SortedKeys(all, prefix), nil
}

// Len returns the number of stored keys.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// Close makes every later operation fail with store.ErrClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
