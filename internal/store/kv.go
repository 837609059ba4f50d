package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// KV is a durable, synchronous string-keyed byte store.
//
// Implementations must be safe for concurrent use. Get returns ErrNotFound for
// a missing key; Delete of a missing key succeeds. Keys returns every key that
// starts with prefix in ascending order.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context, prefix string) ([]string, error)
}

// BatchDeleter is implemented by backends that can remove many keys in one
// atomic write.
type BatchDeleter interface {
	DeleteKeys(ctx context.Context, keys []string) error
}

// GetJSON reads key and decodes it into dst. It reports false when the key is
// absent.
func GetJSON(ctx context.Context, kv KV, key string, dst any) (bool, error) {
	raw, err := kv.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("%w: decode %q: %v", ErrEncoding, key, err)
	}
	return true, nil
}

// SetJSON encodes v and writes it under key.
func SetJSON(ctx context.Context, kv KV, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: encode %q: %v", ErrEncoding, key, err)
	}
	return kv.Set(ctx, key, raw)
}

// DeleteKeys removes keys, in one write when kv supports it.
func DeleteKeys(ctx context.Context, kv KV, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	if bd, ok := kv.(BatchDeleter); ok {
		return bd.DeleteKeys(ctx, keys)
	}
	for _, k := range keys {
		if err := kv.Delete(ctx, k); err != nil {
			return err
		}
	}
	return nil
}

// SortedKeys filters keys by prefix and sorts them. Backends without ordered
// iteration use it to satisfy the Keys contract.
func SortedKeys(keys []string, prefix string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if strings.HasPrefix(k, prefix) {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// ValidateKey rejects the empty key.
func ValidateKey(key string) error {
	if key == "" {
		return ErrInvalidKey
	}
	return nil
}
