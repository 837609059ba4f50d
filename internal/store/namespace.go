package store

import (
	"context"
	"strings"
)

// Namespaced confines a KV to the keys under a fixed prefix. Callers use bare
// logical keys; the prefix is added on the way in and stripped on the way out,
// so Keys(ctx, "") enumerates exactly the namespace.
type Namespaced struct {
	kv     KV
	prefix string
}

// Namespace wraps kv so every key is stored as prefix+key.
func Namespace(kv KV, prefix string) *Namespaced {
	return &Namespaced{kv: kv, prefix: prefix}
}

// Prefix returns the namespace prefix.
func (n *Namespaced) Prefix() string { return n.prefix }

// Unwrap returns the underlying KV.
func (n *Namespaced) Unwrap() KV { return n.kv }

// Get implements KV.
func (n *Namespaced) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	return n.kv.Get(ctx, n.prefix+key)
}

// Set implements KV.
func (n *Namespaced) Set(ctx context.Context, key string, value []byte) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	return n.kv.Set(ctx, n.prefix+key, value)
}

// Delete implements KV.
func (n *Namespaced) Delete(ctx context.Context, key string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	return n.kv.Delete(ctx, n.prefix+key)
}

// Keys implements KV. Returned keys have the namespace prefix removed.
func (n *Namespaced) Keys(ctx context.Context, prefix string) ([]string, error) {
	full, err := n.kv.Keys(ctx, n.prefix+prefix)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(full))
	for _, k := range full {
		out = append(out, strings.TrimPrefix(k, n.prefix))
	}
	return out, nil
}

// DeleteKeys implements BatchDeleter, delegating to the wrapped store.
func (n *Namespaced) DeleteKeys(ctx context.Context, keys []string) error {
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = n.prefix + k
	}
	return DeleteKeys(ctx, n.kv, full)
}
