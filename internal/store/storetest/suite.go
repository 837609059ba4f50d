// Package storetest holds a conformance suite every store.KV backend runs.
package storetest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/visionfocus/focushours/internal/store"
)

// Factory returns a fresh, empty backend. Cleanup is the caller's business
// (t.Cleanup inside the factory is the usual way).
type Factory func(t *testing.T) store.KV

// RunKVSuite exercises the store.KV contract against backends made by newKV.
func RunKVSuite(t *testing.T, newKV Factory) {
	t.Helper()

	t.Run("get missing key", func(t *testing.T) {
		kv := newKV(t)
		_, err := kv.Get(context.Background(), "nope")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("set then get", func(t *testing.T) {
		kv := newKV(t)
		ctx := context.Background()

		require.NoError(t, kv.Set(ctx, "a", []byte(`{"x":1}`)))
		got, err := kv.Get(ctx, "a")
		require.NoError(t, err)
		assert.JSONEq(t, `{"x":1}`, string(got))
	})

	t.Run("overwrite", func(t *testing.T) {
		kv := newKV(t)
		ctx := context.Background()

		require.NoError(t, kv.Set(ctx, "a", []byte("1")))
		require.NoError(t, kv.Set(ctx, "a", []byte("2")))
		got, err := kv.Get(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, "2", string(got))
	})

	t.Run("returned value is a copy", func(t *testing.T) {
		kv := newKV(t)
		ctx := context.Background()

		require.NoError(t, kv.Set(ctx, "a", []byte("abc")))
		got, err := kv.Get(ctx, "a")
		require.NoError(t, err)
		got[0] = 'z'

		again, err := kv.Get(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, "abc", string(again))
	})

	t.Run("delete", func(t *testing.T) {
		kv := newKV(t)
		ctx := context.Background()

		require.NoError(t, kv.Set(ctx, "a", []byte("1")))
		require.NoError(t, kv.Delete(ctx, "a"))
		_, err := kv.Get(ctx, "a")
		assert.ErrorIs(t, err, store.ErrNotFound)

		assert.NoError(t, kv.Delete(ctx, "a"), "deleting a missing key succeeds")
	})

	t.Run("keys by prefix in order", func(t *testing.T) {
		kv := newKV(t)
		ctx := context.Background()

		for _, k := range []string{"vfh_b", "other", "vfh_a", "vfh_c", "vfi_x", "vf"} {
			require.NoError(t, kv.Set(ctx, k, []byte("1")))
		}

		keys, err := kv.Keys(ctx, "vfh_")
		require.NoError(t, err)
		assert.Equal(t, []string{"vfh_a", "vfh_b", "vfh_c"}, keys)

		all, err := kv.Keys(ctx, "")
		require.NoError(t, err)
		assert.Len(t, all, 6)

		none, err := kv.Keys(ctx, "zzz")
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("prefix with like wildcards", func(t *testing.T) {
		kv := newKV(t)
		ctx := context.Background()

		require.NoError(t, kv.Set(ctx, "a_b", []byte("1")))
		require.NoError(t, kv.Set(ctx, "axb", []byte("1")))
		require.NoError(t, kv.Set(ctx, "a%c", []byte("1")))

		keys, err := kv.Keys(ctx, "a_")
		require.NoError(t, err)
		assert.Equal(t, []string{"a_b"}, keys)

		keys, err = kv.Keys(ctx, "a%")
		require.NoError(t, err)
		assert.Equal(t, []string{"a%c"}, keys)
	})

	t.Run("batch delete", func(t *testing.T) {
		kv := newKV(t)
		ctx := context.Background()

		for _, k := range []string{"p1", "p2", "keep"} {
			require.NoError(t, kv.Set(ctx, k, []byte("1")))
		}
		require.NoError(t, store.DeleteKeys(ctx, kv, []string{"p1", "p2", "missing"}))

		keys, err := kv.Keys(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, []string{"keep"}, keys)
	})

	t.Run("concurrent writers", func(t *testing.T) {
		kv := newKV(t)
		ctx := context.Background()

		var wg sync.WaitGroup
		errs := make(chan error, 20)
		for i := range 20 {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				errs <- kv.Set(ctx, fmt.Sprintf("k%02d", i), []byte("v"))
			}(i)
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}

		keys, err := kv.Keys(ctx, "k")
		require.NoError(t, err)
		assert.Len(t, keys, 20)
	})

	t.Run("json helpers", func(t *testing.T) {
		kv := newKV(t)
		ctx := context.Background()

		type doc struct {
			Name string `json:"name"`
		}
		require.NoError(t, store.SetJSON(ctx, kv, "doc", doc{Name: "mars"}))

		var got doc
		found, err := store.GetJSON(ctx, kv, "doc", &got)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "mars", got.Name)

		found, err = store.GetJSON(ctx, kv, "absent", &got)
		require.NoError(t, err)
		assert.False(t, found)

		require.NoError(t, kv.Set(ctx, "broken", []byte("{")))
		_, err = store.GetJSON(ctx, kv, "broken", &got)
		assert.True(t, errors.Is(err, store.ErrEncoding))
	})
}
