package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/visionfocus/focushours/internal/platform/memory"
	"github.com/visionfocus/focushours/internal/store"
	"github.com/visionfocus/focushours/internal/store/storetest"
)

func TestConformance(t *testing.T) {
	storetest.RunKVSuite(t, func(t *testing.T) store.KV {
		return memory.New()
	})
}

func TestFaultInjection(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	quota := errors.New("quota exceeded")
	kv := memory.New(memory.WithFault(func(op, key string) error {
		if op == "set" && key == "big" {
			return quota
		}
		return nil
	}))

	require.NoError(t, kv.Set(ctx, "small", []byte("1")))
	err := kv.Set(ctx, "big", []byte("1"))
	assert.ErrorIs(t, err, quota)

	var se *store.StoreError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "set", se.Operation)
	assert.Equal(t, 1, kv.Len())

	kv.SetFault(nil)
	assert.NoError(t, kv.Set(ctx, "big", []byte("1")))
}

func TestClose(t *testing.T) {
	t.Parallel()

	kv := memory.New()
	require.NoError(t, kv.Close())
	_, err := kv.Get(context.Background(), "a")
	assert.ErrorIs(t, err, store.ErrClosed)
}
