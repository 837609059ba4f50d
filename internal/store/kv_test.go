package store_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/visionfocus/focushours/internal/platform/memory"
	"github.com/visionfocus/focushours/internal/store"
)

func TestNamespace(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	base := memory.New()
	require.NoError(t, base.Set(ctx, "unrelated", []byte("1")))

	ns := store.Namespace(base, "vfh_")
	require.NoError(t, ns.Set(ctx, "user", []byte("u")))
	require.NoError(t, ns.Set(ctx, "planets", []byte("p")))

	raw, err := base.Get(ctx, "vfh_user")
	require.NoError(t, err)
	assert.Equal(t, "u", string(raw))

	keys, err := ns.Keys(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"planets", "user"}, keys)

	require.NoError(t, ns.DeleteKeys(ctx, keys))
	all, err := base.Keys(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"unrelated"}, all)

	assert.ErrorIs(t, ns.Set(ctx, "", nil), store.ErrInvalidKey)
	assert.Equal(t, "vfh_", ns.Prefix())
}

func TestStoreError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *store.StoreError
		want string
	}{
		{
			name: "with key",
			err:  store.NewStoreError("bolt", "get", "vfh_user", store.ErrClosed),
			want: `bolt get "vfh_user": store closed`,
		},
		{
			name: "without key",
			err:  store.NewStoreError("sqlite", "keys", "", errors.New("disk I/O error")),
			want: "sqlite keys: disk I/O error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}

	wrapped := fmt.Errorf("loading: %w", store.NewStoreError("bolt", "get", "k", store.ErrNotFound))
	assert.True(t, store.IsNotFoundError(wrapped))

	var se *store.StoreError
	require.True(t, errors.As(wrapped, &se))
	assert.Equal(t, "bolt", se.Backend)
}

func TestSortedKeys(t *testing.T) {
	t.Parallel()

	got := store.SortedKeys([]string{"b", "a", "c", "x"}, "")
	assert.Equal(t, []string{"a", "b", "c", "x"}, got)
	assert.Equal(t, []string{"a"}, store.SortedKeys([]string{"b", "a"}, "a"))
}
