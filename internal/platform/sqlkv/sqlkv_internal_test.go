package sqlkv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefixEnd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		prefix string
		want   string
		ok     bool
	}{
		{"vfh_", "vfh`", true},
		{"a", "b", true},
		{"", "", false},
		{"a\xff", "b", true},
		{"\xff\xff", "", false},
	}

	for _, tt := range tests {
		got, ok := prefixEnd(tt.prefix)
		assert.Equal(t, tt.ok, ok, "prefix %q", tt.prefix)
		assert.Equal(t, tt.want, got, "prefix %q", tt.prefix)
	}
}

func TestRebind(t *testing.T) {
	t.Parallel()

	numbered := New(nil, Dialect{Name: "postgres", Numbered: true})
	assert.Equal(t, "SELECT value FROM kv_entries WHERE key = $1", numbered.getQ)
	assert.Contains(t, numbered.setQ, "VALUES ($1, $2, $3)")

	plain := New(nil, Dialect{Name: "sqlite"})
	assert.Equal(t, "SELECT value FROM kv_entries WHERE key = ?", plain.getQ)
	assert.Contains(t, plain.keysRangeQ, "key >= ? AND key < ?")
}
