package tier

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelBoundaries(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		hours float64
		want  int
	}{
		{0, 0},
		{9.99, 0},
		{10, 1},
		{29.999, 1},
		{30, 2},
		{59.5, 2},
		{60, 3},
		{99.99, 3},
		{100, 4},
		{1e9, 4},
		{math.Inf(1), 4},
		{-5, 0},
		{math.NaN(), 0},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, Level(tc.hours), "Level(%v)", tc.hours)
	}
}

func TestLevelIsMonotonic(t *testing.T) {
	t.Parallel()

	prev := Level(0)
	for h := 0.0; h <= 150; h += 0.25 {
		lvl := Level(h)
		require.GreaterOrEqual(t, lvl, prev, "tier decreased at %v hours", h)
		prev = lvl
	}
}

func TestProgress(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		hours float64
		want  float64
	}{
		{"start of tier 0", 0, 0},
		{"middle of tier 0", 5, 50},
		{"start of tier 1", 10, 0},
		{"middle of tier 1", 20, 50},
		{"quarter of tier 3", 70, 25},
		{"top tier", 100, 100},
		{"far above top", 5000, 100},
		{"negative clamps to zero", -3, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, Progress(tc.hours), 1e-9)
		})
	}

	for h := 0.0; h <= 200; h += 0.5 {
		p := Progress(h)
		assert.True(t, p >= 0 && p <= 100, "Progress(%v)=%v out of range", h, p)
	}
}

func TestHoursToNext(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 2.0, HoursToNext(8), 1e-9)
	assert.InDelta(t, 20.0, HoursToNext(10), 1e-9)
	assert.InDelta(t, 0.01, HoursToNext(99.99), 1e-9)
	assert.Equal(t, 0.0, HoursToNext(100))
	assert.Equal(t, 0.0, HoursToNext(250))
}

func TestTableIsContiguous(t *testing.T) {
	t.Parallel()

	all := All()
	require.Len(t, all, Top+1)
	assert.Equal(t, 0.0, all[0].MinHours)
	for i := 1; i < len(all); i++ {
		assert.Equal(t, all[i-1].MaxHours, all[i].MinHours, "gap between tier %d and %d", i-1, i)
		assert.Equal(t, i, all[i].Level)
	}
	assert.True(t, math.IsInf(all[Top].MaxHours, 1))
}

func TestCrossed(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Crossed(0, 9.9))
	assert.Empty(t, Crossed(50, 50))

	got := Crossed(97, 100)
	require.Len(t, got, 1)
	assert.Equal(t, Top, got[0].Level)

	got = Crossed(5, 65)
	require.Len(t, got, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{got[0].Level, got[1].Level, got[2].Level})
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	s := Describe(8)
	assert.Equal(t, 0, s.Tier.Level)
	assert.InDelta(t, 80.0, s.Progress, 1e-9)
	assert.InDelta(t, 2.0, s.HoursToNext, 1e-9)
}
