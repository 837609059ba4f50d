package domain

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlanet(t *testing.T) {
	now := time.Date(2025, time.February, 3, 0, 0, 0, 0, time.UTC)

	p, err := NewPlanet(2025, now)
	require.NoError(t, err)
	assert.Equal(t, 2025, p.Year)
	assert.Equal(t, MillisOf(now), p.CreatedAt)
	assert.NotNil(t, p.Wishes)
	assert.NotNil(t, p.FocusRecords)
	assert.Equal(t, LayoutGrid, p.VisionBoard.Layout)
	assert.Nil(t, p.VisionBoard.SavedAt)
	assert.False(t, p.Achievement.Generated)
	assert.Zero(t, p.TotalHours)

	_, err = NewPlanet(0, now)
	assert.ErrorIs(t, err, ErrInvalidYear)
}

func TestPlanetMilestones(t *testing.T) {
	now := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	p, err := NewPlanet(2025, now)
	require.NoError(t, err)

	assert.False(t, p.Completed(MilestoneMeditation))
	assert.True(t, p.Complete(MilestoneMeditation, now))
	assert.True(t, p.Completed(MilestoneMeditation))
	require.NotNil(t, p.MeditationCompletedAt)
	assert.Equal(t, MillisOf(now), *p.MeditationCompletedAt)

	later := now.Add(time.Hour)
	assert.False(t, p.Complete(MilestoneMeditation, later), "second completion is a no-op")
	assert.Equal(t, MillisOf(now), *p.MeditationCompletedAt)

	prev, ok := MilestoneVisionBoard.Previous()
	assert.True(t, ok)
	assert.Equal(t, MilestoneDreamFragments, prev)
	_, ok = MilestoneMeditation.Previous()
	assert.False(t, ok)
	assert.False(t, Milestone("nap").Valid())
}

func TestPlanetPatchApply(t *testing.T) {
	p, err := NewPlanet(2025, time.Now())
	require.NoError(t, err)

	done := true
	at := Millis(1700000000000)
	PlanetPatch{MeditationCompleted: &done, MeditationCompletedAt: &at}.Apply(p)

	assert.True(t, p.MeditationCompleted)
	require.NotNil(t, p.MeditationCompletedAt)
	assert.Equal(t, at, *p.MeditationCompletedAt)
	assert.False(t, p.VisionBoardCompleted)
}

func TestValidateHours(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateHours(0.5))
	assert.NoError(t, ValidateHours(100))
	for _, h := range []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		assert.ErrorIs(t, ValidateHours(h), ErrInvalidHours, "hours %v", h)
	}
}

func TestVisionBoardValidate(t *testing.T) {
	t.Parallel()

	b := VisionBoard{Layout: LayoutFree, Items: []BoardItem{{Type: BoardItemText, Position: Position{Width: 10, Height: 5}}}}
	assert.NoError(t, b.Validate())

	b.Layout = "circle"
	assert.ErrorIs(t, b.Validate(), ErrInvalidLayout)

	b.Layout = LayoutGrid
	b.Items[0].Type = "video"
	assert.ErrorIs(t, b.Validate(), ErrInvalidBoardItem)

	b.Items[0].Type = BoardItemImage
	b.Items[0].Position.Width = -1
	assert.ErrorIs(t, b.Validate(), ErrInvalidBoardItem)
}

func TestSettings(t *testing.T) {
	t.Parallel()

	s := DefaultSettings()
	assert.Equal(t, 0.6, s.Volume)
	assert.True(t, s.AutoSave)
	require.NoError(t, s.Validate())

	v := 1.5
	SettingsPatch{Volume: &v}.Apply(s)
	assert.ErrorIs(t, s.Validate(), ErrInvalidVolume)

	v = math.NaN()
	SettingsPatch{Volume: &v}.Apply(s)
	assert.ErrorIs(t, s.Validate(), ErrInvalidVolume)

	v = 0
	skip := true
	SettingsPatch{Volume: &v, SkipMeditation: &skip}.Apply(s)
	assert.NoError(t, s.Validate())
	assert.True(t, s.SkipMeditation)
	assert.True(t, s.AutoSave)
}

func TestSnapshotAsImport(t *testing.T) {
	t.Parallel()

	snap := Snapshot{
		User:          &User{Wallet: "0xabc"},
		CurrentPlanet: 2025,
		Settings:      &Settings{Volume: 0.2},
		ExportedAt:    99,
		Version:       "1.0",
	}
	in := snap.AsImport()

	assert.NotNil(t, in.Planets, "absent planets export as an empty list")
	require.NotNil(t, in.CurrentPlanet)
	assert.Equal(t, 2025, *in.CurrentPlanet)
	require.NotNil(t, in.Settings)
	require.NotNil(t, in.Settings.Volume)
	assert.Equal(t, 0.2, *in.Settings.Volume)
	assert.Equal(t, "0xabc", in.User.Wallet)
}
