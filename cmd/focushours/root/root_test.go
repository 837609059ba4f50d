package root

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visionfocus/focushours/internal/domain"
	"github.com/visionfocus/focushours/internal/repository"
	"github.com/visionfocus/focushours/internal/service"
)

type cli struct {
	t  *testing.T
	db string
}

func newCLI(t *testing.T) *cli {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	return &cli{t: t, db: filepath.Join(t.TempDir(), "focushours.db")}
}

func (c *cli) run(args ...string) (string, error) {
	c.t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--driver", "bolt", "--db", c.db, "--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func (c *cli) mustRun(args ...string) string {
	c.t.Helper()
	out, err := c.run(args...)
	require.NoError(c.t, err, "focushours %v", args)
	return out
}

func (c *cli) runJSON(dst any, args ...string) {
	c.t.Helper()
	out := c.mustRun(append(args, "--json")...)
	require.NoError(c.t, json.Unmarshal([]byte(out), dst), out)
}

func TestPlanetFlow(t *testing.T) {
	c := newCLI(t)

	assert.Contains(t, c.mustRun("init"), "store ready")
	assert.Contains(t, c.mustRun("planet", "create", "2025"), "planet 2025 created")
	assert.Equal(t, "2025\n", c.mustRun("planet", "current"))

	var wish domain.Wish
	c.runJSON(&wish, "wishes", "add", "Learn", "Rust", "--type", "study")
	assert.Equal(t, "Learn Rust", wish.Text)
	assert.Equal(t, domain.CategoryStudy, wish.Category)

	c.mustRun("focus", "add", "5", "--wish", wish.ID)
	var res service.FocusResult
	c.runJSON(&res, "focus", "add", "3", "--wish", wish.ID, "--note", "evening")
	assert.Equal(t, 8.0, res.TotalHours)
	assert.Equal(t, 0, res.Tier.Tier.Level)
	assert.Empty(t, res.Reached)

	var wishes []domain.Wish
	c.runJSON(&wishes, "wishes", "list")
	require.Len(t, wishes, 1)
	assert.Equal(t, 8.0, wishes[0].FocusHours)

	out := c.mustRun("planet", "show")
	assert.Contains(t, out, "Planet 2025")
	assert.Contains(t, out, "8h")
	assert.Contains(t, out, "T0 Dormant")
	assert.Contains(t, out, "Learn Rust")
}

func TestFocusAnnouncesTierUp(t *testing.T) {
	c := newCLI(t)
	c.mustRun("planet", "create", "2025")

	out := c.mustRun("focus", "add", "12")
	assert.Contains(t, out, "TIER UP")
	assert.Contains(t, out, "T1 First Starlight")

	out = c.mustRun("focus", "add", "1")
	assert.NotContains(t, out, "TIER UP")
}

func TestWishesSaveFromFile(t *testing.T) {
	c := newCLI(t)
	c.mustRun("planet", "create", "2025")

	var first domain.Wish
	c.runJSON(&first, "wishes", "add", "Run a marathon", "--type", "health")
	c.mustRun("focus", "add", "4", "--wish", first.ID)

	file := filepath.Join(t.TempDir(), "wishes.yaml")
	doc := "wishes:\n" +
		"  - id: " + first.ID + "\n" +
		"    text: Run a marathon in spring\n" +
		"    type: health\n" +
		"  - text: travel to Kyoto\n"
	require.NoError(t, os.WriteFile(file, []byte(doc), 0o600))

	var saved []domain.Wish
	c.runJSON(&saved, "wishes", "save", "--file", file)
	require.Len(t, saved, 2)
	assert.Equal(t, first.ID, saved[0].ID)
	assert.Equal(t, 4.0, saved[0].FocusHours, "hours of a kept wish survive a save")
	assert.Equal(t, domain.CategoryTravel, saved[1].Category)
	assert.Equal(t, "fa-plane", saved[1].Icon)

	var updated domain.Wish
	c.runJSON(&updated, "wishes", "update", saved[1].ID, "--type", "social")
	assert.Equal(t, domain.CategorySocial, updated.Category)
	assert.Equal(t, "fa-users", updated.Icon)
}

func TestMilestonesAndAchievement(t *testing.T) {
	c := newCLI(t)
	c.mustRun("planet", "create", "2025")

	_, err := c.run("planet", "milestone", "vision_board")
	require.ErrorIs(t, err, repository.ErrMilestoneOutOfOrder)

	c.mustRun("planet", "milestone", "meditation")
	out := c.mustRun("planet", "milestone", "dream_fragments")
	assert.Contains(t, out, "meditation")

	_, err = c.run("achievement", "minted", "7", "0xabc")
	require.ErrorIs(t, err, repository.ErrAchievementNotGenerated)

	c.mustRun("achievement", "save", "--image", "https://img.example/2025.png")
	assert.Contains(t, c.mustRun("achievement", "minted", "7", "0xabc"), "minted as 7")

	_, err = c.run("achievement", "minted", "8", "0xdef")
	require.ErrorIs(t, err, service.ErrAlreadyMinted)

	var p domain.Planet
	c.runJSON(&p, "planet", "show", "2025")
	assert.True(t, p.Achievement.Minted)
	assert.Equal(t, "7", p.Achievement.TokenID)
}

func TestBoardSave(t *testing.T) {
	c := newCLI(t)
	c.mustRun("planet", "create", "2025")

	file := filepath.Join(t.TempDir(), "board.json")
	board := `{"layout":"free","items":[{"type":"text","content":"be kind","position":{"x":1,"y":2,"width":10,"height":4}}]}`
	require.NoError(t, os.WriteFile(file, []byte(board), 0o600))

	var saved domain.VisionBoard
	c.runJSON(&saved, "board", "save", "--file", file)
	assert.Equal(t, domain.LayoutFree, saved.Layout)
	require.Len(t, saved.Items, 1)
	assert.NotEmpty(t, saved.Items[0].ID)
	assert.NotNil(t, saved.SavedAt)
}

func TestExportImportReset(t *testing.T) {
	c := newCLI(t)
	c.mustRun("planet", "create", "2024")
	c.mustRun("focus", "add", "40")

	file := filepath.Join(t.TempDir(), "backup.json")
	c.mustRun("export", "--out", file)

	_, err := c.run("reset")
	require.Error(t, err)
	c.mustRun("reset", "--yes")

	var st domain.Stats
	c.runJSON(&st, "stats")
	assert.Zero(t, st.TotalYears)

	c.mustRun("import", file)
	c.runJSON(&st, "stats")
	assert.Equal(t, 1, st.TotalYears)
	assert.Equal(t, 40.0, st.TotalHours)
	require.Len(t, st.Yearly, 1)
	assert.Equal(t, 2, st.Yearly[0].Tier)
	assert.Equal(t, "2024\n", c.mustRun("planet", "current"))
}

func TestSettingsAndUser(t *testing.T) {
	c := newCLI(t)

	var s domain.Settings
	c.runJSON(&s, "settings", "show")
	assert.Equal(t, 0.6, s.Volume)
	assert.True(t, s.AutoSave)

	c.runJSON(&s, "settings", "set", "--volume", "0.2", "--skip-meditation")
	assert.Equal(t, 0.2, s.Volume)
	assert.True(t, s.SkipMeditation)
	assert.True(t, s.AutoSave)

	_, err := c.run("settings", "set", "--volume", "2")
	require.ErrorIs(t, err, domain.ErrInvalidVolume)

	var u domain.User
	c.runJSON(&u, "user", "set", "--nickname", "stargazer")
	assert.Equal(t, "stargazer", u.Nickname)
	assert.Empty(t, u.Wallet)
}

func TestTierCmd(t *testing.T) {
	c := newCLI(t)

	out := c.mustRun("tier")
	assert.Contains(t, out, "T0 Dormant")
	assert.Contains(t, out, "T4 Rainbow Diamond")

	out = c.mustRun("tier", "45")
	assert.Contains(t, out, "T2 Soft Glow")
	assert.Contains(t, out, "15h")

	_, err := c.run("tier", "-3")
	require.Error(t, err)
}

func TestCommandErrors(t *testing.T) {
	c := newCLI(t)

	_, err := c.run("planet", "show")
	require.ErrorIs(t, err, errNoCurrentPlanet)

	_, err = c.run("planet", "create", "year")
	require.Error(t, err)

	_, err = c.run("planet", "show", "1999")
	require.ErrorIs(t, err, repository.ErrPlanetNotFound)

	c.mustRun("planet", "create", "2025")
	_, err = c.run("planet", "create", "2025")
	require.ErrorIs(t, err, repository.ErrPlanetExists)

	_, err = c.run("focus", "add", "0")
	require.ErrorIs(t, err, domain.ErrInvalidHours)

	_, err = c.run("--strict", "focus", "add", "1", "--wish", "nope")
	require.ErrorIs(t, err, repository.ErrWishNotFound)
}

func TestCurrentPointerWithoutPlanet(t *testing.T) {
	c := newCLI(t)

	// A fresh store points at the calendar year before any planet exists.
	_, err := c.run("planet", "show")
	require.ErrorIs(t, err, errNoCurrentPlanet)
	assert.Contains(t, err.Error(), "has none")

	_, err = c.run("focus", "add", "1")
	require.ErrorIs(t, err, errNoCurrentPlanet)

	c.mustRun("planet", "create", "2025")
	c.mustRun("planet", "show")

	c.mustRun("reset", "--yes")
	_, err = c.run("wishes", "list")
	require.ErrorIs(t, err, errNoCurrentPlanet)

	// An explicit year still reports the missing planet itself.
	_, err = c.run("planet", "show", "2025")
	require.ErrorIs(t, err, repository.ErrPlanetNotFound)
}
