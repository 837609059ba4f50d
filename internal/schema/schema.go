// Package schema owns the stored data-version tag. Manager.EnsureCurrentVersion
// must complete before the repository serves any read or write.
package schema

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/visionfocus/focushours/internal/domain"
	"github.com/visionfocus/focushours/internal/store"
)

// CurrentVersion is the data-version tag this build reads and writes.
const CurrentVersion = "1.0"

// Logical keys, relative to the store namespace.
const (
	KeyUser          = "user"
	KeyPlanets       = "planets"
	KeyCurrentPlanet = "currentPlanet"
	KeySettings      = "settings"
	KeyDataVersion   = "dataVersion"
)

// Keys lists every logical key the engine owns.
func Keys() []string {
	return []string{KeyUser, KeyPlanets, KeyCurrentPlanet, KeySettings, KeyDataVersion}
}

// ErrInitialization is returned when the store cannot be brought to the
// current version. The engine must not start after it.
var ErrInitialization = errors.New("storage initialization failed")

// Step upgrades stored data written by version from. It runs before the tag
// is rewritten.
type Step func(ctx context.Context, kv store.KV, from string) error

// Result describes what EnsureCurrentVersion did.
type Result struct {
	From        string // stored tag before the call, empty when absent
	To          string
	Initialized bool // defaults were written
	Upgraded    bool // a mismatched tag was rewritten
}

// Manager reads and normalizes the data-version tag.
type Manager struct {
	kv    store.KV
	log   *slog.Logger
	now   func() time.Time
	steps map[string]Step
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithStep registers the upgrade applied to data tagged from.
func WithStep(from string, step Step) Option {
	return func(m *Manager) { m.steps[from] = step }
}

// NewManager creates a Manager over kv, which is expected to be namespaced.
func NewManager(kv store.KV, log *slog.Logger, opts ...Option) *Manager {
	if log == nil {
		log = slog.Default()
	}
	m := &Manager{
		kv:    kv,
		log:   log.With("component", "schema"),
		now:   time.Now,
		steps: map[string]Step{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// EnsureCurrentVersion initializes an empty store or upgrades an old one and
// leaves the tag at CurrentVersion. It is a no-op when the tag is current.
func (m *Manager) EnsureCurrentVersion(ctx context.Context) (Result, error) {
	res := Result{To: CurrentVersion}

	var stored string
	found, err := store.GetJSON(ctx, m.kv, KeyDataVersion, &stored)
	if err != nil {
		return res, m.fail("read version", err)
	}
	res.From = stored

	switch {
	case !found:
		if err := m.initDefaults(ctx); err != nil {
			return res, m.fail("write defaults", err)
		}
		res.Initialized = true
	case stored == CurrentVersion:
		return res, nil
	default:
		if step, ok := m.steps[stored]; ok {
			if err := step(ctx, m.kv, stored); err != nil {
				return res, m.fail("upgrade from "+stored, err)
			}
		}
		res.Upgraded = true
	}

	if err := store.SetJSON(ctx, m.kv, KeyDataVersion, CurrentVersion); err != nil {
		return res, m.fail("write version", err)
	}

	m.log.Info("data version ensured",
		"from", res.From,
		"to", res.To,
		"initialized", res.Initialized,
		"upgraded", res.Upgraded)
	return res, nil
}

// initDefaults writes each missing section. Sections already present, for
// instance from an import into an untagged store, are kept.
func (m *Manager) initDefaults(ctx context.Context) error {
	now := m.now()
	defaults := []struct {
		key   string
		value any
	}{
		{KeyUser, domain.NewUser(now)},
		{KeyPlanets, []domain.Planet{}},
		{KeyCurrentPlanet, now.Year()},
		{KeySettings, domain.DefaultSettings()},
	}

	for _, d := range defaults {
		_, err := m.kv.Get(ctx, d.key)
		if err == nil {
			continue
		}
		if !errors.Is(err, store.ErrNotFound) {
			return err
		}
		if err := store.SetJSON(ctx, m.kv, d.key, d.value); err != nil {
			return err
		}
	}
	return nil
}

func (m *Manager) fail(what string, err error) error {
	m.log.Error("storage initialization failed", "step", what, "error", err)
	return fmt.Errorf("%w: %s: %w", ErrInitialization, what, err)
}
