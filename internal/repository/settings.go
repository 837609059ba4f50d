package repository

import (
	"context"

	"github.com/visionfocus/focushours/internal/domain"
	"github.com/visionfocus/focushours/internal/schema"
	"github.com/visionfocus/focushours/internal/store"
)

func (r *Repository) loadSettings(ctx context.Context) (*domain.Settings, bool, error) {
	s := domain.DefaultSettings()
	found, err := store.GetJSON(ctx, r.kv, schema.KeySettings, s)
	if err != nil {
		return nil, false, r.persistErr(ctx, "load settings", err)
	}
	return s, found, nil
}

func (r *Repository) saveSettings(ctx context.Context, s *domain.Settings) error {
	if err := store.SetJSON(ctx, r.kv, schema.KeySettings, s); err != nil {
		return r.persistErr(ctx, "save settings", err)
	}
	return nil
}

// GetSettings returns the settings, writing the defaults on first access.
// Fields missing from the stored document keep their default values.
func (r *Repository) GetSettings(ctx context.Context) (*domain.Settings, error) {
	unlock, err := r.lock()
	defer unlock()
	if err != nil {
		return nil, err
	}

	s, found, err := r.loadSettings(ctx)
	if err != nil {
		return nil, err
	}
	if !found {
		if err := r.saveSettings(ctx, s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// UpdateSettings merges patch into the stored settings.
func (r *Repository) UpdateSettings(ctx context.Context, patch domain.SettingsPatch) (*domain.Settings, error) {
	unlock, err := r.lock()
	defer unlock()
	if err != nil {
		return nil, err
	}

	s, _, err := r.loadSettings(ctx)
	if err != nil {
		return nil, err
	}
	patch.Apply(s)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if err := r.saveSettings(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}
