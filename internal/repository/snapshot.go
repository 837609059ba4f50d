package repository

import (
	"context"

	"github.com/visionfocus/focushours/internal/domain"
	"github.com/visionfocus/focushours/internal/platform/logger"
	"github.com/visionfocus/focushours/internal/schema"
)

// ExportAll returns the whole state as a snapshot document.
func (r *Repository) ExportAll(ctx context.Context) (*domain.Snapshot, error) {
	unlock, err := r.lock()
	defer unlock()
	if err != nil {
		return nil, err
	}

	u, _, err := r.loadUser(ctx)
	if err != nil {
		return nil, err
	}
	planets, err := r.loadPlanets(ctx)
	if err != nil {
		return nil, err
	}
	year, err := r.currentYear(ctx)
	if err != nil {
		return nil, err
	}
	s, _, err := r.loadSettings(ctx)
	if err != nil {
		return nil, err
	}

	logger.FromContextOrDefault(ctx, r.log).Info("data exported", "planets", len(planets))
	return &domain.Snapshot{
		User:          u,
		Planets:       planets,
		CurrentPlanet: year,
		Settings:      s,
		ExportedAt:    domain.MillisOf(r.now()),
		Version:       schema.CurrentVersion,
	}, nil
}

// ImportAll replaces each section present in the snapshot and leaves absent
// sections alone. Settings are merged field by field. The content is trusted
// and not checked against the planet invariants.
//
// Each section is an independent write; a failure part way leaves the
// sections written before it in place.
func (r *Repository) ImportAll(ctx context.Context, in domain.ImportSnapshot) error {
	unlock, err := r.lock()
	defer unlock()
	if err != nil {
		return err
	}

	if in.User != nil {
		if err := r.saveUser(ctx, in.User); err != nil {
			return err
		}
	}
	if in.Planets != nil {
		if err := r.savePlanets(ctx, in.Planets); err != nil {
			return err
		}
	}
	if in.CurrentPlanet != nil && *in.CurrentPlanet != 0 {
		if err := r.setCurrentYear(ctx, *in.CurrentPlanet); err != nil {
			return err
		}
	}
	if in.Settings != nil {
		s, _, err := r.loadSettings(ctx)
		if err != nil {
			return err
		}
		in.Settings.Apply(s)
		if err := r.saveSettings(ctx, s); err != nil {
			return err
		}
	}

	logger.FromContextOrDefault(ctx, r.log).Info("data imported",
		"user", in.User != nil,
		"planets", len(in.Planets),
		"settings", in.Settings != nil)
	return nil
}
