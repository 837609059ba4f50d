package repository

import (
	"context"
	"fmt"

	"github.com/visionfocus/focushours/internal/domain"
	"github.com/visionfocus/focushours/internal/platform/logger"
	"github.com/visionfocus/focushours/internal/schema"
	"github.com/visionfocus/focushours/internal/store"
)

// ListPlanets returns every planet in creation order.
func (r *Repository) ListPlanets(ctx context.Context) ([]domain.Planet, error) {
	unlock, err := r.lock()
	defer unlock()
	if err != nil {
		return nil, err
	}
	return r.loadPlanets(ctx)
}

// GetPlanet returns the planet for year, or nil when there is none.
func (r *Repository) GetPlanet(ctx context.Context, year int) (*domain.Planet, error) {
	unlock, err := r.lock()
	defer unlock()
	if err != nil {
		return nil, err
	}
	return r.planet(ctx, year)
}

// CreatePlanet appends a fresh planet for year and makes it current.
func (r *Repository) CreatePlanet(ctx context.Context, year int) (*domain.Planet, error) {
	unlock, err := r.lock()
	defer unlock()
	if err != nil {
		return nil, err
	}

	p, err := domain.NewPlanet(year, r.now())
	if err != nil {
		return nil, err
	}

	planets, err := r.loadPlanets(ctx)
	if err != nil {
		return nil, err
	}
	if findPlanet(planets, year) >= 0 {
		return nil, fmt.Errorf("%w: %d", ErrPlanetExists, year)
	}

	planets = append(planets, *p)
	if err := r.savePlanets(ctx, planets); err != nil {
		return nil, err
	}
	// The pointer write is independent; a failure here leaves the planet
	// stored but not current.
	if err := r.setCurrentYear(ctx, year); err != nil {
		return nil, err
	}

	logger.FromContextOrDefault(ctx, r.log).Info("planet created", "year", year)
	return p, nil
}

// UpdatePlanet applies patch to the planet for year.
func (r *Repository) UpdatePlanet(ctx context.Context, year int, patch domain.PlanetPatch) (*domain.Planet, error) {
	unlock, err := r.lock()
	defer unlock()
	if err != nil {
		return nil, err
	}

	return r.mutatePlanet(ctx, year, func(p *domain.Planet) error {
		patch.Apply(p)
		return nil
	})
}

// CompleteMilestone marks milestone done on the planet for year. Milestones
// complete in order; completing one twice keeps the first timestamp.
func (r *Repository) CompleteMilestone(ctx context.Context, year int, m domain.Milestone) (*domain.Planet, error) {
	if !m.Valid() {
		return nil, domain.ErrInvalidMilestone
	}

	unlock, err := r.lock()
	defer unlock()
	if err != nil {
		return nil, err
	}

	return r.mutatePlanet(ctx, year, func(p *domain.Planet) error {
		if prev, ok := m.Previous(); ok && !p.Completed(prev) {
			return fmt.Errorf("%w: %s before %s", ErrMilestoneOutOfOrder, prev, m)
		}
		if !p.Complete(m, r.now()) {
			return errUnchanged
		}
		return nil
	})
}

func (r *Repository) currentYear(ctx context.Context) (int, error) {
	var year int
	if _, err := store.GetJSON(ctx, r.kv, schema.KeyCurrentPlanet, &year); err != nil {
		return 0, r.persistErr(ctx, "load current year", err)
	}
	return year, nil
}

func (r *Repository) setCurrentYear(ctx context.Context, year int) error {
	if err := store.SetJSON(ctx, r.kv, schema.KeyCurrentPlanet, year); err != nil {
		return r.persistErr(ctx, "save current year", err)
	}
	return nil
}

// GetCurrentYear returns the current-planet pointer. It may name a year
// without a planet.
func (r *Repository) GetCurrentYear(ctx context.Context) (int, error) {
	unlock, err := r.lock()
	defer unlock()
	if err != nil {
		return 0, err
	}
	return r.currentYear(ctx)
}

// SetCurrentYear moves the current-planet pointer.
func (r *Repository) SetCurrentYear(ctx context.Context, year int) error {
	if err := domain.ValidateYear(year); err != nil {
		return err
	}

	unlock, err := r.lock()
	defer unlock()
	if err != nil {
		return err
	}
	return r.setCurrentYear(ctx, year)
}

// GetCurrentPlanet returns the planet the pointer names, or nil.
func (r *Repository) GetCurrentPlanet(ctx context.Context) (*domain.Planet, error) {
	unlock, err := r.lock()
	defer unlock()
	if err != nil {
		return nil, err
	}

	year, err := r.currentYear(ctx)
	if err != nil {
		return nil, err
	}
	return r.planet(ctx, year)
}
