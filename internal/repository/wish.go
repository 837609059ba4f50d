package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/visionfocus/focushours/internal/domain"
)

// SaveWishes replaces the wish list of the planet for year. Each wish is
// normalized: a missing id, category, icon or creation time is filled in.
//
// FocusHours is stored as given and is not recomputed from the planet's focus
// records. Callers replacing wishes must carry the previous hours over.
func (r *Repository) SaveWishes(ctx context.Context, year int, wishes []domain.Wish) ([]domain.Wish, error) {
	if len(wishes) > r.maxWishes {
		return nil, fmt.Errorf("%w: %d > %d", domain.ErrTooManyWishes, len(wishes), r.maxWishes)
	}

	now := r.now()
	normalized := make([]domain.Wish, len(wishes))
	seen := make(map[string]bool, len(wishes))
	for i, w := range wishes {
		w.Normalize(r.newID("wish"), now)
		if err := w.Validate(); err != nil {
			return nil, fmt.Errorf("wish %d: %w", i, err)
		}
		if seen[w.ID] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateWishID, w.ID)
		}
		seen[w.ID] = true
		normalized[i] = w
	}

	unlock, err := r.lock()
	defer unlock()
	if err != nil {
		return nil, err
	}

	p, err := r.mutatePlanet(ctx, year, func(p *domain.Planet) error {
		p.Wishes = normalized
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p.Wishes, nil
}

// UpdateWish applies patch to one wish.
func (r *Repository) UpdateWish(ctx context.Context, year int, wishID string, patch domain.WishPatch) (*domain.Wish, error) {
	unlock, err := r.lock()
	defer unlock()
	if err != nil {
		return nil, err
	}

	var updated domain.Wish
	_, err = r.mutatePlanet(ctx, year, func(p *domain.Planet) error {
		i := p.Wish(wishID)
		if i < 0 {
			return fmt.Errorf("%w: %s", ErrWishNotFound, wishID)
		}
		w := p.Wishes[i]
		patch.Apply(&w)
		w.Text = strings.TrimSpace(w.Text)
		w.Category = w.Category.Canonical()
		if err := w.Validate(); err != nil {
			return err
		}
		p.Wishes[i] = w
		updated = w
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// GetWishes returns the wishes of the planet for year, or nil when there is
// no such planet.
func (r *Repository) GetWishes(ctx context.Context, year int) ([]domain.Wish, error) {
	unlock, err := r.lock()
	defer unlock()
	if err != nil {
		return nil, err
	}

	p, err := r.planet(ctx, year)
	if err != nil || p == nil {
		return nil, err
	}
	return p.Wishes, nil
}

// WishFocusHours returns the accumulated hours of one wish, or 0 when the
// planet or wish does not exist.
func (r *Repository) WishFocusHours(ctx context.Context, year int, wishID string) (float64, error) {
	unlock, err := r.lock()
	defer unlock()
	if err != nil {
		return 0, err
	}

	p, err := r.planet(ctx, year)
	if err != nil || p == nil {
		return 0, err
	}
	if i := p.Wish(wishID); i >= 0 {
		return p.Wishes[i].FocusHours, nil
	}
	return 0, nil
}
