package repository

import (
	"context"

	"github.com/visionfocus/focushours/internal/domain"
	"github.com/visionfocus/focushours/internal/platform/logger"
)

// AddFocusRecord appends a focus contribution to the planet for year and
// updates the aggregates in the same write. hours must be positive and
// finite; the check happens before anything is read or written.
//
// A wishID the planet does not know still produces a record; only the wish
// aggregate is skipped. With strict wish references it fails instead.
func (r *Repository) AddFocusRecord(ctx context.Context, year int, wishID string, hours float64, note string) (*domain.FocusRecord, error) {
	if err := domain.ValidateHours(hours); err != nil {
		return nil, err
	}

	unlock, err := r.lock()
	defer unlock()
	if err != nil {
		return nil, err
	}

	rec := domain.FocusRecord{
		ID:        r.newID("record"),
		WishID:    wishID,
		Hours:     hours,
		Note:      note,
		CreatedAt: domain.MillisOf(r.now()),
	}

	_, err = r.mutatePlanet(ctx, year, func(p *domain.Planet) error {
		if err := r.checkWishRef(p, wishID); err != nil {
			return err
		}
		p.FocusRecords = append(p.FocusRecords, rec)
		if i := p.Wish(wishID); i >= 0 {
			p.Wishes[i].FocusHours += hours
		}
		p.TotalHours += hours
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContextOrDefault(ctx, r.log).Debug("focus recorded",
		"year", year,
		"wish_id", wishID,
		"hours", hours)
	return &rec, nil
}

// GetFocusRecords returns the records of the planet for year, or nil.
func (r *Repository) GetFocusRecords(ctx context.Context, year int) ([]domain.FocusRecord, error) {
	unlock, err := r.lock()
	defer unlock()
	if err != nil {
		return nil, err
	}

	p, err := r.planet(ctx, year)
	if err != nil || p == nil {
		return nil, err
	}
	return p.FocusRecords, nil
}

// TotalHours returns the accumulated hours of the planet for year, or 0.
func (r *Repository) TotalHours(ctx context.Context, year int) (float64, error) {
	unlock, err := r.lock()
	defer unlock()
	if err != nil {
		return 0, err
	}

	p, err := r.planet(ctx, year)
	if err != nil || p == nil {
		return 0, err
	}
	return p.TotalHours, nil
}
