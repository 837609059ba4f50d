package repository

import (
	"context"

	"github.com/visionfocus/focushours/internal/domain"
)

// SaveVisionBoard replaces the board of the planet for year. Items without an
// id get one, and SavedAt is always stamped with the current time.
func (r *Repository) SaveVisionBoard(ctx context.Context, year int, board domain.VisionBoard) (*domain.VisionBoard, error) {
	if board.Layout == "" {
		board.Layout = domain.LayoutGrid
	}
	if err := board.Validate(); err != nil {
		return nil, err
	}

	items := make([]domain.BoardItem, len(board.Items))
	for i, it := range board.Items {
		if it.ID == "" {
			it.ID = r.newID("item")
		}
		items[i] = it
	}
	board.Items = items

	unlock, err := r.lock()
	defer unlock()
	if err != nil {
		return nil, err
	}

	board.SavedAt = domain.MillisPtr(r.now())
	p, err := r.mutatePlanet(ctx, year, func(p *domain.Planet) error {
		for _, it := range board.Items {
			if err := r.checkWishRef(p, it.WishID); err != nil {
				return err
			}
		}
		p.VisionBoard = board
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &p.VisionBoard, nil
}

// GetVisionBoard returns the board of the planet for year, or nil.
func (r *Repository) GetVisionBoard(ctx context.Context, year int) (*domain.VisionBoard, error) {
	unlock, err := r.lock()
	defer unlock()
	if err != nil {
		return nil, err
	}

	p, err := r.planet(ctx, year)
	if err != nil || p == nil {
		return nil, err
	}
	return &p.VisionBoard, nil
}
