package repository

import (
	"context"

	"github.com/visionfocus/focushours/internal/domain"
	"github.com/visionfocus/focushours/internal/domain/tier"
)

// GetAllStats aggregates every planet. It never writes.
func (r *Repository) GetAllStats(ctx context.Context) (*domain.Stats, error) {
	unlock, err := r.lock()
	defer unlock()
	if err != nil {
		return nil, err
	}

	planets, err := r.loadPlanets(ctx)
	if err != nil {
		return nil, err
	}
	return computeStats(planets), nil
}

func computeStats(planets []domain.Planet) *domain.Stats {
	st := &domain.Stats{
		TotalYears: len(planets),
		Yearly:     make([]domain.YearStats, 0, len(planets)),
	}
	for _, p := range planets {
		st.TotalWishes += len(p.Wishes)
		st.TotalHours += p.TotalHours
		if p.Achievement.Generated {
			st.TotalAchievements++
		}
		st.Yearly = append(st.Yearly, domain.YearStats{
			Year:   p.Year,
			Wishes: len(p.Wishes),
			Hours:  p.TotalHours,
			Minted: p.Achievement.Minted,
			Tier:   tier.Level(p.TotalHours),
		})
	}
	return st
}
