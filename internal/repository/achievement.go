package repository

import (
	"context"
	"fmt"

	"github.com/visionfocus/focushours/internal/domain"
	"github.com/visionfocus/focushours/internal/platform/logger"
)

// SaveAchievement replaces the achievement of the planet for year. The
// engine stamps generated and generatedAt; a supplied transaction hash marks
// it minted as well. External ids are stored verbatim.
func (r *Repository) SaveAchievement(ctx context.Context, year int, in domain.AchievementInput) (*domain.Achievement, error) {
	unlock, err := r.lock()
	defer unlock()
	if err != nil {
		return nil, err
	}

	now := r.now()
	a := domain.Achievement{
		Generated:       true,
		TokenID:         in.TokenID,
		ImageURL:        in.ImageURL,
		TransactionHash: in.TransactionHash,
		GeneratedAt:     domain.MillisPtr(now),
	}
	if in.TransactionHash != "" {
		a.Minted = true
		a.MintedAt = domain.MillisPtr(now)
	}

	p, err := r.mutatePlanet(ctx, year, func(p *domain.Planet) error {
		p.Achievement = a
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContextOrDefault(ctx, r.log).Info("achievement saved", "year", year, "minted", a.Minted)
	return &p.Achievement, nil
}

// MarkAchievementMinted records the ledger receipt on a generated achievement.
func (r *Repository) MarkAchievementMinted(ctx context.Context, year int, tokenID, txHash string) (*domain.Achievement, error) {
	unlock, err := r.lock()
	defer unlock()
	if err != nil {
		return nil, err
	}

	p, err := r.mutatePlanet(ctx, year, func(p *domain.Planet) error {
		if !p.Achievement.Generated {
			return fmt.Errorf("%w: %d", ErrAchievementNotGenerated, year)
		}
		p.Achievement.Minted = true
		p.Achievement.TokenID = tokenID
		p.Achievement.TransactionHash = txHash
		p.Achievement.MintedAt = domain.MillisPtr(r.now())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &p.Achievement, nil
}

// GetAchievement returns the achievement of the planet for year, or nil.
func (r *Repository) GetAchievement(ctx context.Context, year int) (*domain.Achievement, error) {
	unlock, err := r.lock()
	defer unlock()
	if err != nil {
		return nil, err
	}

	p, err := r.planet(ctx, year)
	if err != nil || p == nil {
		return nil, err
	}
	return &p.Achievement, nil
}
