package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/visionfocus/focushours/internal/domain"
	"github.com/visionfocus/focushours/internal/domain/tier"
	"github.com/visionfocus/focushours/internal/events"
	"github.com/visionfocus/focushours/internal/platform/logger"
	"github.com/visionfocus/focushours/internal/repository"
)

// MintRequest is what a Minter receives.
type MintRequest struct {
	Year     int     `json:"year"`
	Wallet   string  `json:"wallet"`
	ImageURL string  `json:"imageUrl"`
	Hours    float64 `json:"hours"`
	Tier     int     `json:"tier"`
}

// MintReceipt is what a Minter reports. Both ids are opaque.
type MintReceipt struct {
	TokenID         string `json:"tokenId"`
	TransactionHash string `json:"transactionHash"`
}

// Minter turns a generated achievement into a ledger artifact.
type Minter interface {
	Mint(ctx context.Context, req MintRequest) (*MintReceipt, error)
}

// ReceiptMinter is a Minter for artifacts minted elsewhere: it reports the
// receipt it holds.
type ReceiptMinter MintReceipt

// Mint implements Minter.
func (m ReceiptMinter) Mint(context.Context, MintRequest) (*MintReceipt, error) {
	r := MintReceipt(m)
	return &r, nil
}

// AchievementRepository is the part of the repository AchievementService needs.
type AchievementRepository interface {
	GetUser(ctx context.Context) (*domain.User, error)
	GetPlanet(ctx context.Context, year int) (*domain.Planet, error)
	MarkAchievementMinted(ctx context.Context, year int, tokenID, txHash string) (*domain.Achievement, error)
}

// AchievementService mints planet achievements.
type AchievementService struct {
	repo    AchievementRepository
	emitter events.Emitter
	log     *slog.Logger
}

// NewAchievementService creates an AchievementService. emitter may be nil.
func NewAchievementService(repo AchievementRepository, emitter events.Emitter, log *slog.Logger) *AchievementService {
	if log == nil {
		log = slog.Default()
	}
	return &AchievementService{
		repo:    repo,
		emitter: emitter,
		log:     log.With("component", "achievement_service"),
	}
}

// Mint asks minter to mint the generated achievement of the planet for year
// and records the receipt verbatim.
func (s *AchievementService) Mint(ctx context.Context, year int, minter Minter) (*domain.Achievement, error) {
	log := logger.FromContextOrDefault(ctx, s.log)

	p, err := s.repo.GetPlanet(ctx, year)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: %d", repository.ErrPlanetNotFound, year)
	}
	if !p.Achievement.Generated {
		return nil, fmt.Errorf("%w: %d", repository.ErrAchievementNotGenerated, year)
	}
	if p.Achievement.Minted {
		return nil, fmt.Errorf("%w: %d", ErrAlreadyMinted, year)
	}

	u, err := s.repo.GetUser(ctx)
	if err != nil {
		return nil, err
	}

	receipt, err := minter.Mint(ctx, MintRequest{
		Year:     year,
		Wallet:   u.Wallet,
		ImageURL: p.Achievement.ImageURL,
		Hours:    p.TotalHours,
		Tier:     tier.Level(p.TotalHours),
	})
	if err != nil {
		log.Error("minter failed", "year", year, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrMintFailed, err)
	}
	if receipt == nil || receipt.TransactionHash == "" {
		return nil, ErrInvalidReceipt
	}

	a, err := s.repo.MarkAchievementMinted(ctx, year, receipt.TokenID, receipt.TransactionHash)
	if err != nil {
		return nil, err
	}

	log.Info("achievement minted", "year", year, "token_id", receipt.TokenID)
	emit(ctx, s.emitter, s.log, events.TypeAchievementMinted, year, events.AchievementMinted{
		TokenID:         receipt.TokenID,
		TransactionHash: receipt.TransactionHash,
	})
	return a, nil
}
