package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/visionfocus/focushours/internal/domain"
	"github.com/visionfocus/focushours/internal/domain/tier"
	"github.com/visionfocus/focushours/internal/events"
)

// FocusRepository is the part of the repository FocusService needs.
type FocusRepository interface {
	AddFocusRecord(ctx context.Context, year int, wishID string, hours float64, note string) (*domain.FocusRecord, error)
	TotalHours(ctx context.Context, year int) (float64, error)
}

// FocusResult describes one recorded contribution.
type FocusResult struct {
	Record     *domain.FocusRecord `json:"record"`
	TotalHours float64             `json:"totalHours"`
	Tier       tier.Summary        `json:"tier"`
	// Reached lists the tiers entered by this contribution, lowest first.
	Reached []tier.Tier `json:"reached,omitempty"`
}

// FocusService records focus time.
type FocusService struct {
	// mu makes the before/after tier comparison exact for callers that
	// share this service.
	mu      sync.Mutex
	repo    FocusRepository
	emitter events.Emitter
	log     *slog.Logger
}

// NewFocusService creates a FocusService. emitter may be nil.
func NewFocusService(repo FocusRepository, emitter events.Emitter, log *slog.Logger) *FocusService {
	if log == nil {
		log = slog.Default()
	}
	return &FocusService{
		repo:    repo,
		emitter: emitter,
		log:     log.With("component", "focus_service"),
	}
}

// Record adds hours to the planet for year, optionally attributed to a wish.
// It emits focus.recorded and, for every tier boundary crossed, tier.reached.
func (s *FocusService) Record(ctx context.Context, year int, wishID string, hours float64, note string) (*FocusResult, error) {
	if err := domain.ValidateHours(hours); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	before, err := s.repo.TotalHours(ctx, year)
	if err != nil {
		return nil, err
	}
	rec, err := s.repo.AddFocusRecord(ctx, year, wishID, hours, note)
	if err != nil {
		return nil, err
	}
	after, err := s.repo.TotalHours(ctx, year)
	if err != nil {
		return nil, err
	}

	res := &FocusResult{
		Record:     rec,
		TotalHours: after,
		Tier:       tier.Describe(after),
		Reached:    tier.Crossed(before, after),
	}

	emit(ctx, s.emitter, s.log, events.TypeFocusRecorded, year, events.FocusRecorded{
		RecordID:   rec.ID,
		WishID:     wishID,
		Hours:      hours,
		TotalHours: after,
	})
	from := tier.Level(before)
	for _, t := range res.Reached {
		s.log.Info("tier reached", "year", year, "tier", t.Level, "name", t.Name)
		emit(ctx, s.emitter, s.log, events.TypeTierReached, year, events.TierReached{
			From:   from,
			To:     t.Level,
			Name:   t.Name,
			Effect: t.Effect,
		})
		from = t.Level
	}
	return res, nil
}
