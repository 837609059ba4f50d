package service

import (
	"context"
	"log/slog"

	"github.com/visionfocus/focushours/internal/domain"
	"github.com/visionfocus/focushours/internal/events"
)

// PlanetRepository is the part of the repository PlanetService needs.
type PlanetRepository interface {
	CreatePlanet(ctx context.Context, year int) (*domain.Planet, error)
	GetPlanet(ctx context.Context, year int) (*domain.Planet, error)
	CompleteMilestone(ctx context.Context, year int, m domain.Milestone) (*domain.Planet, error)
}

// PlanetService drives the planet lifecycle.
type PlanetService struct {
	repo    PlanetRepository
	emitter events.Emitter
	log     *slog.Logger
}

// NewPlanetService creates a PlanetService. emitter may be nil.
func NewPlanetService(repo PlanetRepository, emitter events.Emitter, log *slog.Logger) *PlanetService {
	if log == nil {
		log = slog.Default()
	}
	return &PlanetService{
		repo:    repo,
		emitter: emitter,
		log:     log.With("component", "planet_service"),
	}
}

// Create creates the planet for year and emits planet.created.
func (s *PlanetService) Create(ctx context.Context, year int) (*domain.Planet, error) {
	p, err := s.repo.CreatePlanet(ctx, year)
	if err != nil {
		return nil, err
	}
	emit(ctx, s.emitter, s.log, events.TypePlanetCreated, year, nil)
	return p, nil
}

// CompleteMilestone completes m and emits milestone.completed the first time.
func (s *PlanetService) CompleteMilestone(ctx context.Context, year int, m domain.Milestone) (*domain.Planet, error) {
	before, err := s.repo.GetPlanet(ctx, year)
	if err != nil {
		return nil, err
	}
	already := before != nil && before.Completed(m)

	p, err := s.repo.CompleteMilestone(ctx, year, m)
	if err != nil {
		return nil, err
	}
	if !already {
		emit(ctx, s.emitter, s.log, events.TypeMilestoneDone, year, events.MilestoneDone{Milestone: string(m)})
	}
	return p, nil
}
