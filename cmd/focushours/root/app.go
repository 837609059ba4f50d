package root

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/visionfocus/focushours/internal/config"
	"github.com/visionfocus/focushours/internal/events"
	"github.com/visionfocus/focushours/internal/platform/backend"
	"github.com/visionfocus/focushours/internal/platform/logger"
	"github.com/visionfocus/focushours/internal/repository"
	"github.com/visionfocus/focushours/internal/service"
)

// app is everything a command needs once storage is open.
type app struct {
	cfg          *config.Config
	log          *slog.Logger
	repo         *repository.Repository
	emitter      *events.InMemoryEmitter
	focus        *service.FocusService
	planets      *service.PlanetService
	achievements *service.AchievementService
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	file, _ := cmd.Flags().GetString("config")
	return config.Load(config.Options{File: file, Flags: cmd.Flags()})
}

func openApp(cmd *cobra.Command) (*app, func(), error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	log := logger.Setup(logger.Config{
		Level:  cfg.Server.LogLevel,
		Format: cfg.Server.LogFormat,
		Output: cmd.ErrOrStderr(),
	})

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	kv, err := backend.Open(ctx, cfg.Storage, log)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := kv.Close(); err != nil {
			log.Warn("failed to close storage", "error", err)
		}
	}

	repo := repository.New(kv, log,
		repository.WithPrefix(cfg.Storage.Prefix),
		repository.WithMaxWishes(cfg.Engine.MaxWishes),
		repository.WithStrictWishRefs(cfg.Engine.StrictWishRefs),
	)
	if err := repo.Init(ctx); err != nil {
		cleanup()
		return nil, nil, err
	}

	emitter := events.NewInMemoryEmitter(log)
	emitter.Register(events.HandlerFunc(func(ctx context.Context, e *events.Event) error {
		logger.FromContextOrDefault(ctx, log).Debug("event", "event_type", e.Type, "year", e.Year)
		return nil
	}))

	return &app{
		cfg:          cfg,
		log:          log,
		repo:         repo,
		emitter:      emitter,
		focus:        service.NewFocusService(repo, emitter, log),
		planets:      service.NewPlanetService(repo, emitter, log),
		achievements: service.NewAchievementService(repo, emitter, log),
	}, cleanup, nil
}

// withApp runs fn with an opened app and closes it afterwards.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app) error) error {
	a, cleanup, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer cleanup()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return fn(ctx, a)
}
