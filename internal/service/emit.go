package service

import (
	"context"
	"log/slog"

	"github.com/visionfocus/focushours/internal/events"
	"github.com/visionfocus/focushours/internal/platform/logger"
)

// emit publishes an event and logs, rather than returns, any failure.
func emit(ctx context.Context, em events.Emitter, log *slog.Logger, eventType string, year int, payload any) {
	if em == nil {
		return
	}
	log = logger.FromContextOrDefault(ctx, log)

	ev, err := events.New(eventType, year, payload)
	if err != nil {
		log.Error("failed to build event", "event_type", eventType, "error", err)
		return
	}
	if err := em.Emit(ctx, ev); err != nil {
		log.Warn("event delivery failed",
			"event_id", ev.ID,
			"event_type", eventType,
			"error", err)
	}
}
