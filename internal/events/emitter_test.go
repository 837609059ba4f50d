package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visionfocus/focushours/internal/platform/logger"
)

// countingHandler implements Handler for testing.
type countingHandler struct {
	last    *Event
	err     error
	handled int
}

func (h *countingHandler) HandleEvent(_ context.Context, event *Event) error {
	h.last = event
	h.handled++
	return h.err
}

func TestInMemoryEmitter(t *testing.T) {
	log := logger.Discard()

	t.Run("emit with no handlers", func(t *testing.T) {
		emitter := NewInMemoryEmitter(log)
		event, err := New(TypeFocusRecorded, 2025, FocusRecorded{Hours: 1})
		require.NoError(t, err)

		assert.NoError(t, emitter.Emit(context.Background(), event))
	})

	t.Run("every handler receives the event", func(t *testing.T) {
		emitter := NewInMemoryEmitter(log)
		h1, h2 := &countingHandler{}, &countingHandler{}
		emitter.Register(h1)
		emitter.Register(h2)

		event, err := New(TypePlanetCreated, 2025, nil)
		require.NoError(t, err)
		require.NoError(t, emitter.Emit(context.Background(), event))

		assert.Equal(t, 1, h1.handled)
		assert.Equal(t, 1, h2.handled)
		assert.Same(t, event, h1.last)
	})

	t.Run("failing handler does not stop delivery", func(t *testing.T) {
		emitter := NewInMemoryEmitter(log)
		failing := &countingHandler{err: errors.New("speaker unplugged")}
		ok := &countingHandler{}
		emitter.Register(failing)
		emitter.Register(ok)

		event, err := New(TypeTierReached, 2025, TierReached{From: 0, To: 1})
		require.NoError(t, err)

		err = emitter.Emit(context.Background(), event)
		assert.EqualError(t, err, "speaker unplugged")
		assert.Equal(t, 1, ok.handled)
	})

	t.Run("type filter", func(t *testing.T) {
		emitter := NewInMemoryEmitter(log)
		rec := &Recorder{}
		emitter.Register(rec, TypeTierReached)

		for _, typ := range []string{TypeFocusRecorded, TypeTierReached, TypeFocusRecorded} {
			event, err := New(typ, 2025, nil)
			require.NoError(t, err)
			require.NoError(t, emitter.Emit(context.Background(), event))
		}
		assert.Equal(t, []string{TypeTierReached}, rec.Types())
	})

	t.Run("handler func", func(t *testing.T) {
		emitter := NewInMemoryEmitter(log)
		var got int
		emitter.Register(HandlerFunc(func(_ context.Context, e *Event) error {
			got = e.Year
			return nil
		}))

		event, err := New(TypeMilestoneDone, 2031, MilestoneDone{Milestone: "meditation"})
		require.NoError(t, err)
		require.NoError(t, emitter.Emit(context.Background(), event))
		assert.Equal(t, 2031, got)
	})
}
