package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event types emitted by the services.
const (
	TypeFocusRecorded     = "focus.recorded"
	TypeTierReached       = "tier.reached"
	TypePlanetCreated     = "planet.created"
	TypeMilestoneDone     = "milestone.completed"
	TypeAchievementMinted = "achievement.minted"
)

// Event is a notification about one planet.
type Event struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Type is one of the Type* constants
	Type string `json:"type"`

	// Year identifies the planet the event is about
	Year int `json:"year"`

	// Payload contains the type-specific data serialized as JSON
	Payload json.RawMessage `json:"payload"`

	CreatedAt time.Time `json:"createdAt"`
}

// FocusRecorded is the payload of TypeFocusRecorded.
type FocusRecorded struct {
	RecordID   string  `json:"recordId"`
	WishID     string  `json:"wishId,omitempty"`
	Hours      float64 `json:"hours"`
	TotalHours float64 `json:"totalHours"`
}

// TierReached is the payload of TypeTierReached.
type TierReached struct {
	From   int    `json:"from"`
	To     int    `json:"to"`
	Name   string `json:"name"`
	Effect string `json:"effect"`
}

// MilestoneDone is the payload of TypeMilestoneDone.
type MilestoneDone struct {
	Milestone string `json:"milestone"`
}

// AchievementMinted is the payload of TypeAchievementMinted.
type AchievementMinted struct {
	TokenID         string `json:"tokenId"`
	TransactionHash string `json:"transactionHash"`
}

// UnmarshalPayload decodes the event payload into v.
func (e *Event) UnmarshalPayload(v any) error {
	return json.Unmarshal(e.Payload, v)
}

// New creates an Event with the given type, planet year and payload.
func New(eventType string, year int, payload any) (*Event, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &Event{
		ID:        uuid.New(),
		Type:      eventType,
		Year:      year,
		Payload:   raw,
		CreatedAt: time.Now(),
	}, nil
}

// Handler reacts to events.
type Handler interface {
	// HandleEvent processes the given event. Returns an error if the event
	// cannot be handled.
	HandleEvent(ctx context.Context, event *Event) error
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, event *Event) error

// HandleEvent calls f.
func (f HandlerFunc) HandleEvent(ctx context.Context, event *Event) error {
	return f(ctx, event)
}

// Emitter publishes events.
type Emitter interface {
	// Emit publishes the given event to all registered handlers.
	Emit(ctx context.Context, event *Event) error
}

// Nop is an Emitter that drops every event.
type Nop struct{}

// Emit implements Emitter.
func (Nop) Emit(context.Context, *Event) error { return nil }
