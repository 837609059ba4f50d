package api

import (
	"github.com/visionfocus/focushours/internal/domain"
	"github.com/visionfocus/focushours/internal/domain/tier"
)

// YearRequest is the body of POST /planets and PUT /planets/current.
type YearRequest struct {
	Year int `json:"year" validate:"required,min=1,max=9999"`
}

// WishInput is one wish of a SaveWishesRequest.
type WishInput struct {
	ID         string          `json:"id" validate:"omitempty,max=128"`
	Text       string          `json:"text" validate:"required,max=500"`
	Category   domain.Category `json:"type"`
	Icon       string          `json:"icon" validate:"max=64"`
	FocusHours float64         `json:"focusHours" validate:"gte=0"`
	CreatedAt  domain.Millis   `json:"createdAt"`
}

// SaveWishesRequest is the body of PUT /planets/{year}/wishes.
type SaveWishesRequest struct {
	Wishes []WishInput `json:"wishes" validate:"required,dive"`
}

func (r SaveWishesRequest) toDomain() []domain.Wish {
	out := make([]domain.Wish, len(r.Wishes))
	for i, w := range r.Wishes {
		out[i] = domain.Wish{
			ID:         w.ID,
			Text:       w.Text,
			Category:   w.Category,
			Icon:       w.Icon,
			FocusHours: w.FocusHours,
			CreatedAt:  w.CreatedAt,
		}
	}
	return out
}

// FocusRequest is the body of POST /planets/{year}/focus.
type FocusRequest struct {
	WishID string  `json:"wishId" validate:"omitempty,max=128"`
	Hours  float64 `json:"hours" validate:"gt=0"`
	Note   string  `json:"note" validate:"max=1000"`
}

// MintRequest is the body of POST /planets/{year}/achievement/mint. It
// carries the receipt of an artifact minted by the caller.
type MintRequest struct {
	TokenID         string `json:"tokenId" validate:"required"`
	TransactionHash string `json:"transactionHash" validate:"required"`
}

// TiersResponse is the body of GET /tiers.
type TiersResponse struct {
	Tiers   []tier.Tier   `json:"tiers"`
	Summary *tier.Summary `json:"summary,omitempty"`
}

// YearResponse is the body of GET /planets/current. Planet is null until
// the current year has a planet.
type YearResponse struct {
	Year   int            `json:"year"`
	Planet *domain.Planet `json:"planet"`
}
