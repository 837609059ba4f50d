package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/visionfocus/focushours/internal/api/shared"
	"github.com/visionfocus/focushours/internal/domain"
	"github.com/visionfocus/focushours/internal/repository"
	"github.com/visionfocus/focushours/internal/service"
)

// ListPlanets handles GET /api/planets.
func (h *Handler) ListPlanets(w http.ResponseWriter, r *http.Request) {
	planets, err := h.store.ListPlanets(r.Context())
	respond(w, r, http.StatusOK, planets, err)
}

// CreatePlanet handles POST /api/planets.
func (h *Handler) CreatePlanet(w http.ResponseWriter, r *http.Request) {
	var req YearRequest
	if !decode(w, r, &req) {
		return
	}
	p, err := h.planets.Create(r.Context(), req.Year)
	respond(w, r, http.StatusCreated, p, err)
}

// GetCurrentPlanet handles GET /api/planets/current.
func (h *Handler) GetCurrentPlanet(w http.ResponseWriter, r *http.Request) {
	year, err := h.store.GetCurrentYear(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	p, err := h.store.GetPlanet(r.Context(), year)
	respond(w, r, http.StatusOK, YearResponse{Year: year, Planet: p}, err)
}

// SetCurrentPlanet handles PUT /api/planets/current.
func (h *Handler) SetCurrentPlanet(w http.ResponseWriter, r *http.Request) {
	var req YearRequest
	if !decode(w, r, &req) {
		return
	}
	if err := h.store.SetCurrentYear(r.Context(), req.Year); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	p, err := h.store.GetPlanet(r.Context(), req.Year)
	respond(w, r, http.StatusOK, YearResponse{Year: req.Year, Planet: p}, err)
}

// GetPlanet handles GET /api/planets/{year}.
func (h *Handler) GetPlanet(w http.ResponseWriter, r *http.Request) {
	year, ok := pathYear(w, r)
	if !ok {
		return
	}
	p, err := h.store.GetPlanet(r.Context(), year)
	if err == nil && p == nil {
		err = repository.ErrPlanetNotFound
	}
	respond(w, r, http.StatusOK, p, err)
}

// UpdatePlanet handles PATCH /api/planets/{year}.
func (h *Handler) UpdatePlanet(w http.ResponseWriter, r *http.Request) {
	year, ok := pathYear(w, r)
	if !ok {
		return
	}
	var patch domain.PlanetPatch
	if !decode(w, r, &patch) {
		return
	}
	p, err := h.store.UpdatePlanet(r.Context(), year, patch)
	respond(w, r, http.StatusOK, p, err)
}

// CompleteMilestone handles POST /api/planets/{year}/milestones/{milestone}.
func (h *Handler) CompleteMilestone(w http.ResponseWriter, r *http.Request) {
	year, ok := pathYear(w, r)
	if !ok {
		return
	}
	m := domain.Milestone(chi.URLParam(r, "milestone"))
	p, err := h.planets.CompleteMilestone(r.Context(), year, m)
	respond(w, r, http.StatusOK, p, err)
}

// SaveWishes handles PUT /api/planets/{year}/wishes.
func (h *Handler) SaveWishes(w http.ResponseWriter, r *http.Request) {
	year, ok := pathYear(w, r)
	if !ok {
		return
	}
	var req SaveWishesRequest
	if !decode(w, r, &req) {
		return
	}
	wishes, err := h.store.SaveWishes(r.Context(), year, req.toDomain())
	respond(w, r, http.StatusOK, wishes, err)
}

// UpdateWish handles PATCH /api/planets/{year}/wishes/{wishID}.
func (h *Handler) UpdateWish(w http.ResponseWriter, r *http.Request) {
	year, ok := pathYear(w, r)
	if !ok {
		return
	}
	var patch domain.WishPatch
	if !decode(w, r, &patch) {
		return
	}
	wish, err := h.store.UpdateWish(r.Context(), year, chi.URLParam(r, "wishID"), patch)
	respond(w, r, http.StatusOK, wish, err)
}

// AddFocus handles POST /api/planets/{year}/focus.
func (h *Handler) AddFocus(w http.ResponseWriter, r *http.Request) {
	year, ok := pathYear(w, r)
	if !ok {
		return
	}
	var req FocusRequest
	if !decode(w, r, &req) {
		return
	}
	res, err := h.focus.Record(r.Context(), year, req.WishID, req.Hours, req.Note)
	respond(w, r, http.StatusCreated, res, err)
}

// SaveBoard handles PUT /api/planets/{year}/board.
func (h *Handler) SaveBoard(w http.ResponseWriter, r *http.Request) {
	year, ok := pathYear(w, r)
	if !ok {
		return
	}
	// The repository validates the board after defaulting its layout.
	var board domain.VisionBoard
	if err := shared.DecodeJSON(w, r, &board); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	saved, err := h.store.SaveVisionBoard(r.Context(), year, board)
	respond(w, r, http.StatusOK, saved, err)
}

// SaveAchievement handles PUT /api/planets/{year}/achievement.
func (h *Handler) SaveAchievement(w http.ResponseWriter, r *http.Request) {
	year, ok := pathYear(w, r)
	if !ok {
		return
	}
	var in domain.AchievementInput
	if !decode(w, r, &in) {
		return
	}
	a, err := h.store.SaveAchievement(r.Context(), year, in)
	respond(w, r, http.StatusOK, a, err)
}

// MintAchievement handles POST /api/planets/{year}/achievement/mint.
func (h *Handler) MintAchievement(w http.ResponseWriter, r *http.Request) {
	year, ok := pathYear(w, r)
	if !ok {
		return
	}
	var req MintRequest
	if !decode(w, r, &req) {
		return
	}
	a, err := h.achievements.Mint(r.Context(), year, service.ReceiptMinter{
		TokenID:         req.TokenID,
		TransactionHash: req.TransactionHash,
	})
	respond(w, r, http.StatusOK, a, err)
}
