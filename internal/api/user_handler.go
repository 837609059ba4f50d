package api

import (
	"net/http"

	"github.com/visionfocus/focushours/internal/domain"
)

// GetUser handles GET /api/user.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	u, err := h.store.GetUser(r.Context())
	respond(w, r, http.StatusOK, u, err)
}

// UpdateUser handles PATCH /api/user.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var patch domain.UserPatch
	if !decode(w, r, &patch) {
		return
	}
	u, err := h.store.UpdateUser(r.Context(), patch)
	respond(w, r, http.StatusOK, u, err)
}

// GetSettings handles GET /api/settings.
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	s, err := h.store.GetSettings(r.Context())
	respond(w, r, http.StatusOK, s, err)
}

// UpdateSettings handles PATCH /api/settings.
func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var patch domain.SettingsPatch
	if !decode(w, r, &patch) {
		return
	}
	s, err := h.store.UpdateSettings(r.Context(), patch)
	respond(w, r, http.StatusOK, s, err)
}
