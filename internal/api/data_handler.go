package api

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/visionfocus/focushours/internal/api/shared"
	"github.com/visionfocus/focushours/internal/domain"
	"github.com/visionfocus/focushours/internal/domain/tier"
	"github.com/visionfocus/focushours/internal/platform/logger"
)

// GetStats handles GET /api/stats.
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	st, err := h.store.GetAllStats(r.Context())
	respond(w, r, http.StatusOK, st, err)
}

// GetTiers handles GET /api/tiers. With ?hours= it also describes where that
// hour count sits.
func (h *Handler) GetTiers(w http.ResponseWriter, r *http.Request) {
	resp := TiersResponse{Tiers: tier.All()}

	if raw := r.URL.Query().Get("hours"); raw != "" {
		hours, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(hours) || math.IsInf(hours, 0) || hours < 0 {
			HandleAPIError(w, r, fmt.Errorf("%w: hours %q", shared.ErrBadRequest, raw))
			return
		}
		s := tier.Describe(hours)
		resp.Summary = &s
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// Export handles GET /api/export.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	snap, err := h.store.ExportAll(r.Context())
	if err == nil {
		w.Header().Set("Content-Disposition", `attachment; filename="focushours-export.json"`)
	}
	respond(w, r, http.StatusOK, snap, err)
}

// Import handles POST /api/import.
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	var in domain.ImportSnapshot
	if !decode(w, r, &in) {
		return
	}
	if err := h.store.ImportAll(r.Context(), in); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Reset handles DELETE /api/data.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Clear(r.Context()); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	logger.FromContextOrDefault(r.Context(), h.log).Warn("all focus data cleared")
	w.WriteHeader(http.StatusNoContent)
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		h.log.Error("failed to write health check response", "error", err)
	}
}
