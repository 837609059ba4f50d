package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/visionfocus/focushours/internal/api/middleware"
)

// NewRouter registers every route of h.
func NewRouter(h *Handler, log *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.NewTraceMiddleware(log))
	r.Use(middleware.RequestLogger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/user", h.GetUser)
		r.Patch("/user", h.UpdateUser)

		r.Get("/settings", h.GetSettings)
		r.Patch("/settings", h.UpdateSettings)

		r.Route("/planets", func(r chi.Router) {
			r.Get("/", h.ListPlanets)
			r.Post("/", h.CreatePlanet)
			r.Get("/current", h.GetCurrentPlanet)
			r.Put("/current", h.SetCurrentPlanet)

			r.Route("/{year}", func(r chi.Router) {
				r.Get("/", h.GetPlanet)
				r.Patch("/", h.UpdatePlanet)
				r.Post("/milestones/{milestone}", h.CompleteMilestone)
				r.Put("/wishes", h.SaveWishes)
				r.Patch("/wishes/{wishID}", h.UpdateWish)
				r.Post("/focus", h.AddFocus)
				r.Put("/board", h.SaveBoard)
				r.Put("/achievement", h.SaveAchievement)
				r.Post("/achievement/mint", h.MintAchievement)
			})
		})

		r.Get("/stats", h.GetStats)
		r.Get("/tiers", h.GetTiers)
		r.Get("/export", h.Export)
		r.Post("/import", h.Import)
		r.Delete("/data", h.Reset)
	})

	r.Get("/health", h.Health)
	return r
}
