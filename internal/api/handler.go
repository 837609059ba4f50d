package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/visionfocus/focushours/internal/api/shared"
	"github.com/visionfocus/focushours/internal/domain"
	"github.com/visionfocus/focushours/internal/service"
)

// Store is the repository surface the handlers use.
type Store interface {
	GetUser(ctx context.Context) (*domain.User, error)
	UpdateUser(ctx context.Context, patch domain.UserPatch) (*domain.User, error)

	GetSettings(ctx context.Context) (*domain.Settings, error)
	UpdateSettings(ctx context.Context, patch domain.SettingsPatch) (*domain.Settings, error)

	ListPlanets(ctx context.Context) ([]domain.Planet, error)
	GetPlanet(ctx context.Context, year int) (*domain.Planet, error)
	UpdatePlanet(ctx context.Context, year int, patch domain.PlanetPatch) (*domain.Planet, error)
	GetCurrentYear(ctx context.Context) (int, error)
	SetCurrentYear(ctx context.Context, year int) error

	SaveWishes(ctx context.Context, year int, wishes []domain.Wish) ([]domain.Wish, error)
	UpdateWish(ctx context.Context, year int, wishID string, patch domain.WishPatch) (*domain.Wish, error)
	SaveVisionBoard(ctx context.Context, year int, board domain.VisionBoard) (*domain.VisionBoard, error)
	SaveAchievement(ctx context.Context, year int, in domain.AchievementInput) (*domain.Achievement, error)

	GetAllStats(ctx context.Context) (*domain.Stats, error)
	ExportAll(ctx context.Context) (*domain.Snapshot, error)
	ImportAll(ctx context.Context, in domain.ImportSnapshot) error
	Clear(ctx context.Context) error
}

// Handler serves the API routes.
type Handler struct {
	store        Store
	focus        *service.FocusService
	planets      *service.PlanetService
	achievements *service.AchievementService
	log          *slog.Logger
}

// NewHandler creates a Handler.
func NewHandler(
	store Store,
	focus *service.FocusService,
	planets *service.PlanetService,
	achievements *service.AchievementService,
	log *slog.Logger,
) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{
		store:        store,
		focus:        focus,
		planets:      planets,
		achievements: achievements,
		log:          log.With("component", "api"),
	}
}

// decode reads and validates the request body into v. It writes the error
// response and returns false on failure.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := shared.DecodeJSON(w, r, v); err != nil {
		HandleAPIError(w, r, err)
		return false
	}
	if err := shared.ValidateRequest(v); err != nil {
		HandleAPIError(w, r, err)
		return false
	}
	return true
}

// pathYear parses the {year} parameter. It writes the error response and
// returns false on failure.
func pathYear(w http.ResponseWriter, r *http.Request) (int, bool) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err == nil {
		err = domain.ValidateYear(year)
	} else {
		err = fmt.Errorf("%w: %q", domain.ErrInvalidYear, chi.URLParam(r, "year"))
	}
	if err != nil {
		HandleAPIError(w, r, err)
		return 0, false
	}
	return year, true
}

// respond writes v with status, or the error response for err.
func respond(w http.ResponseWriter, r *http.Request, status int, v any, err error) {
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, status, v)
}
