package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/visionfocus/focushours/internal/api/shared"
	"github.com/visionfocus/focushours/internal/domain"
	"github.com/visionfocus/focushours/internal/repository"
	"github.com/visionfocus/focushours/internal/service"
	"github.com/visionfocus/focushours/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes.
func MapErrorToStatusCode(err error) int {
	var verrs validator.ValidationErrors

	switch {
	case errors.Is(err, shared.ErrBadRequest),
		errors.As(err, &verrs),
		domain.IsValidationError(err):
		return http.StatusBadRequest

	case errors.Is(err, repository.ErrPlanetNotFound),
		errors.Is(err, repository.ErrWishNotFound):
		return http.StatusNotFound

	case errors.Is(err, repository.ErrPlanetExists),
		errors.Is(err, repository.ErrDuplicateWishID),
		errors.Is(err, repository.ErrMilestoneOutOfOrder),
		errors.Is(err, repository.ErrAchievementNotGenerated),
		errors.Is(err, service.ErrAlreadyMinted):
		return http.StatusConflict

	case errors.Is(err, service.ErrMintFailed),
		errors.Is(err, service.ErrInvalidReceipt):
		return http.StatusBadGateway

	case errors.Is(err, repository.ErrNotInitialized),
		errors.Is(err, store.ErrUnavailable),
		errors.Is(err, store.ErrClosed):
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a user-facing message for err that never
// includes storage or driver details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var verrs validator.ValidationErrors
	switch {
	case errors.Is(err, shared.ErrBadRequest):
		return "Invalid request format"
	case errors.As(err, &verrs):
		return SanitizeValidationError(verrs)
	case domain.IsValidationError(err):
		return validationMessage(err)

	case errors.Is(err, repository.ErrPlanetNotFound):
		return "Planet not found"
	case errors.Is(err, repository.ErrWishNotFound):
		return "Wish not found"
	case errors.Is(err, repository.ErrPlanetExists):
		return "Planet already exists"
	case errors.Is(err, repository.ErrDuplicateWishID):
		return "Duplicate wish id"
	case errors.Is(err, repository.ErrMilestoneOutOfOrder):
		return "Previous milestone not completed"
	case errors.Is(err, repository.ErrAchievementNotGenerated):
		return "Achievement not generated"
	case errors.Is(err, service.ErrAlreadyMinted):
		return "Achievement already minted"
	case errors.Is(err, service.ErrMintFailed),
		errors.Is(err, service.ErrInvalidReceipt):
		return "Minting failed"

	case errors.Is(err, repository.ErrNotInitialized),
		errors.Is(err, store.ErrUnavailable),
		errors.Is(err, store.ErrClosed):
		return "Storage unavailable"

	default:
		return "An unexpected error occurred"
	}
}

// validationMessage returns the message of the first domain sentinel in err.
func validationMessage(err error) string {
	for _, sentinel := range []error{
		domain.ErrInvalidYear,
		domain.ErrInvalidHours,
		domain.ErrEmptyWishText,
		domain.ErrTooManyWishes,
		domain.ErrInvalidCategory,
		domain.ErrInvalidLayout,
		domain.ErrInvalidBoardItem,
		domain.ErrInvalidVolume,
		domain.ErrInvalidMilestone,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return "Validation error"
}

// SanitizeValidationError turns validator errors into a short message naming
// the first offending field.
func SanitizeValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Validation error"
	}
	fe := verrs[0]
	return fmt.Sprintf("Invalid %s: %s", fe.Field(), tagMessage(fe.Tag()))
}

func tagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min", "gte", "gt":
		return "too small"
	case "max", "lte", "lt":
		return "too large"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}

// HandleAPIError writes the response for err and logs the cause.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
