package repository

import "errors"

var (
	// ErrNotInitialized is returned by every operation before Init succeeds.
	ErrNotInitialized = errors.New("repository not initialized")

	// ErrPlanetNotFound is returned by mutations addressing a year with no planet.
	ErrPlanetNotFound = errors.New("planet not found")

	// ErrPlanetExists is returned when creating a planet for a year that already has one.
	ErrPlanetExists = errors.New("planet already exists")

	// ErrWishNotFound is returned when a wish id does not exist in the planet.
	ErrWishNotFound = errors.New("wish not found")

	// ErrDuplicateWishID is returned when a saved wish list repeats an id.
	ErrDuplicateWishID = errors.New("duplicate wish id")

	// ErrAchievementNotGenerated is returned when marking an achievement as
	// minted before it was generated.
	ErrAchievementNotGenerated = errors.New("achievement not generated")

	// ErrMilestoneOutOfOrder is returned when completing a milestone whose
	// predecessor is still open.
	ErrMilestoneOutOfOrder = errors.New("previous milestone not completed")

	// ErrPersistence wraps every failure of the underlying store.
	ErrPersistence = errors.New("persistence failure")
)
