// Package repository is the progress store: typed get/create/update
// operations over the user, the yearly planets with their wishes, focus
// records, vision board and achievement, the settings bag and whole-state
// export and import.
//
// A Repository is constructed once at startup and handed to every
// collaborator. Init must succeed before any other call; until then every
// operation returns ErrNotInitialized.
//
// Lookups report absence as a nil result and a nil error. Mutations report
// not-found, conflict and validation problems as sentinel errors, checked
// before anything is written. Storage failures are logged here and returned
// wrapped in ErrPersistence.
package repository
