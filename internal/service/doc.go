// Package service contains use cases that span the repository and the event
// emitter. Services receive their dependencies through constructor injection
// and depend on small repository interfaces rather than on a concrete store.
//
// Key components:
//
//   - FocusService records focus time and announces tier crossings.
//   - PlanetService creates planets and completes milestones, announcing both.
//   - AchievementService drives an external Minter and records its receipt.
//
// Events are best effort: a handler failure is logged and never undoes or
// fails the persisted change.
package service
