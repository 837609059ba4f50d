// Package tier maps accumulated focus hours to one of five discrete
// achievement tiers ("manifestation levels") and to the continuous progress
// toward the next tier. Everything here is pure and stateless; presentation
// code calls it with a planet's aggregate hours.
package tier
