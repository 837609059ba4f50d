// Package events carries progress notifications from the engine to
// presentation collaborators such as audio or animation players.
//
// Services emit events without knowing who consumes them. The primary
// components are:
// - Event: a typed notification with a JSON payload
// - Handler: a component that reacts to events
// - Emitter: a component that publishes events to handlers
package events
