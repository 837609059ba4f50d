// Package store defines the key-value persistence contract the progress
// repository depends on, together with its error vocabulary and a few
// helpers shared by every backend.
//
// Backends live under internal/platform. Values are opaque bytes at this
// layer; GetJSON and SetJSON add the textual JSON encoding every logical key
// uses.
package store
