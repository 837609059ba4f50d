// Package api exposes the focus engine over a local HTTP/JSON interface for
// presentation collaborators. It decodes and validates requests, calls the
// repository and services, and maps their errors to status codes without
// leaking internal details.
package api
