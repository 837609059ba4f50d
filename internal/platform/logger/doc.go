// Package logger provides structured logging functionality for the application.
//
// It builds on the standard library log/slog package: Setup installs a JSON or
// text handler at the configured level as the process default, and the context
// helpers carry a request-scoped logger through the HTTP and storage layers.
package logger
