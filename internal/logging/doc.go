// Package logging assembles the structured slog loggers used across
// trackmatch.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes attribute helpers so matcher and client code can
// tag log lines consistently. A no-op logger is provided for tests and
// wiring code that cannot fail.
package logging
