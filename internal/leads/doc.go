// Package leads implements the lead-submission pipeline shared by every
// public form: bot filter, validation, rate limiting, persistence and an
// optional best-effort notification.
//
// A submission moves through the stages in a fixed order and stops at the
// first failing one:
//
//	bot filter -> validator -> rate limiter -> gateway -> notifier
//
// The pipeline never returns an error to its caller. Every internal failure
// is logged with full detail and converted into an Outcome carrying a short,
// fixed user-facing message.
package leads
