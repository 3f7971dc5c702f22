// Package game implements the yearline game engine: configuration intake,
// playlist sequencing, per-team timelines, chronological placement
// validation, guess scoring, and the power-up economy.
//
// The engine is a synchronous state container. Every operation runs to
// completion on the calling goroutine before any other operation may
// observe state; callers that may race must serialize access (see the
// session package). Expected failures are absorbed: operations become
// no-ops or return false, and never panic or corrupt state.
package game
