// Package engine implements the progress computation and synchronization
// core of a trackline widget.
//
// One Engine instance owns one widget: it converts a continuous scroll
// signal (or a discrete navigation command) into a normalized progress
// fraction, derives the pixel translation shared by the item and label
// tracks, the progress-indicator fill, and the filled state of every marker
// dot, then publishes the result as a timeline.Frame.
//
// # Pipeline
//
// Every recomputation runs the same strict pipeline, never interleaved with
// another update:
//
//	measure → dimensions → (progress mapper | index navigator) → track transform → dot sync → publish
//
// All stages are pure functions of the current measurement; a pass with
// unchanged inputs produces an identical frame, so passes are safe to run
// every animation frame.
//
// # Modes
//
// Three independent axes are handled: scroll-driven vs. command-driven
// navigation, horizontal vs. vertical orientation, and arbitrary item
// count/width. Dimensions derives the active Mode; all downstream stages
// dispatch on it rather than re-checking configuration.
//
// # Failure model
//
// Degenerate geometry (zero items, non-positive scroll range) is a defined
// edge case, not an error: the mapper yields fraction 0 and the navigator
// disables itself. A failed measurement makes a pass return early without
// mutating state, so one broken widget never affects its siblings; the next
// trigger retries naturally.
package engine
