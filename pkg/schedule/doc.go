// Package schedule coalesces high-frequency triggers into bounded
// recomputation work.
//
// The timeline engine receives scroll, resize, and content-size signals at
// arbitrary rates. Processing each one individually would thrash; this
// package provides the two named strategies the engine uses instead:
//
//   - FrameCoalescer ("coalesce-to-next-frame"): at most one recomputation is
//     scheduled per frame interval. A second request while a frame is pending
//     is dropped, not queued.
//   - Debouncer ("debounce-by-duration"): work runs only after a quiet window
//     with no further triggers, so continuous resize dragging produces a
//     single recomputation reflecting the final geometry.
//
// Both strategies are parameterized by a Clock so they can be tested with a
// virtual clock instead of real timers. Source and Subscription model
// page-level trigger registration as explicit handles owned by the engine
// instance and released deterministically on teardown.
package schedule
