// Package timeline defines the shared data model for the trackline engine.
//
// This package holds the configuration surface, the geometry records produced
// by a layout measurement, and the Frame type that every pipeline pass
// publishes to the layout owner. It deliberately contains no computation:
// the progress and navigation logic lives in pkg/engine, and trigger
// scheduling lives in pkg/schedule.
//
// # Data Model
//
// The types fall into three groups:
//
//   - Configuration: Config and its validation. Immutable after construction.
//   - Measured geometry: Viewport, ItemGeometry, DotGeometry. Produced by a
//     geometry provider, recomputed whenever layout changes.
//   - Derived output: Frame. The serializable result of one pipeline pass,
//     consumed by whatever applies it to the real layout (TUI, dev server,
//     DOM bridge).
//
// Content manifests (the ordered item sequence) can be loaded from TOML or
// YAML files via LoadItems; the engine itself treats the sequence as already
// materialized and never re-fetches it.
package timeline
