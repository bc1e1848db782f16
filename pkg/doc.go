// Package pkg provides the core libraries for Trackline timeline progress.
//
// # Overview
//
// Trackline maps page inputs to the visual state of a horizontal timeline
// widget: how far the item track has translated, how much of the progress
// line is filled, and which dots are lit. The pkg directory is organized
// into five main areas:
//
//  1. [timeline] - Domain types (modes, items, configuration, frames)
//  2. [engine] - The computation pipeline (dimensions, progress, transform,
//     dots, navigation)
//  3. [schedule] - Update scheduling (frame coalescing, debouncing, clocks)
//  4. [recording] - Input session capture and storage
//  5. [errors] / [observability] - Structured errors and lifecycle hooks
//
// # Architecture
//
// The typical data flow through Trackline:
//
//	Scroll / Resize / Arrow Command
//	         ↓
//	schedule (coalesce or debounce)
//	         ↓
//	engine pipeline pass
//	  measure → dimensions → progress → transform → dots
//	         ↓
//	timeline.Frame → Sink
//
// The engine owns no layout. It measures a GeometryProvider at the start of
// each pass, derives one immutable Frame, and hands it to a Sink. Hosts
// decide how a Frame becomes pixels.
package pkg
