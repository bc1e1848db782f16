// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive engine lifecycle events, per-pass pipeline events, and scheduler
// events.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the engine dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, plain logs, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetEngineHooks(&myEngineHooks{})
//	    observability.SetSchedulerHooks(&mySchedulerHooks{})
//	    // ... run application
//	}
//
// The engine calls hooks to emit events:
//
//	observability.Engine().OnBeforeInit(ctx, id, itemCount)
//	// ... initial measurement and pass ...
//	observability.Engine().OnAfterInit(ctx, id, mode)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Engine Hooks
// =============================================================================

// EngineHooks receives lifecycle and pipeline events from timeline engines.
//
// Lifecycle ordering is guaranteed: OnBeforeInit precedes any pass event for
// an instance, and OnDestroy follows the removal of all trigger subscriptions.
type EngineHooks interface {
	// Lifecycle events
	OnBeforeInit(ctx context.Context, instanceID string, itemCount int)
	OnAfterInit(ctx context.Context, instanceID string, orientation, navigationType string)
	OnDestroy(ctx context.Context, instanceID string)

	// Pipeline pass events
	OnPassStart(ctx context.Context, instanceID, trigger string)
	OnPassComplete(ctx context.Context, instanceID, trigger string, fraction float64, duration time.Duration, err error)
}

// =============================================================================
// Scheduler Hooks
// =============================================================================

// SchedulerHooks receives events from trigger scheduling.
type SchedulerHooks interface {
	// OnFrameScheduled records a recomputation scheduled for the next frame.
	OnFrameScheduled(ctx context.Context, instanceID string)

	// OnFrameCoalesced records a trigger dropped because a frame was already
	// pending.
	OnFrameCoalesced(ctx context.Context, instanceID string)

	// OnDebounceFired records a debounced trigger firing after its quiet
	// window elapsed.
	OnDebounceFired(ctx context.Context, instanceID string, quiet time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopEngineHooks is a no-op implementation of EngineHooks.
type NoopEngineHooks struct{}

func (NoopEngineHooks) OnBeforeInit(context.Context, string, int)               {}
func (NoopEngineHooks) OnAfterInit(context.Context, string, string, string)     {}
func (NoopEngineHooks) OnDestroy(context.Context, string)                       {}
func (NoopEngineHooks) OnPassStart(context.Context, string, string)             {}
func (NoopEngineHooks) OnPassComplete(context.Context, string, string, float64, time.Duration, error) {
}

// NoopSchedulerHooks is a no-op implementation of SchedulerHooks.
type NoopSchedulerHooks struct{}

func (NoopSchedulerHooks) OnFrameScheduled(context.Context, string)                {}
func (NoopSchedulerHooks) OnFrameCoalesced(context.Context, string)                {}
func (NoopSchedulerHooks) OnDebounceFired(context.Context, string, time.Duration)  {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	engineHooks    EngineHooks    = NoopEngineHooks{}
	schedulerHooks SchedulerHooks = NoopSchedulerHooks{}
	hooksMu        sync.RWMutex
)

// SetEngineHooks registers custom engine hooks.
// This should be called once at application startup before any engine is created.
func SetEngineHooks(h EngineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		engineHooks = h
	}
}

// SetSchedulerHooks registers custom scheduler hooks.
// This should be called once at application startup before any engine is created.
func SetSchedulerHooks(h SchedulerHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		schedulerHooks = h
	}
}

// Engine returns the registered engine hooks.
func Engine() EngineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return engineHooks
}

// Scheduler returns the registered scheduler hooks.
func Scheduler() SchedulerHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return schedulerHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	engineHooks = NoopEngineHooks{}
	schedulerHooks = NoopSchedulerHooks{}
}
