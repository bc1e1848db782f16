package schedule

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/tracklinehq/trackline/pkg/observability"
)

// Default scheduling parameters.
const (
	// DefaultFrameInterval approximates one animation frame at 60fps.
	DefaultFrameInterval = 16 * time.Millisecond

	// DefaultQuietWindow is the debounce window for resize and
	// content-size triggers.
	DefaultQuietWindow = 100 * time.Millisecond
)

// =============================================================================
// FrameCoalescer - Coalesce-to-Next-Frame
// =============================================================================

// FrameCoalescer runs a callback at most once per frame interval, no matter
// how many requests arrive. A request while a frame is already pending is
// dropped (flag-guarded), never queued, so a burst of scroll signals costs
// one recomputation.
type FrameCoalescer struct {
	mu       sync.Mutex
	clock    Clock
	interval time.Duration
	id       string
	fn       func()
	pending  bool
	stopped  bool
}

// NewFrameCoalescer creates a coalescer that invokes fn at the next frame
// boundary after a request. If clock is nil the system clock is used; if
// interval is not positive, DefaultFrameInterval is used.
func NewFrameCoalescer(clock Clock, interval time.Duration, instanceID string, fn func()) *FrameCoalescer {
	if clock == nil {
		clock = System()
	}
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &FrameCoalescer{
		clock:    clock,
		interval: interval,
		id:       instanceID,
		fn:       fn,
	}
}

// Request schedules the callback for the next frame boundary. If a frame is
// already pending the request is dropped. After Stop, requests are no-ops.
func (c *FrameCoalescer) Request() {
	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return
	}
	if c.pending {
		c.mu.Unlock()
		observability.Scheduler().OnFrameCoalesced(context.Background(), c.id)
		return
	}
	c.pending = true
	c.clock.AfterFunc(c.interval, c.fire)
	c.mu.Unlock()

	observability.Scheduler().OnFrameScheduled(context.Background(), c.id)
}

func (c *FrameCoalescer) fire() {
	c.mu.Lock()
	c.pending = false
	if c.stopped {
		c.mu.Unlock()
		return
	}
	fn := c.fn
	c.mu.Unlock()

	fn()
}

// Stop prevents any further callbacks. An already-scheduled frame callback
// may still run its timer, but it returns without invoking the callback.
func (c *FrameCoalescer) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopped = true
}

// Pending reports whether a frame callback is currently scheduled.
func (c *FrameCoalescer) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

// =============================================================================
// Debouncer - Debounce-by-Duration
// =============================================================================

// Debouncer delays its callback until a quiet window has elapsed with no
// further triggers. Each trigger restarts the window, so only the final state
// of a rapid sequence (a resize drag, say) is ever processed.
type Debouncer struct {
	mu      sync.Mutex
	clock   Clock
	quiet   time.Duration
	id      string
	fn      func()
	timer   Timer
	stopped bool
}

// NewDebouncer creates a debouncer with the given quiet window. If clock is
// nil the system clock is used; if quiet is not positive, DefaultQuietWindow
// is used.
func NewDebouncer(clock Clock, quiet time.Duration, instanceID string, fn func()) *Debouncer {
	if clock == nil {
		clock = System()
	}
	if quiet <= 0 {
		quiet = DefaultQuietWindow
	}
	return &Debouncer{
		clock: clock,
		quiet: quiet,
		id:    instanceID,
		fn:    fn,
	}
}

// Trigger restarts the quiet window. The callback runs once the window
// elapses without another trigger. After Stop, triggers are no-ops.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = d.clock.AfterFunc(d.quiet, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	fn := d.fn
	quiet := d.quiet
	id := d.id
	d.mu.Unlock()

	observability.Scheduler().OnDebounceFired(context.Background(), id, quiet)
	fn()
}

// Stop cancels any pending callback and prevents further triggers.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// =============================================================================
// Source - Trigger Subscription
// =============================================================================

// Subscription is an explicit handle on a trigger registration. Cancel
// releases it; cancelling twice is safe.
type Subscription interface {
	Cancel()
}

// Source is a fan-out trigger source (a page scroll signal, a resize signal).
// Subscribers are invoked synchronously on Emit in registration order.
type Source struct {
	mu   sync.Mutex
	subs map[int]func()
	next int
}

// NewSource creates an empty trigger source.
func NewSource() *Source {
	return &Source{subs: make(map[int]func())}
}

// Subscribe registers fn and returns a handle to release it.
func (s *Source) Subscribe(fn func()) Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.next
	s.next++
	s.subs[id] = fn
	return &subscription{src: s, id: id}
}

// Emit invokes all current subscribers.
func (s *Source) Emit() {
	s.mu.Lock()
	ids := make([]int, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	// Map order is random; deliver in registration order.
	sort.Ints(ids)
	fns := make([]func(), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, s.subs[id])
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Len returns the number of active subscriptions.
func (s *Source) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

type subscription struct {
	src *Source
	id  int
}

func (s *subscription) Cancel() {
	s.src.mu.Lock()
	defer s.src.mu.Unlock()
	delete(s.src.subs, s.id)
}
