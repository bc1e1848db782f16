package engine

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/tracklinehq/trackline/pkg/errors"
	"github.com/tracklinehq/trackline/pkg/observability"
	"github.com/tracklinehq/trackline/pkg/schedule"
	"github.com/tracklinehq/trackline/pkg/timeline"
)

// Trigger names reported to hooks and logs.
const (
	TriggerInit    = "init"
	TriggerScroll  = "scroll"
	TriggerResize  = "resize"
	TriggerContent = "content-size"
	TriggerNav     = "navigate"
	TriggerRefresh = "refresh"
)

// =============================================================================
// Collaborators
// =============================================================================

// Measurement is a synchronous snapshot of the current layout geometry. The
// engine requests one per pipeline pass and caches nothing beyond it.
//
// All positions are along the track's primary axis. Item and dot coordinates
// are track-space (unaffected by the track's own translation).
type Measurement struct {
	Viewport timeline.Viewport

	// ContentHeight is the sticky content's own height.
	ContentHeight float64

	// StickyTop is the sticky area's top edge relative to the viewport top;
	// negative once scrolled past. Horizontal scroll mode only.
	StickyTop float64

	// AreaTop and AreaHeight describe the timeline area for vertical
	// orientation.
	AreaTop    float64
	AreaHeight float64

	TrackLength     float64
	ContainerLength float64
	ProgressLength  float64

	Items []timeline.ItemGeometry
	Dots  []timeline.DotGeometry
}

// GeometryProvider exposes read-only layout measurements. Measure reports
// ok=false when the backing layout is missing or torn down; the engine
// treats that as a fail-soft early return, never an error.
type GeometryProvider interface {
	Measure() (Measurement, bool)
}

// Sink receives the frame produced by each pipeline pass. The engine never
// builds layout structure; the sink applies the derived values.
type Sink interface {
	Apply(timeline.Frame)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(timeline.Frame)

// Apply calls f.
func (f SinkFunc) Apply(frame timeline.Frame) { f(frame) }

// =============================================================================
// Options
// =============================================================================

// Option configures an Engine.
type Option func(*Engine)

// WithClock injects a clock for the coalescer and debouncer. Tests use a
// schedule.VirtualClock here.
func WithClock(c schedule.Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithLogger sets the engine's logger.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithFrameInterval overrides the scroll coalescing frame interval.
func WithFrameInterval(d time.Duration) Option {
	return func(e *Engine) { e.frameInterval = d }
}

// WithQuietWindow overrides the resize debounce quiet window.
func WithQuietWindow(d time.Duration) Option {
	return func(e *Engine) { e.quietWindow = d }
}

// =============================================================================
// Engine
// =============================================================================

// Engine owns all state for one timeline widget. State is mutated only from
// within the pipeline, which the internal lock serializes: at most one
// recomputation is ever active, and stages run as a strict pipeline, never
// interleaved with another update cycle.
type Engine struct {
	mu sync.Mutex

	id     string
	cfg    timeline.Config
	items  []timeline.Item
	geo    GeometryProvider
	sink   Sink
	logger *log.Logger
	clock  schedule.Clock

	frameInterval time.Duration
	quietWindow   time.Duration

	coalescer *schedule.FrameCoalescer
	debouncer *schedule.Debouncer
	subs      []schedule.Subscription

	nav      *Navigator
	dims     DimensionResult
	measured bool
	fraction float64
	frame    timeline.Frame
	hasFrame bool

	destroyed bool
}

// New creates an engine for one widget instance and runs the initial
// pipeline pass.
//
// Initialization aborts with an error when the configuration is invalid,
// the item sequence is empty, or no geometry provider is supplied; the
// failure affects only this instance. A provider whose first Measure fails
// is not fatal; the engine publishes its first frame once geometry exists.
//
// Lifecycle hooks fire in order: OnBeforeInit precedes any computation,
// OnAfterInit follows the initial pass.
func New(cfg timeline.Config, source timeline.Source, geo GeometryProvider, sink Sink, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if geo == nil {
		return nil, errors.New(errors.ErrCodeNoGeometry, "no geometry provider")
	}

	var items []timeline.Item
	if source != nil {
		items = source.Items()
	}
	if len(items) == 0 {
		return nil, errors.New(errors.ErrCodeNoContent, "no timeline items")
	}

	e := &Engine{
		id:     uuid.NewString(),
		cfg:    cfg,
		items:  items,
		geo:    geo,
		sink:   sink,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}

	ctx := context.Background()
	observability.Engine().OnBeforeInit(ctx, e.id, len(items))

	e.nav = NewNavigator(len(items))
	e.coalescer = schedule.NewFrameCoalescer(e.clock, e.frameInterval, e.id, func() {
		e.pass(TriggerScroll, false)
	})
	e.debouncer = schedule.NewDebouncer(e.clock, e.quietWindow, e.id, func() {
		e.pass(TriggerResize, true)
	})

	e.pass(TriggerInit, true)

	e.mu.Lock()
	mode := e.dims.Mode
	e.mu.Unlock()
	observability.Engine().OnAfterInit(ctx, e.id, mode.Orientation, mode.NavigationType)

	e.logger.Debug("engine initialized",
		"id", e.id,
		"items", len(items),
		"navigation", cfg.NavigationType)

	return e, nil
}

// ID returns the instance identifier.
func (e *Engine) ID() string { return e.id }

// Items returns the materialized item sequence, read once at construction.
func (e *Engine) Items() []timeline.Item { return e.items }

// Mode returns the active mode derived by the last dimension pass.
func (e *Engine) Mode() timeline.Mode {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dims.Mode
}

// Fraction returns the current progress fraction.
func (e *Engine) Fraction() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.fraction
}

// Frame returns the most recently published frame, if any pass has
// completed successfully.
func (e *Engine) Frame() (timeline.Frame, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.frame, e.hasFrame
}

// =============================================================================
// Trigger Wiring
// =============================================================================

// BindScroll subscribes the engine to a scroll signal source. Signals are
// coalesced to the next frame boundary; the subscription is released on
// Destroy.
func (e *Engine) BindScroll(src *schedule.Source) {
	e.bind(src, e.NotifyScroll)
}

// BindResize subscribes the engine to a resize signal source. Signals are
// debounced by the quiet window before the dimension calculator reruns.
func (e *Engine) BindResize(src *schedule.Source) {
	e.bind(src, e.NotifyResize)
}

// BindContentSize subscribes the engine to a content-size-change source,
// which is treated like a resize for recomputation purposes.
func (e *Engine) BindContentSize(src *schedule.Source) {
	e.bind(src, e.NotifyContentSize)
}

func (e *Engine) bind(src *schedule.Source, fn func()) {
	sub := src.Subscribe(fn)
	e.mu.Lock()
	if e.destroyed {
		e.mu.Unlock()
		sub.Cancel()
		return
	}
	e.subs = append(e.subs, sub)
	e.mu.Unlock()
}

// NotifyScroll reports a scroll signal. High-frequency calls are cheap: at
// most one recomputation runs per frame interval.
func (e *Engine) NotifyScroll() { e.coalescer.Request() }

// NotifyResize reports a viewport resize. Recomputation runs once the quiet
// window elapses.
func (e *Engine) NotifyResize() { e.debouncer.Trigger() }

// NotifyContentSize reports a track growth or shrink without a window
// resize. Shares the resize debounce.
func (e *Engine) NotifyContentSize() { e.debouncer.Trigger() }

// Refresh runs a full synchronous pipeline pass, bypassing the scheduler.
// Callers that already debounce or batch their own signals use this to see
// the resulting frame immediately.
func (e *Engine) Refresh() { e.pass(TriggerRefresh, true) }

// =============================================================================
// Navigation Commands (arrow mode)
// =============================================================================

// GoTo moves to item i (clamped into range) and publishes the resulting
// frame. Only valid in arrow navigation.
func (e *Engine) GoTo(i int) error {
	return e.navigate(func(geo NavGeometry) NavResult { return e.nav.GoTo(i, geo) })
}

// Next advances one item; a no-op at the last index.
func (e *Engine) Next() error {
	return e.navigate(func(geo NavGeometry) NavResult { return e.nav.Next(geo) })
}

// Prev moves back one item; a no-op at index 0.
func (e *Engine) Prev() error {
	return e.navigate(func(geo NavGeometry) NavResult { return e.nav.Prev(geo) })
}

func (e *Engine) navigate(cmd func(NavGeometry) NavResult) error {
	start := time.Now()
	ctx := context.Background()

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.destroyed {
		return errors.New(errors.ErrCodeDestroyed, "engine destroyed")
	}
	if !e.dims.Mode.IsArrows() {
		return errors.New(errors.ErrCodeUnsupported, "navigation commands require arrows mode, active mode is %s", e.dims.Mode.NavigationType)
	}

	observability.Engine().OnPassStart(ctx, e.id, TriggerNav)

	m, ok := e.geo.Measure()
	if !ok {
		err := errors.New(errors.ErrCodeNoGeometry, "measurement unavailable")
		observability.Engine().OnPassComplete(ctx, e.id, TriggerNav, e.fraction, time.Since(start), err)
		return err
	}

	res := cmd(navGeometry(m))
	e.publishNav(res)
	observability.Engine().OnPassComplete(ctx, e.id, TriggerNav, e.fraction, time.Since(start), nil)
	return nil
}

// publishNav converts a NavResult into the current frame. Caller holds the
// lock.
func (e *Engine) publishNav(res NavResult) {
	e.fraction = res.FillPercent / 100
	e.frame = timeline.Frame{
		Mode:         e.dims.Mode,
		Fraction:     e.fraction,
		SpacerAuto:   true,
		Translate:    res.Translate,
		FillPercent:  res.FillPercent,
		Dots:         res.Dots,
		PrevDisabled: res.PrevDisabled,
		NextDisabled: res.NextDisabled,
		CurrentIndex: res.Index,
	}
	e.hasFrame = true
	if e.sink != nil {
		e.sink.Apply(e.frame)
	}
}

// =============================================================================
// Pipeline
// =============================================================================

// pass runs one coalesced update: dimensions (when geometry changed),
// then the mapper or navigator, then track transform, then dot sync, then
// publish. Stages never interleave with another update cycle; the lock
// guarantees at most one active recomputation.
func (e *Engine) pass(trigger string, recalcDims bool) {
	start := time.Now()
	ctx := context.Background()

	e.mu.Lock()
	defer e.mu.Unlock()

	// A frame callback scheduled before teardown may still fire; it must
	// no-op once the backing state is gone.
	if e.destroyed {
		return
	}

	observability.Engine().OnPassStart(ctx, e.id, trigger)

	m, ok := e.geo.Measure()
	if !ok {
		// Fail-soft: no partial mutation, the next trigger retries.
		e.logger.Debug("pass skipped, measurement unavailable", "id", e.id, "trigger", trigger)
		observability.Engine().OnPassComplete(ctx, e.id, trigger, e.fraction, time.Since(start),
			errors.New(errors.ErrCodeNoGeometry, "measurement unavailable"))
		return
	}

	if recalcDims || !e.measured {
		e.dims = Dimensions(e.cfg, m.Viewport, m.ContentHeight, len(e.items))
		e.measured = true
	}

	switch {
	case e.dims.Mode.IsArrows():
		e.publishNav(e.nav.Apply(navGeometry(m)))

	case e.dims.Mode.IsVertical():
		fraction := VerticalFraction(m.AreaTop, m.AreaHeight, m.Viewport.Height)
		fill := VerticalFill(fraction)
		e.publishScroll(fraction, 0, fill, fraction*m.ProgressLength, m)

	default:
		fraction := HorizontalFraction(m.StickyTop, e.dims.ScrollHeight, m.ContentHeight)
		tf := Transform(fraction, m.TrackLength, m.ContainerLength)
		e.publishScroll(fraction, tf.Translate, tf.FillPercent, fraction*m.ProgressLength, m)
	}

	observability.Engine().OnPassComplete(ctx, e.id, trigger, e.fraction, time.Since(start), nil)
}

// publishScroll builds and publishes a scroll-mode frame. Caller holds the
// lock.
func (e *Engine) publishScroll(fraction, translate, fillPercent, fillEdge float64, m Measurement) {
	e.fraction = fraction
	e.frame = timeline.Frame{
		Mode:         e.dims.Mode,
		Fraction:     fraction,
		SpacerHeight: e.dims.ScrollHeight,
		SpacerAuto:   e.dims.SpacerAuto,
		Translate:    translate,
		FillPercent:  fillPercent,
		Dots:         SyncDots(fillEdge, m.Dots),
		CurrentIndex: -1,
	}
	e.hasFrame = true
	if e.sink != nil {
		e.sink.Apply(e.frame)
	}
}

func navGeometry(m Measurement) NavGeometry {
	return NavGeometry{
		Items:           m.Items,
		Dots:            m.Dots,
		TrackLength:     m.TrackLength,
		ContainerLength: m.ContainerLength,
		ProgressLength:  m.ProgressLength,
	}
}

// =============================================================================
// Teardown
// =============================================================================

// Destroy deregisters all trigger subscriptions, stops the scheduler
// strategies, and announces the destroy lifecycle event. Destroy is
// idempotent; after it returns the engine accepts no further transitions,
// and any already-scheduled frame callback no-ops safely.
func (e *Engine) Destroy() {
	e.mu.Lock()
	if e.destroyed {
		e.mu.Unlock()
		return
	}
	e.destroyed = true
	subs := e.subs
	e.subs = nil
	e.mu.Unlock()

	for _, sub := range subs {
		sub.Cancel()
	}
	e.coalescer.Stop()
	e.debouncer.Stop()

	observability.Engine().OnDestroy(context.Background(), e.id)
	e.logger.Debug("engine destroyed", "id", e.id)
}
