package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tracklinehq/trackline/pkg/engine"
	"github.com/tracklinehq/trackline/pkg/recording"
	"github.com/tracklinehq/trackline/pkg/timeline"
)

// simCommand creates the sim command for interactive engine exploration.
func (c *CLI) simCommand() *cobra.Command {
	var (
		configPath string
		itemsPath  string
		count      int
		width      float64
		height     float64
		record     bool
	)

	cmd := &cobra.Command{
		Use:   "sim",
		Short: "Interactively simulate scroll and arrow navigation",
		Long: `Interactively simulate scroll and arrow navigation.

The sim command runs the engine against a simulated layout and renders
each published frame in the terminal. In scroll navigation, j/k and the
arrow keys move the simulated page scroll; in arrow navigation, h/l step
between items. +/- resize the simulated viewport, which exercises the
mobile breakpoint switch.

With --record, every input is captured and stored as a recording that
'trackline replay' can play back.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.loadSetup(configPath, itemsPath, count)
			if err != nil {
				return err
			}
			return c.runSim(s, timeline.Viewport{Width: width, Height: height}, record)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file")
	cmd.Flags().StringVar(&itemsPath, "items", "", "content file (.toml, .yaml)")
	cmd.Flags().IntVarP(&count, "count", "n", 5, "synthetic item count when no content file is given")
	cmd.Flags().Float64Var(&width, "width", 1280, "simulated viewport width")
	cmd.Flags().Float64Var(&height, "height", 800, "simulated viewport height")
	cmd.Flags().BoolVar(&record, "record", false, "record inputs for later replay")

	return cmd
}

// runSim builds the engine and runs the bubbletea program until quit.
func (c *CLI) runSim(s setup, viewport timeline.Viewport, record bool) error {
	geo := newSimGeometry(s.cfg, len(s.items), viewport)

	frames := make(chan timeline.Frame, 32)
	sink := engine.SinkFunc(func(f timeline.Frame) {
		select {
		case frames <- f:
		default:
		}
	})

	e, err := engine.New(s.cfg, timeline.StaticSource(s.items), geo, sink,
		engine.WithLogger(c.Logger))
	if err != nil {
		return fmt.Errorf("create engine: %w", err)
	}
	defer e.Destroy()

	var rec *recording.Recording
	if record {
		rec = recording.New(s.cfg, len(s.items))
	}

	model := newSimModel(e, geo, s.items, frames, rec)
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return fmt.Errorf("run simulator: %w", err)
	}

	if rec != nil && rec.Len() > 0 {
		store, err := newRecordingStore()
		if err != nil {
			return fmt.Errorf("open recording store: %w", err)
		}
		if err := store.Save(rec); err != nil {
			return fmt.Errorf("save recording: %w", err)
		}
		printSuccess("Recorded %d inputs", rec.Len())
		printDetail("ID: %s", rec.ID)
		printNewline()
		printNextStep("Replay", "trackline replay "+rec.ID)
	}

	return nil
}

// =============================================================================
// SimModel - Interactive Engine Simulation
// =============================================================================

// frameMsg delivers an engine-published frame to the model.
type frameMsg timeline.Frame

// waitForFrame returns a command that blocks until the engine publishes.
func waitForFrame(frames <-chan timeline.Frame) tea.Cmd {
	return func() tea.Msg {
		return frameMsg(<-frames)
	}
}

// simModel is the bubbletea model for the interactive simulator.
type simModel struct {
	eng    *engine.Engine
	geo    *simGeometry
	items  []timeline.Item
	frames <-chan timeline.Frame
	rec    *recording.Recording

	frame     timeline.Frame
	haveFrame bool
	termWidth int
}

// newSimModel creates a simulator model around a running engine.
func newSimModel(e *engine.Engine, geo *simGeometry, items []timeline.Item, frames <-chan timeline.Frame, rec *recording.Recording) simModel {
	m := simModel{
		eng:       e,
		geo:       geo,
		items:     items,
		frames:    frames,
		rec:       rec,
		termWidth: 80,
	}
	if f, ok := e.Frame(); ok {
		m.frame = f
		m.haveFrame = true
	}
	return m
}

func (m simModel) Init() tea.Cmd {
	return waitForFrame(m.frames)
}

func (m simModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.frame = timeline.Frame(msg)
		m.haveFrame = true
		return m, waitForFrame(m.frames)

	case tea.WindowSizeMsg:
		m.termWidth = msg.Width

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		default:
			m.handleKey(msg.String())
		}
	}
	return m, nil
}

// handleKey dispatches a navigation key in the current mode.
func (m simModel) handleKey(key string) {
	mode := m.eng.Mode()
	if mode.IsArrows() {
		m.handleArrowKey(key)
		return
	}
	m.handleScrollKey(key)
}

func (m simModel) handleArrowKey(key string) {
	switch key {
	case "right", "l":
		if m.eng.Next() == nil {
			m.record(recording.Input{Kind: recording.KindNext})
		}
	case "left", "h":
		if m.eng.Prev() == nil {
			m.record(recording.Input{Kind: recording.KindPrev})
		}
	case "g":
		if m.eng.GoTo(0) == nil {
			m.record(recording.Input{Kind: recording.KindGoTo, Index: 0})
		}
	case "G":
		last := len(m.items) - 1
		if m.eng.GoTo(last) == nil {
			m.record(recording.Input{Kind: recording.KindGoTo, Index: last})
		}
	}
}

func (m simModel) handleScrollKey(key string) {
	step := m.geo.MaxScroll() / 40
	if step <= 0 {
		step = 25
	}

	switch key {
	case "down", "j":
		m.scrollTo(m.geo.ScrollBy(step))
	case "up", "k":
		m.scrollTo(m.geo.ScrollBy(-step))
	case "pgdown", "f":
		m.scrollTo(m.geo.ScrollBy(step * 8))
	case "pgup", "b":
		m.scrollTo(m.geo.ScrollBy(-step * 8))
	case "g":
		m.geo.SetScroll(0)
		m.scrollTo(0)
	case "G":
		max := m.geo.MaxScroll()
		m.geo.SetScroll(max)
		m.scrollTo(max)
	case "+", "=":
		m.resizeBy(100)
	case "-":
		m.resizeBy(-100)
	}
}

func (m simModel) scrollTo(offset float64) {
	m.eng.NotifyScroll()
	m.record(recording.Input{Kind: recording.KindScroll, Offset: offset})
}

func (m simModel) resizeBy(delta float64) {
	v := m.geo.Viewport()
	v.Width += delta
	if v.Width < 200 {
		v.Width = 200
	}
	m.geo.SetViewport(v)
	m.eng.NotifyResize()
	m.record(recording.Input{Kind: recording.KindResize, Viewport: v})
}

func (m simModel) record(in recording.Input) {
	if m.rec != nil {
		m.rec.Append(in)
	}
}

func (m simModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Trackline Simulator"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(m.helpLine()))
	b.WriteString("\n\n")

	if !m.haveFrame {
		b.WriteString(StyleDim.Render("waiting for first frame..."))
		b.WriteString("\n")
		return b.String()
	}

	barWidth := m.termWidth - 12
	if barWidth > 60 {
		barWidth = 60
	}
	if barWidth < 10 {
		barWidth = 10
	}

	v := m.geo.Viewport()
	b.WriteString(StyleDim.Render(fmt.Sprintf("viewport %.0fx%.0f  scroll %.0f/%.0f",
		v.Width, v.Height, m.geo.Scroll(), m.geo.MaxScroll())))
	b.WriteString("\n\n")

	b.WriteString("  " + renderProgressBar(m.frame.Fraction*100, barWidth))
	b.WriteString("\n")
	b.WriteString("  " + renderDots(m.frame.Dots))
	if m.frame.Mode.IsArrows() && m.frame.CurrentIndex >= 0 && m.frame.CurrentIndex < len(m.items) {
		b.WriteString("  " + StyleHighlight.Render(m.items[m.frame.CurrentIndex].Title))
	}
	b.WriteString("\n\n")

	b.WriteString(renderFrameSummary(m.frame))

	return b.String()
}

// helpLine returns the key legend for the active mode.
func (m simModel) helpLine() string {
	if m.eng.Mode().IsArrows() {
		return "h/l step  g/G first/last  q quit"
	}
	return "j/k scroll  f/b page  g/G top/bottom  +/- resize  q quit"
}
