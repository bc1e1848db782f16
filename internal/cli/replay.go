package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tracklinehq/trackline/pkg/engine"
	"github.com/tracklinehq/trackline/pkg/recording"
	"github.com/tracklinehq/trackline/pkg/timeline"
)

// replayCommand creates the replay command for playing back recordings.
func (c *CLI) replayCommand() *cobra.Command {
	var (
		realTime bool
		width    float64
		height   float64
	)

	cmd := &cobra.Command{
		Use:   "replay <id-or-file>",
		Short: "Replay a recorded input session through the engine",
		Long: `Replay a recorded input session through the engine.

The argument is either a recording ID from the local store (see
'trackline recordings list') or a path to a recording JSON file. Each
recorded input is fed to a fresh engine instance in order and the final
frame is printed.

By default inputs are applied back to back; --real-time honors the
recorded timestamps.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := loadRecording(args[0])
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())
			return c.runReplay(logger, rec, timeline.Viewport{Width: width, Height: height}, realTime)
		},
	}

	cmd.Flags().BoolVar(&realTime, "real-time", false, "honor recorded input timestamps")
	cmd.Flags().Float64Var(&width, "width", 1280, "initial simulated viewport width")
	cmd.Flags().Float64Var(&height, "height", 800, "initial simulated viewport height")

	return cmd
}

// loadRecording resolves the argument as a store ID first, then as a file path.
func loadRecording(arg string) (*recording.Recording, error) {
	if !strings.ContainsAny(arg, "/.") {
		store, err := newRecordingStore()
		if err != nil {
			return nil, fmt.Errorf("open recording store: %w", err)
		}
		return store.Load(arg)
	}

	data, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("read recording %s: %w", arg, err)
	}
	var rec recording.Recording
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parse recording %s: %w", arg, err)
	}
	return &rec, nil
}

// runReplay feeds the recorded inputs to a fresh engine and prints the result.
func (c *CLI) runReplay(logger *log.Logger, rec *recording.Recording, viewport timeline.Viewport, realTime bool) error {
	items := make([]timeline.Item, rec.ItemCount)
	for i := range items {
		items[i] = timeline.Item{Title: fmt.Sprintf("Milestone %d", i+1)}
	}

	geo := newSimGeometry(rec.Config, rec.ItemCount, viewport)

	var last timeline.Frame
	e, err := engine.New(rec.Config, timeline.StaticSource(items), geo,
		engine.SinkFunc(func(f timeline.Frame) { last = f }),
		engine.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("create engine: %w", err)
	}
	defer e.Destroy()

	prog := newProgress(logger)
	prev := time.Duration(0)

	for i, in := range rec.Inputs {
		if realTime && in.At > prev {
			time.Sleep(in.At - prev)
		}
		prev = in.At

		if err := applyInput(e, geo, in); err != nil {
			return fmt.Errorf("input %d (%s): %w", i, in.Kind, err)
		}
	}

	prog.done(fmt.Sprintf("Replayed %d inputs", rec.Len()))

	printNewline()
	printKeyValue("recording", rec.ID)
	printKeyValue("created", rec.CreatedAt.Format(time.RFC3339))
	printNewline()
	fmt.Print(renderFrameSummary(last))

	return nil
}

// applyInput drives the engine with one recorded input. Scroll and resize
// recompute synchronously so the replay is deterministic.
func applyInput(e *engine.Engine, geo *simGeometry, in recording.Input) error {
	switch in.Kind {
	case recording.KindScroll:
		geo.SetScroll(in.Offset)
		e.Refresh()
		return nil
	case recording.KindResize:
		geo.SetViewport(in.Viewport)
		e.Refresh()
		return nil
	case recording.KindNext:
		return e.Next()
	case recording.KindPrev:
		return e.Prev()
	case recording.KindGoTo:
		return e.GoTo(in.Index)
	default:
		return fmt.Errorf("unknown input kind %q", in.Kind)
	}
}
