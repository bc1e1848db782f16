package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tracklinehq/trackline/pkg/engine"
	"github.com/tracklinehq/trackline/pkg/timeline"
)

// Output formats for the compute command.
const (
	formatText = "text"
	formatJSON = "json"
)

// computeCommand creates the compute command for one-shot frame computation.
func (c *CLI) computeCommand() *cobra.Command {
	var (
		configPath string
		itemsPath  string
		count      int
		scroll     float64
		index      int
		width      float64
		height     float64
		format     string
	)

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute a single frame for a scroll offset or item index",
		Long: `Compute a single frame for a scroll offset or item index.

The compute command builds an engine over a simulated layout, runs one
pipeline pass at the given input state, and prints the resulting frame.
Use --scroll for scroll navigation and --index for arrow navigation.

Without --config or --items a synthetic item set is generated, which is
enough to inspect how configuration maps inputs to frames.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatText && format != formatJSON {
				return fmt.Errorf("unknown format %q (want text or json)", format)
			}

			s, err := c.loadSetup(configPath, itemsPath, count)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("index") {
				s.cfg.NavigationType = timeline.NavArrows
			}

			geo := newSimGeometry(s.cfg, len(s.items), timeline.Viewport{Width: width, Height: height})
			geo.SetScroll(scroll)

			var last timeline.Frame
			sink := engine.SinkFunc(func(f timeline.Frame) { last = f })

			e, err := engine.New(s.cfg, timeline.StaticSource(s.items), geo, sink,
				engine.WithLogger(c.Logger))
			if err != nil {
				return fmt.Errorf("create engine: %w", err)
			}
			defer e.Destroy()

			if cmd.Flags().Changed("index") {
				if err := e.GoTo(index); err != nil {
					return fmt.Errorf("go to index %d: %w", index, err)
				}
			}

			if format == formatJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(last)
			}

			fmt.Print(renderFrameSummary(last))
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file")
	cmd.Flags().StringVar(&itemsPath, "items", "", "content file (.toml, .yaml)")
	cmd.Flags().IntVarP(&count, "count", "n", 5, "synthetic item count when no content file is given")
	cmd.Flags().Float64Var(&scroll, "scroll", 0, "simulated page scroll offset")
	cmd.Flags().IntVarP(&index, "index", "i", 0, "target item index (switches to arrow navigation)")
	cmd.Flags().Float64Var(&width, "width", 1280, "simulated viewport width")
	cmd.Flags().Float64Var(&height, "height", 800, "simulated viewport height")
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text (default), json")

	return cmd
}
