// Package cli implements the trackline command-line interface.
//
// This package provides commands for driving the timeline progress engine
// from a terminal: an interactive simulator, a one-shot frame computation,
// a development HTTP server, and recording replay. The CLI is built using
// cobra and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - sim: Interactive terminal simulator for scroll and arrow navigation
//   - compute: Compute a single frame for a given scroll offset or index
//   - serve: HTTP server exposing the engine for local development
//   - replay: Replay a recorded input session through the engine
//   - recordings: Manage stored input recordings
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tracklinehq/trackline/pkg/buildinfo"
	"github.com/tracklinehq/trackline/pkg/recording"
	"github.com/tracklinehq/trackline/pkg/timeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "trackline"

	// defaultItemLength is the simulated item card length when no real
	// layout backs the engine.
	defaultItemLength = 600.0
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "trackline",
		Short:        "Trackline drives scroll-linked timeline progress",
		Long:         `Trackline is the computation engine behind a horizontal timeline widget: it maps page scroll or arrow commands to track translation, progress fill, and dot states, and this CLI lets you simulate, inspect, and serve that engine locally.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.simCommand())
	root.AddCommand(c.computeCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.replayCommand())
	root.AddCommand(c.recordingsCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Setup Loading
// =============================================================================

// setup is the resolved configuration and content for one engine instance.
type setup struct {
	cfg   timeline.Config
	items []timeline.Item
}

// loadSetup resolves config and content from CLI flags. With no config file
// the defaults apply; with no content file a synthetic item set of the given
// count is generated so the engine always has something to drive.
func (c *CLI) loadSetup(configPath, itemsPath string, syntheticCount int) (setup, error) {
	cfg := timeline.DefaultConfig()
	contentPath := ""

	if configPath != "" {
		loaded, content, err := timeline.LoadConfig(configPath)
		if err != nil {
			return setup{}, fmt.Errorf("load config %s: %w", configPath, err)
		}
		cfg = loaded
		contentPath = content
	}

	if itemsPath != "" {
		contentPath = itemsPath
	}

	if contentPath != "" {
		items, err := timeline.LoadItems(contentPath)
		if err != nil {
			return setup{}, fmt.Errorf("load items %s: %w", contentPath, err)
		}
		return setup{cfg: cfg, items: items}, nil
	}

	items := make([]timeline.Item, syntheticCount)
	for i := range items {
		items[i] = timeline.Item{Title: fmt.Sprintf("Milestone %d", i+1)}
	}
	return setup{cfg: cfg, items: items}, nil
}

// =============================================================================
// Stores & Paths
// =============================================================================

// newRecordingStore opens the default recording store.
func newRecordingStore() (*recording.FileStore, error) {
	dir, err := recordingsDir()
	if err != nil {
		return nil, err
	}
	return recording.NewFileStore(dir)
}

// recordingsDir returns the recording directory using XDG standard
// (~/.config/trackline/recordings/).
func recordingsDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "recordings"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "recordings"), nil
}
