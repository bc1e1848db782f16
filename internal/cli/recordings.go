package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// recordingsCommand creates the recordings management command.
func (c *CLI) recordingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recordings",
		Short: "Manage stored input recordings",
	}

	cmd.AddCommand(c.recordingsListCommand())
	cmd.AddCommand(c.recordingsDeleteCommand())
	cmd.AddCommand(c.recordingsPathCommand())

	return cmd
}

// recordingsListCommand creates the "recordings list" subcommand.
func (c *CLI) recordingsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored recordings, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newRecordingStore()
			if err != nil {
				return fmt.Errorf("open recording store: %w", err)
			}

			recs, err := store.List()
			if err != nil {
				return fmt.Errorf("list recordings: %w", err)
			}

			if len(recs) == 0 {
				printInfo("No recordings stored")
				printNewline()
				printNextStep("Record a session", "trackline sim --record")
				return nil
			}

			for _, rec := range recs {
				fmt.Println(StyleValue.Render(rec.ID))
				printDetail("created %s · %d inputs · %s · %d items",
					rec.CreatedAt.Format(time.RFC3339),
					rec.Len(),
					rec.Duration().Round(time.Millisecond),
					rec.ItemCount)
			}
			return nil
		},
	}
}

// recordingsDeleteCommand creates the "recordings delete" subcommand.
func (c *CLI) recordingsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a stored recording",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newRecordingStore()
			if err != nil {
				return fmt.Errorf("open recording store: %w", err)
			}
			if err := store.Delete(args[0]); err != nil {
				return fmt.Errorf("delete recording: %w", err)
			}
			printSuccess("Deleted %s", args[0])
			return nil
		},
	}
}

// recordingsPathCommand creates the "recordings path" subcommand.
func (c *CLI) recordingsPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the recording directory path",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := recordingsDir()
			if err != nil {
				return fmt.Errorf("get recording dir: %w", err)
			}
			fmt.Println(dir)
			return nil
		},
	}
}
