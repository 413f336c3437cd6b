package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPathCommand(h *containerHolder) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show where the config, backups, and profiles live",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := h.container()
			out := cmd.OutOrStdout()
			if c.ConfigPath == "" {
				fmt.Fprintf(out, "Config: not found (%v)\n", c.ResolveErr)
				fmt.Fprintln(out, "Run the game once to create it, or pass --config with its location.")
				return nil
			}
			fmt.Fprintf(out, "Config:   %s\n", c.ConfigPath)
			fmt.Fprintf(out, "Backups:  %s\n", c.Backups.Dir())
			fmt.Fprintf(out, "Profiles: %s\n", c.Profiles.Dir())
			return nil
		},
	}
}

func newHistoryCommand(h *containerHolder) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent changes made through arctuner",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := h.container()
			if err := requireConfig(c); err != nil {
				return err
			}
			records, err := c.History.Recent(limit)
			if err != nil {
				return err
			}
			renderHistory(cmd.OutOrStdout(), records)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of entries to show")
	return cmd
}
