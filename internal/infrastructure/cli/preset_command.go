package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPresetCommand(h *containerHolder) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "List or apply built-in setting bundles",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List built-in presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range h.container().Catalog.Presets() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s (%d settings)\n", p.Name, p.Description, len(p.Settings))
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "apply NAME",
		Short: "Apply a preset and save",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := h.container()
			if err := requireConfig(c); err != nil {
				return err
			}
			if err := c.Service.ApplyPreset(args[0]); err != nil {
				return err
			}
			if err := c.Service.SaveConfig(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Preset %s applied and saved to %s\n", args[0], c.Store.Path())
			return nil
		},
	})

	return cmd
}
