package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSettingsCommand(h *containerHolder) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "List known settings and their current values",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := h.container()
			defs := c.Catalog.All()
			if category != "" {
				defs = c.Catalog.ByCategory(category)
				if len(defs) == 0 {
					return fmt.Errorf("unknown category %q (known: %v)", category, c.Catalog.Categories())
				}
			}
			renderSettings(cmd.OutOrStdout(), c.Store, defs)
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Only show one category")
	return cmd
}

func newGetCommand(h *containerHolder) *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY",
		Short: "Read one setting (the catalog default when unset)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := h.container()
			value, err := c.Store.Get(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", args[0], value)
			renderWarnings(cmd.OutOrStdout(), c.Store.Warnings())
			return nil
		},
	}
}

func newSetCommand(h *containerHolder) *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Validate, set, and save one setting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := h.container()
			if err := requireConfig(c); err != nil {
				return err
			}
			if err := c.Service.Set(args[0], args[1]); err != nil {
				return err
			}
			if err := c.Service.SaveConfig(); err != nil {
				return err
			}
			value, _ := c.Store.Get(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "%s=%s saved to %s\n", args[0], value, c.Store.Path())
			return nil
		},
	}
}

func newResetCommand(h *containerHolder) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset every known setting to its default and save",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := h.container()
			if err := requireConfig(c); err != nil {
				return err
			}
			if err := c.Service.ResetDefaults(); err != nil {
				return err
			}
			if err := c.Service.SaveConfig(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Defaults written to %s\n", c.Store.Path())
			return nil
		},
	}
}
