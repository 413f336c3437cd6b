package cli

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
)

func newProfileCommand(h *containerHolder) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Save, apply, and manage named settings snapshots",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "save NAME",
		Short: "Snapshot the current settings under a name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := h.container()
			if err := requireConfig(c); err != nil {
				return err
			}
			p, err := c.Service.SaveProfile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Profile %s saved (%d settings)\n", p.Name, len(p.Settings))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "apply NAME",
		Short: "Apply a saved profile and save the config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := h.container()
			if err := requireConfig(c); err != nil {
				return err
			}
			unknown, err := c.Service.ApplyProfile(args[0])
			for _, k := range unknown {
				fmt.Fprintf(cmd.OutOrStdout(), "warning: profile key %s is unknown and was skipped\n", k)
			}
			if err != nil {
				return err
			}
			if err := c.Service.SaveConfig(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Profile %s applied and saved to %s\n", args[0], c.Store.Path())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List saved profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := h.container()
			if err := requireConfig(c); err != nil {
				return err
			}
			profiles, err := c.Profiles.List()
			if err != nil {
				return err
			}
			renderProfiles(cmd.OutOrStdout(), profiles)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a saved profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := h.container()
			if err := requireConfig(c); err != nil {
				return err
			}
			if err := c.Profiles.Delete(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Profile %s deleted\n", args[0])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "diff NAME",
		Short: "Show how a profile differs from the current settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := h.container()
			if err := requireConfig(c); err != nil {
				return err
			}
			p, unknown, err := c.Profiles.Load(args[0])
			if err != nil {
				return err
			}
			for _, k := range unknown {
				fmt.Fprintf(cmd.OutOrStdout(), "warning: profile key %s is unknown\n", k)
			}

			current := make(map[string]string, len(p.Settings))
			for key := range p.Settings {
				value, err := c.Store.Get(key)
				if err != nil {
					continue
				}
				current[key] = value
			}

			diff := cmp.Diff(current, p.Settings)
			if diff == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "No differences")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), diff)
			return nil
		},
	})

	return cmd
}
