package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBackupCommand(h *containerHolder) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Create, list, restore, and delete config backups",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "create",
		Short: "Snapshot the config file now",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := h.container()
			if err := requireConfig(c); err != nil {
				return err
			}
			rec, err := c.Service.CreateBackup()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Backup created: %s\n", rec.Name)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List backups, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := h.container()
			if err := requireConfig(c); err != nil {
				return err
			}
			records, err := c.Backups.List()
			if err != nil {
				return err
			}
			renderBackups(cmd.OutOrStdout(), records)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "restore NAME",
		Short: "Restore a backup over the config file (snapshots the current file first)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := h.container()
			if err := requireConfig(c); err != nil {
				return err
			}
			if err := c.Service.RestoreBackup(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Restored %s over %s\n", args[0], c.Store.Path())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete NAME",
		Short: "Delete one backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := h.container()
			if err := requireConfig(c); err != nil {
				return err
			}
			records, err := c.Backups.List()
			if err != nil {
				return err
			}
			for _, rec := range records {
				if rec.Name == args[0] {
					if err := c.Backups.Delete(rec); err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Backup %s deleted\n", rec.Name)
					return nil
				}
			}
			return fmt.Errorf("no backup named %q", args[0])
		},
	})

	return cmd
}
