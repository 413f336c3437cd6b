// Package cli is the thin presentation layer: cobra commands that call
// into the tuner service and print plain ASCII output.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/highvelocity/arctuner/internal/app"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose    bool
	ConfigPath string
}

// containerHolder defers container construction until flags are parsed,
// so --config can feed the build.
type containerHolder struct {
	c *app.Container
}

func (h *containerHolder) container() *app.Container {
	return h.c
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(opts Options) *cobra.Command {
	var (
		verbose    bool
		configPath string
	)
	holder := &containerHolder{}

	root := &cobra.Command{
		Use:   "arctuner",
		Short: "ARC Raiders config tuner",
		Long:  "arctuner edits ARC Raiders' GameUserSettings.ini with validation, backups, and profiles.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			override := configPath
			if override == "" {
				override = opts.ConfigPath
			}
			c, err := app.BuildContainer(verbose || opts.Verbose, override)
			if err != nil {
				return err
			}
			holder.c = c
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "Path to GameUserSettings.ini (overrides auto-detection)")

	root.AddCommand(newSettingsCommand(holder))
	root.AddCommand(newGetCommand(holder))
	root.AddCommand(newSetCommand(holder))
	root.AddCommand(newResetCommand(holder))
	root.AddCommand(newPresetCommand(holder))
	root.AddCommand(newProfileCommand(holder))
	root.AddCommand(newBackupCommand(holder))
	root.AddCommand(newPathCommand(holder))
	root.AddCommand(newHistoryCommand(holder))
	return root
}

// requireConfig guards commands that need the config file on disk.
func requireConfig(c *app.Container) error {
	if c.ConfigPath == "" {
		return fmt.Errorf("could not locate GameUserSettings.ini (%v); pass --config with the file's location", c.ResolveErr)
	}
	return nil
}
