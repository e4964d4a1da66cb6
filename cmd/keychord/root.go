package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	logLevel   string
	logFile    string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "keychord",
		Short: "Resolve key presses and chords into editor commands",
		Long: `keychord turns terminal key presses into editor intents: cursor
movement, text edits, saving, overlays and undo. Plain characters insert
text; control chords such as C-x C-s run commands.

Bindings can be overridden in the config file or in a Lua script.

Examples:
  keychord run                         # Interactive terminal session
  keychord resolve "C-x C-s" Backspace # Show what a key sequence does
  keychord bindings                    # List the effective bindings`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to configuration file (.toml, .yaml)")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to this file")

	root.AddCommand(newRunCmd(flags))
	root.AddCommand(newResolveCmd(flags))
	root.AddCommand(newBindingsCmd(flags))

	return root
}
