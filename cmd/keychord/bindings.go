package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dshills/keychord/internal/app"
	"github.com/dshills/keychord/internal/command"
	"github.com/dshills/keychord/internal/input/key"
	"github.com/dshills/keychord/internal/input/mode"
)

func newBindingsCmd(flags *globalFlags) *cobra.Command {
	var actions bool

	cmd := &cobra.Command{
		Use:   "bindings",
		Short: "List the effective key bindings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			if actions {
				for _, name := range command.Names() {
					fmt.Fprintln(out, name)
				}
				return nil
			}

			s, err := setup(cmd.Context(), flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			a, err := app.New(app.Options{Logger: s.logger, Bindings: s.bindings})
			if err != nil {
				return err
			}
			std, ok := a.Modes().Get(mode.ModeStandard).(*mode.Standard)
			if !ok {
				return fmt.Errorf("standard mode not registered")
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			std.Bindings(func(seq []key.Key, c command.Command) {
				name := command.Name(c)
				if name == "" {
					name = "-"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", key.FormatSequence(seq), name, c)
			})
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&actions, "actions", false, "List action names instead of bindings")
	return cmd
}
