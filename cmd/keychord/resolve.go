package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dshills/keychord/internal/app"
	"github.com/dshills/keychord/internal/command"
	"github.com/dshills/keychord/internal/input/key"
)

func newResolveCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <keys>...",
		Short: "Show what a key sequence resolves to",
		Long: `Feed a key sequence through a fresh standard mode and print one line
per key. Arguments are key specs such as "C-x C-s", "<C-x><C-s>", "Up" or
plain text. Capitalized key names are keys and lower case words are text:
"End" and "<End>" press End while "end" types e, n, d.`,
		Example: `  keychord resolve "C-x C-s"
  keychord resolve hi Enter Backspace
  keychord resolve end "<End>"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var keys []key.Key
			for _, arg := range args {
				seq, err := key.ParseSequence(arg)
				if err != nil {
					return err
				}
				keys = append(keys, seq...)
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

			events, err := a.Feed(keys...)
			printEvents(cmd.OutOrStdout(), keys, events)
			if err != nil && !errors.Is(err, app.ErrQuit) {
				return err
			}
			return nil
		},
	}
}

// printEvents writes "key<TAB>event" lines, naming registered actions.
func printEvents(w io.Writer, keys []key.Key, events []command.BuilderEvent) {
	for i, ev := range events {
		line := ev.String()
		if ev.IsComplete() {
			if name := command.Name(ev.Command); name != "" {
				line += " " + name
			}
		}
		fmt.Fprintf(w, "%s\t%s\n", keys[i], line)
	}
}
