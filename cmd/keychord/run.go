package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dshills/keychord/internal/app"
	"github.com/dshills/keychord/internal/backend"
	"github.com/dshills/keychord/internal/config"
	"github.com/dshills/keychord/internal/input/mode"
)

func newRunCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start an interactive terminal session",
		Long: `Start an interactive session. Each key press is resolved and the
resulting command is shown on the status line. C-q or C-x C-c exits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runSession(ctx, flags)
		},
	}
}

func runSession(ctx context.Context, flags *globalFlags) error {
	// Logging to stderr would draw over the screen.
	s, err := setup(ctx, flags, io.Discard)
	if err != nil {
		return err
	}
	defer s.Close()

	term, err := backend.NewTerminal()
	if err != nil {
		return err
	}
	if err := term.Init(); err != nil {
		return err
	}
	defer term.Shutdown()

	a, err := app.New(app.Options{
		Logger:   s.logger,
		Driver:   term,
		Source:   term,
		Bindings: s.bindings,
	})
	if err != nil {
		return err
	}

	showMode := func(_, to mode.Mode) {
		if to != nil {
			term.SetMode(to.DisplayName())
		}
	}
	showMode(nil, a.Modes().Current())
	unsubscribe := a.Modes().OnChange(showMode)
	defer unsubscribe()

	if s.cfg.Keymap.Watch && s.configPath != "" {
		w, err := config.NewWatcher(ctx, s.configPath)
		if err != nil {
			s.logger.Warn("config watch disabled: %v", err)
		} else {
			defer w.Close()
			go watchConfig(ctx, w, flags, a, term)
		}
	}

	term.ShowMessage("ready")
	err = a.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// watchConfig rebinds a whenever the config file changes.
func watchConfig(ctx context.Context, w *config.Watcher, flags *globalFlags, a *app.App, term *backend.Terminal) {
	logger := a.Logger().WithComponent("watcher")
	for {
		select {
		case <-ctx.Done():
			return
		case cfg, ok := <-w.Changes():
			if !ok {
				return
			}
			bindings, err := reload(ctx, cfg, flags, nil, logger)
			if err != nil {
				logger.Warn("reload failed: %v", err)
				term.ShowMessage("config reload failed")
				continue
			}
			a.Rebind(bindings)
			term.ShowMessage("config reloaded")
		case err, ok := <-w.Errors():
			if !ok {
				return
			}
			logger.Warn("config: %v", err)
			term.ShowMessage("config error")
		}
	}
}
