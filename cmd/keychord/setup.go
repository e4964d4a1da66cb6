package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dshills/keychord/internal/app"
	"github.com/dshills/keychord/internal/config"
	"github.com/dshills/keychord/internal/plugin/lua"
)

// session holds what every subcommand needs before dispatching keys.
type session struct {
	configPath string
	cfg        *config.Config
	logger     *app.Logger
	bindings   []config.ResolvedBinding

	closeLog func() error
}

// defaultConfigPath returns the user config file location.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "keychord", "config.toml")
}

// setup loads configuration, opens the log and resolves user bindings.
// stderr receives logs when no log file is configured; pass io.Discard to
// keep a terminal screen clean.
func setup(ctx context.Context, flags *globalFlags, stderr io.Writer) (*session, error) {
	path := flags.configPath
	if path == "" {
		path = defaultConfigPath()
	}

	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := overlay(cfg, flags, nil); err != nil {
		return nil, err
	}

	s := &session{configPath: path, cfg: cfg, closeLog: func() error { return nil }}

	out := stderr
	if cfg.Logging.File != "" {
		f, err := app.OpenLogFile(cfg.Logging.File)
		if err != nil {
			return nil, err
		}
		out = f
		s.closeLog = f.Close
	}
	s.logger = app.NewLogger(app.LoggerConfig{
		Level:  app.ParseLogLevel(cfg.Logging.Level),
		Output: out,
		Prefix: "keychord",
	})

	bindings, err := resolveAll(ctx, cfg, s.logger)
	if err != nil {
		_ = s.closeLog()
		return nil, err
	}
	s.bindings = bindings
	return s, nil
}

// overlay layers the environment and then the command line flags over
// cfg and validates the result. A nil lookup reads the process
// environment.
func overlay(cfg *config.Config, flags *globalFlags, lookup config.LookupFunc) error {
	if err := config.ApplyEnv(cfg, lookup); err != nil {
		return err
	}
	if flags.logLevel != "" {
		cfg.Logging.Level = flags.logLevel
	}
	if flags.logFile != "" {
		cfg.Logging.File = flags.logFile
	}
	return cfg.Validate()
}

// reload applies the same overlay as setup to a freshly loaded cfg and
// resolves its bindings. The log level follows the reloaded config; a
// changed log file only takes effect on restart.
func reload(ctx context.Context, cfg *config.Config, flags *globalFlags, lookup config.LookupFunc, logger *app.Logger) ([]config.ResolvedBinding, error) {
	if err := overlay(cfg, flags, lookup); err != nil {
		return nil, err
	}
	bindings, err := resolveAll(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	logger.SetLevel(app.ParseLogLevel(cfg.Logging.Level))
	return bindings, nil
}

// resolveAll returns the config file bindings followed by the script's.
func resolveAll(ctx context.Context, cfg *config.Config, logger *app.Logger) ([]config.ResolvedBinding, error) {
	bindings, err := config.ResolveBindings(cfg.Keymap.Bindings)
	if err != nil {
		return nil, err
	}

	if cfg.Keymap.Script != "" {
		scripted, err := lua.LoadBindings(ctx, cfg.Keymap.Script,
			lua.WithOutput(logger.WithComponent("script").Printer(app.LogLevelInfo)))
		if err != nil {
			return nil, fmt.Errorf("keymap script %s: %w", cfg.Keymap.Script, err)
		}
		bindings = append(bindings, scripted...)
	}
	return bindings, nil
}

func (s *session) Close() error {
	return s.closeLog()
}
