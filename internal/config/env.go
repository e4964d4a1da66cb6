package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables read by ApplyEnv.
const (
	EnvLogLevel     = "KEYCHORD_LOG_LEVEL"
	EnvLogFile      = "KEYCHORD_LOG_FILE"
	EnvKeymapScript = "KEYCHORD_KEYMAP_SCRIPT"
	EnvKeymapWatch  = "KEYCHORD_KEYMAP_WATCH"
)

// LookupFunc reports the value of an environment variable.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overlays KEYCHORD_* environment variables onto cfg.
// A nil lookup reads the process environment.
// Empty values are treated as set, not as unset.
func ApplyEnv(cfg *Config, lookup LookupFunc) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	if v, ok := lookup(EnvLogLevel); ok {
		cfg.Logging.Level = v
	}
	if v, ok := lookup(EnvLogFile); ok {
		cfg.Logging.File = v
	}
	if v, ok := lookup(EnvKeymapScript); ok {
		cfg.Keymap.Script = v
	}
	if v, ok := lookup(EnvKeymapWatch); ok {
		watch, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidEnv, EnvKeymapWatch, v)
		}
		cfg.Keymap.Watch = watch
	}
	return nil
}
