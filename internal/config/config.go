package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds all keychord settings.
type Config struct {
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
	Keymap  KeymapConfig  `toml:"keymap" yaml:"keymap"`
}

// LoggingConfig configures the application logger.
type LoggingConfig struct {
	// Level is one of debug, info, warn or error.
	Level string `toml:"level" yaml:"level"`
	// File receives log output. Empty means standard error.
	File string `toml:"file" yaml:"file"`
}

// KeymapConfig holds user binding overrides.
type KeymapConfig struct {
	// Bindings are applied on top of the default table, in order.
	Bindings []Binding `toml:"bindings" yaml:"bindings"`
	// Script is a Lua file that adds bindings. A relative path is
	// resolved against the directory of the config file.
	Script string `toml:"script" yaml:"script"`
	// Watch reloads bindings when the config file changes.
	Watch bool `toml:"watch" yaml:"watch"`
}

// Binding maps a key sequence spec to a registered action name.
type Binding struct {
	Keys   string `toml:"keys" yaml:"keys"`
	Action string `toml:"action" yaml:"action"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the configuration file at path on top of the defaults.
// A missing file is not an error; the defaults are returned.
func Load(path string) (*Config, error) {
	decode, err := decoderFor(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := decode(path, data, cfg); err != nil {
		return nil, err
	}

	if s := cfg.Keymap.Script; s != "" && !filepath.IsAbs(s) {
		cfg.Keymap.Script = filepath.Join(filepath.Dir(path), s)
	}
	return cfg, nil
}

type decodeFunc func(path string, data []byte, cfg *Config) error

func decoderFor(path string) (decodeFunc, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return decodeTOML, nil
	case ".yaml", ".yml":
		return decodeYAML, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func decodeTOML(path string, data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	err := dec.Decode(cfg)
	if err == nil {
		return nil
	}

	pe := &ParseError{Path: path, Message: err.Error(), Err: err}

	var decErr *toml.DecodeError
	var strictErr *toml.StrictMissingError
	switch {
	case errors.As(err, &decErr):
		pe.Line, pe.Column = decErr.Position()
	case errors.As(err, &strictErr) && len(strictErr.Errors) > 0:
		first := strictErr.Errors[0]
		pe.Line, pe.Column = first.Position()
		pe.Message = "unknown field " + strings.Join(first.Key(), ".")
	}
	return pe
}

func decodeYAML(path string, data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	err := dec.Decode(cfg)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	msg := strings.TrimPrefix(err.Error(), "yaml: ")
	var typeErr *yaml.TypeError
	if errors.As(err, &typeErr) && len(typeErr.Errors) > 0 {
		msg = typeErr.Errors[0]
	}
	line, rest := yamlLine(msg)
	return &ParseError{Path: path, Line: line, Message: rest, Err: err}
}

// yamlLine splits a "line N: message" prefix off a yaml.v3 error message.
func yamlLine(msg string) (int, string) {
	msg = strings.TrimSpace(msg)
	if i := strings.Index(msg, "line "); i >= 0 {
		tail := msg[i+len("line "):]
		num, rest, ok := strings.Cut(tail, ":")
		if n, err := strconv.Atoi(num); ok && err == nil {
			return n, strings.TrimSpace(rest)
		}
	}
	return 0, msg
}

// Validate checks that the configuration can be used as is.
func (c *Config) Validate() error {
	if !ValidLogLevel(c.Logging.Level) {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logging.Level)
	}
	if _, err := ResolveBindings(c.Keymap.Bindings); err != nil {
		return err
	}
	return nil
}

// ValidLogLevel reports whether level names a logging level.
// The empty string selects the default level.
func ValidLogLevel(level string) bool {
	switch strings.ToLower(level) {
	case "", "debug", "info", "warn", "warning", "error":
		return true
	default:
		return false
	}
}
