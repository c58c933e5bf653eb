// Package config loads the configuration of the boolcheck command from YAML or
// TOML files, a .env file and the environment.
package config

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a configuration file format.
type Format int

// Supported configuration file formats.
const (
	FormatYAML Format = iota // .yaml, .yml
	FormatTOML               // .toml
)

// String returns the name of the format.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	default:
		return "yaml"
	}
}

// Environment variables overriding configuration values.
const (
	EnvInput     = "BOOLASSIGN_INPUT"
	EnvLogLevel  = "BOOLASSIGN_LOG_LEVEL"
	EnvAcceptEnd = "BOOLASSIGN_ACCEPT_END"
)

// DefaultInput is the input file parsed when none is configured.
const DefaultInput = "test.txt"

// Config is the configuration of the boolcheck command.
type Config struct {
	// Input is the file checked when none is given on the command line.
	Input string `yaml:"input" toml:"input"`
	// Snippet appends the offending source line to diagnostics.
	Snippet bool          `yaml:"snippet" toml:"snippet"`
	Log     LogConfig     `yaml:"log" toml:"log"`
	Grammar GrammarConfig `yaml:"grammar" toml:"grammar"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of debug, info, warn or error.
	Level string `yaml:"level" toml:"level"`
}

// GrammarConfig configures the parser.
type GrammarConfig struct {
	// AcceptEnd lets the parser accept the end of input after a complete
	// operand instead of reporting a missing operator.
	AcceptEnd bool `yaml:"accept_end" toml:"accept_end"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Input: DefaultInput,
		Log:   LogConfig{Level: "info"},
	}
}

// Load reads the configuration file at path on top of the defaults, then
// applies environment overrides. An empty path only applies the overrides.
// The file format is detected from the file extension.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open config: %w", err)
		}
		defer f.Close()
		if err := cfg.Decode(f, DetectFormat(path)); err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DetectFormat returns the format matching the extension of path. Unknown
// extensions default to YAML.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

// Decode decodes r in the given format into c. Fields missing from the input
// keep their current value.
func (c *Config) Decode(r io.Reader, format Format) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	switch format {
	case FormatTOML:
		_, err = toml.Decode(string(data), c)
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err = dec.Decode(c); err == io.EOF {
			// empty document
			err = nil
		}
	}
	return err
}

// ApplyEnv overrides configuration values with those set in the environment.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvInput); v != "" {
		c.Input = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvAcceptEnd); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvAcceptEnd, err)
		}
		c.Grammar.AcceptEnd = b
	}
	return nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("no input file configured")
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel returns the configured log level.
func (c *Config) LogLevel() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return l, fmt.Errorf("log level: %w", err)
	}
	return l, nil
}
