package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileName is the configuration file looked for in the working directory.
const FileName = "ecsl.toml"

// EnvVar names the variable that may point at a configuration file.
const EnvVar = "ECSL_CONFIG"

// Color modes for diagnostics.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the complete tool configuration
type Config struct {
	Diagnostics DiagnosticsConfig `toml:"diagnostics"`
	Log         LogConfig         `toml:"log"`
	Parser      ParserConfig      `toml:"parser"`
}

// DiagnosticsConfig controls how failures are printed
type DiagnosticsConfig struct {
	Color string `toml:"color"`
	Help  bool   `toml:"help"`
}

// LogConfig is passed to commonlog
type LogConfig struct {
	Verbosity int    `toml:"verbosity"`
	Path      string `toml:"path"`
}

// ParserConfig tunes the front end
type ParserConfig struct {
	StripComments  bool `toml:"strip_comments"`
	MaxSourceBytes int  `toml:"max_source_bytes"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		Diagnostics: DiagnosticsConfig{
			Color: ColorAuto,
			Help:  true,
		},
		Parser: ParserConfig{
			StripComments:  true,
			MaxSourceBytes: 4 << 20,
		},
	}
}

// Load reads a configuration file. Keys missing from the file keep their
// default values.
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	cfg.Log.Path = os.ExpandEnv(cfg.Log.Path)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Discover returns the configuration file to use: explicit when set, else
// $ECSL_CONFIG, else ./ecsl.toml when it exists. An empty result means
// defaults apply.
func Discover(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if path := os.Getenv(EnvVar); path != "" {
		return path
	}
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}
	return ""
}

// Resolve loads the discovered configuration, or returns the defaults.
func Resolve(explicit string) (*Config, error) {
	path := Discover(explicit)
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Diagnostics.Color == "" {
		c.Diagnostics.Color = ColorAuto
	}
}

// Validate reports the first setting that is out of range.
func (c *Config) Validate() error {
	switch c.Diagnostics.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("diagnostics.color must be %q, %q or %q, got %q", ColorAuto, ColorAlways, ColorNever, c.Diagnostics.Color)
	}

	if c.Log.Verbosity < -1 {
		return fmt.Errorf("log.verbosity must be at least -1, got %d", c.Log.Verbosity)
	}
	if c.Parser.MaxSourceBytes < 0 {
		return fmt.Errorf("parser.max_source_bytes must not be negative, got %d", c.Parser.MaxSourceBytes)
	}
	return nil
}
