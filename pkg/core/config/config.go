package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	tslerror "github.com/msto63/tsl/foundation/core/error"
	tsllog "github.com/msto63/tsl/foundation/core/log"
)

// EnvConfigPath names the environment variable that points at a config file
const EnvConfigPath = "TSL_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Encode  EncodeConfig  `toml:"encode" yaml:"encode"`

	// path is the file the configuration was read from, empty for defaults
	path string

	// skippedPath and skipped record a discovered file that failed to load
	skippedPath string
	skipped     error
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name      string `toml:"name" yaml:"name"`
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// EncodeConfig holds defaults for the encode command
type EncodeConfig struct {
	BreakLines bool `toml:"break_lines" yaml:"break_lines"`
}

// Default returns the configuration used when no file is found
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, tslerror.Newf("config file not found: %s", path).
			WithCode(tslerror.CodeNotFound).
			WithOperation("config.Load").
			WithDetail("path", path)
	}
	if err != nil {
		return nil, tslerror.Wrap(err, "failed to read config").
			WithCode(tslerror.CodeReadFailed).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg := &Config{path: path}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, parseError(err, path)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, parseError(err, path)
		}
	default:
		return nil, tslerror.Newf("unsupported config format %q", ext).
			WithCode(tslerror.CodeInvalidFormat).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Discover loads the configuration from TSL_CONFIG or the default
// locations. A file named by TSL_CONFIG must load. The first file found at
// a default location that fails to load is skipped and the defaults are
// returned; Skipped reports it.
func Discover() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		cfg, err := Load(p)
		if err != nil {
			cfg = Default()
			cfg.skippedPath = p
			cfg.skipped = err
		}
		return cfg, nil
	}

	return Default(), nil
}

// Skipped returns the discovered file that was ignored and why, or an
// empty path and nil
func (c *Config) Skipped() (string, error) {
	return c.skippedPath, c.skipped
}

// DefaultPaths lists the locations Discover checks, in order
func DefaultPaths() []string {
	paths := []string{
		"./configs/tsl.toml",
		"./tsl.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "tsl", "config.toml"))
	}
	return paths
}

// Path returns the file the configuration was loaded from
func (c *Config) Path() string {
	return c.path
}

// Validate checks the values that must parse
func (c *Config) Validate() error {
	if _, err := tsllog.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("log_level", c.General.LogLevel, err, c.path)
	}
	if _, err := tsllog.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("log_format", c.General.LogFormat, err, c.path)
	}
	return nil
}

// LogLevel returns the parsed log level
func (c *Config) LogLevel() tsllog.Level {
	level, err := tsllog.ParseLevel(c.General.LogLevel)
	if err != nil {
		return tsllog.LevelWarn
	}
	return level
}

// LogFormat returns the parsed log format
func (c *Config) LogFormat() tsllog.Format {
	format, err := tsllog.ParseFormat(c.General.LogFormat)
	if err != nil {
		return tsllog.FormatText
	}
	return format
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.Name == "" {
		c.General.Name = "tsl"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}
}

func parseError(err error, path string) error {
	return tslerror.Wrap(err, "failed to parse config").
		WithCode(tslerror.CodeInvalidConfig).
		WithOperation("config.Load").
		WithDetail("path", path)
}

func invalid(key, value string, err error, path string) error {
	e := tslerror.Wrap(err, "invalid "+key).
		WithCode(tslerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("key", key).
		WithDetail("value", value)
	if path != "" {
		e = e.WithDetail("path", path)
	}
	return e
}
