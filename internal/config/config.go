// Package config loads gender-swap settings from defaults, an optional YAML
// file and GENDER_SWAP_* environment variables, in that order of precedence.
// Command-line flags are applied by the caller on top of the result.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"gender-swap/internal/logging"
	"gender-swap/internal/sheet"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "GENDER_SWAP_"

// Log formats accepted by Validate.
const (
	FormatJSON    = logging.FormatJSON
	FormatConsole = logging.FormatConsole
)

const defaultDebounce = 300 * time.Millisecond

// Config holds the settings shared by every command.
type Config struct {
	GenderList       string      `yaml:"gender_list"        env:"GENDER_LIST"`
	InputDir         string      `yaml:"input_dir"          env:"INPUT_DIR"`
	OutputDir        string      `yaml:"output_dir"         env:"OUTPUT_DIR"`
	ProcessFileNames bool        `yaml:"process_file_names" env:"PROCESS_FILE_NAMES"`
	Extensions       []string    `yaml:"extensions"         env:"EXTENSIONS"`
	Workers          int         `yaml:"workers"            env:"WORKERS"`
	Log              LogConfig   `yaml:"log"                envPrefix:"LOG_"`
	Watch            WatchConfig `yaml:"watch"              envPrefix:"WATCH_"`
}

// LogConfig selects the logger level and encoding.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LEVEL"`
	Format string `yaml:"format" env:"FORMAT"`
}

// WatchConfig tunes the watch command.
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce" env:"DEBOUNCE"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		InputDir:   ".",
		OutputDir:  "out",
		Extensions: slices.Clone(sheet.DefaultExtensions),
		Workers:    runtime.GOMAXPROCS(0),
		Log: LogConfig{
			Level:  "info",
			Format: FormatConsole,
		},
		Watch: WatchConfig{
			Debounce: defaultDebounce,
		},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when path
// is empty) and the environment. It does not validate; callers apply their
// flag overrides first and then call Validate.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.readFile(path); err != nil {
			return nil, err
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	return cfg, nil
}

func (c *Config) readFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	return nil
}

// Validate checks the settings that have no usable fallback.
func (c *Config) Validate() error {
	var errs []error

	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be at least 1 (got %d)", c.Workers))
	}

	if !slices.ContainsFunc(c.Extensions, func(ext string) bool {
		return strings.Trim(strings.TrimSpace(ext), ".") != ""
	}) {
		errs = append(errs, errors.New("extensions must name at least one file extension"))
	}

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	switch c.Log.Format {
	case FormatJSON, FormatConsole:
	default:
		errs = append(errs, fmt.Errorf("log.format must be %q or %q (got %q)", FormatJSON, FormatConsole, c.Log.Format))
	}

	if c.Watch.Debounce <= 0 {
		errs = append(errs, fmt.Errorf("watch.debounce must be positive (got %s)", c.Watch.Debounce))
	}

	return errors.Join(errs...)
}
