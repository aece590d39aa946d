// Package config loads the CLI defaults from an optional YAML file, with
// PIXVEIL_* environment variables taking precedence.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/pixveil/pixveil"
)

// Config holds the tunable CLI defaults. The scheduling parameters here
// are defaults only; whatever values an embed actually ran with must be
// repeated at extraction.
type Config struct {
	// Threshold is the default local-complexity threshold.
	Threshold int `yaml:"threshold"`
	// AttemptFactor bounds scheduling work at capacity × factor draws.
	AttemptFactor int `yaml:"attempt_factor"`
	// LogFile, when set, tees log output into a rotating file.
	LogFile string `yaml:"log_file"`
	// Development switches on colored debug-level console logging.
	Development bool `yaml:"development"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Threshold:     pixveil.DefaultThreshold,
		AttemptFactor: 4,
	}
}

// Load reads the config file at path, falling back to defaults when the
// file does not exist, then applies environment overrides. An empty path
// skips the file entirely.
func Load(path string) (Config, error) {
	cfg := Default()

	if len(path) > 0 {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// Optional file; defaults apply.
		case err != nil:
			return cfg, err
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, err
			}
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Threshold = intEnv("PIXVEIL_THRESHOLD", c.Threshold)
	c.AttemptFactor = intEnv("PIXVEIL_ATTEMPT_FACTOR", c.AttemptFactor)
	if v := os.Getenv("PIXVEIL_LOG_FILE"); v != "" {
		c.LogFile = v
	}
	c.Development = boolEnv("PIXVEIL_DEV", c.Development)
}

// intEnv parses an environment variable as an integer, returning the
// default when the variable is unset or unparsable.
func intEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func boolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
