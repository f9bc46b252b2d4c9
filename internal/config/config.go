package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/2beens/workouttracker/internal/logging"
	"github.com/2beens/workouttracker/pkg"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

type Config struct {
	Environment string `toml:"environment"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToConsole  bool   `toml:"log_to_console"`
	LogFormatJSON bool   `toml:"log_format_json"`
	// sentry
	SentryEnabled bool `toml:"sentry_enabled"`
	// metrics
	MetricsNamespace string `toml:"metrics_namespace"`
	MetricsTextfile  string `toml:"metrics_textfile"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Default returns the config used when no config file is present.
func Default(env string) (*Config, error) {
	t := &Toml{
		Development: &Config{
			Environment:      "development",
			LogLevel:         "debug",
			MetricsNamespace: "workout_tracker",
		},
		Production: &Config{
			Environment:      "production",
			LogLevel:         "info",
			MetricsNamespace: "workout_tracker",
		},
	}
	return t.Get(env)
}

// Load reads the config section for env from the TOML file at path.
// A missing file is not an error, the defaults for env are returned instead.
func Load(env, path string) (*Config, error) {
	exists, err := pkg.PathExists(path, false)
	if err != nil {
		return nil, fmt.Errorf("check config file: %w", err)
	}
	if !exists {
		log.Debugf("config file [%s] not found, using defaults", path)
		return Default(env)
	}

	t := &Toml{}
	if _, err := toml.DecodeFile(path, t); err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env [%s] missing in [%s]", env, path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var err error
	if c.LogLevel != "" && !logging.ValidLevel(c.LogLevel) {
		err = multierr.Append(err, fmt.Errorf("unknown log level: %s", c.LogLevel))
	}
	if c.MetricsNamespace == "" {
		err = multierr.Append(err, errors.New("metrics namespace not set"))
	}
	if c.LogToConsole && c.LogsPath == "" {
		err = multierr.Append(err, errors.New("log_to_console requires logs_path"))
	}
	return err
}
