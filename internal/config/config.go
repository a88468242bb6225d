// Package config загружает настройки routesync из YAML файла и переменных окружения.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/iudanet/routesync/internal/signature"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Throttle ограничения частоты запросов к API.
type Throttle struct {
	MinInterval    time.Duration `yaml:"min_interval"`
	WindowSize     time.Duration `yaml:"window_size"`
	SafetyMargin   time.Duration `yaml:"safety_margin"`
	InitialBackoff time.Duration `yaml:"initial_backoff"`
	MaxPerWindow   int           `yaml:"max_per_window"`
	MaxRetries     int           `yaml:"max_retries"`
	Concurrency    int           `yaml:"concurrency"`
}

// Sync параметры цикла синхронизации.
type Sync struct {
	PollInterval     time.Duration `yaml:"poll_interval"`
	PollTimeout      time.Duration `yaml:"poll_timeout"`
	MinTracePoints   int           `yaml:"min_trace_points"`
	OverlapThreshold float64       `yaml:"overlap_threshold_meters"`
}

// Engine параметры локального движка сопоставления маршрутов.
type Engine struct {
	Path              string  `yaml:"path"`
	GroupingThreshold float64 `yaml:"grouping_threshold"`
}

// Config is the complete routesync configuration.
type Config struct {
	ServerURL   string           `yaml:"server_url"`
	DBPath      string           `yaml:"db_path"`
	Fixtures    string           `yaml:"fixtures"` // Fixtures JSON файл с треками вместо upstream API
	LogLevel    string           `yaml:"log_level"`
	MetricsAddr string           `yaml:"metrics_addr"`
	Engine      Engine           `yaml:"engine"`
	Signature   signature.Config `yaml:"signature"`
	Throttle    Throttle         `yaml:"throttle"`
	Sync        Sync             `yaml:"sync"`
}

// Default returns the reference configuration.
func Default() Config {
	return Config{
		ServerURL: "https://intervals.icu",
		DBPath:    "routesync.db",
		LogLevel:  "info",
		Engine: Engine{
			Path:              "routesync-engine.db",
			GroupingThreshold: 0.65,
		},
		Signature: signature.DefaultConfig(),
		Throttle: Throttle{
			MinInterval:    100 * time.Millisecond,
			WindowSize:     10 * time.Second,
			SafetyMargin:   50 * time.Millisecond,
			InitialBackoff: time.Second,
			MaxPerWindow:   80,
			MaxRetries:     3,
			Concurrency:    8,
		},
		Sync: Sync{
			PollInterval:     200 * time.Millisecond,
			PollTimeout:      60 * time.Second,
			MinTracePoints:   4,
			OverlapThreshold: 50,
		},
	}
}

// Load reads the YAML file at path on top of the defaults and applies
// ROUTESYNC_* environment overrides. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// applyEnv переопределяет значения из переменных окружения
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"ROUTESYNC_SERVER_URL":   &c.ServerURL,
		"ROUTESYNC_DB_PATH":      &c.DBPath,
		"ROUTESYNC_ENGINE_PATH":  &c.Engine.Path,
		"ROUTESYNC_FIXTURES":     &c.Fixtures,
		"ROUTESYNC_LOG_LEVEL":    &c.LogLevel,
		"ROUTESYNC_METRICS_ADDR": &c.MetricsAddr,
	}
	for key, dst := range strs {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	durations := map[string]*time.Duration{
		"ROUTESYNC_MIN_INTERVAL":  &c.Throttle.MinInterval,
		"ROUTESYNC_POLL_INTERVAL": &c.Sync.PollInterval,
		"ROUTESYNC_POLL_TIMEOUT":  &c.Sync.PollTimeout,
	}
	for key, dst := range durations {
		v, ok := lookup(key)
		if !ok || v == "" {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, key, err)
		}
		*dst = d
	}

	if v, ok := lookup("ROUTESYNC_MAX_PER_WINDOW"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: ROUTESYNC_MAX_PER_WINDOW: %v", ErrInvalidConfig, err)
		}
		c.Throttle.MaxPerWindow = n
	}

	return nil
}

// Validate checks that every limit is usable.
func (c Config) Validate() error {
	switch {
	case c.ServerURL == "":
		return fmt.Errorf("%w: server_url is empty", ErrInvalidConfig)
	case c.Throttle.MinInterval < 0:
		return fmt.Errorf("%w: throttle.min_interval is negative", ErrInvalidConfig)
	case c.Throttle.MaxPerWindow < 1:
		return fmt.Errorf("%w: throttle.max_per_window must be positive", ErrInvalidConfig)
	case c.Throttle.WindowSize <= 0:
		return fmt.Errorf("%w: throttle.window_size must be positive", ErrInvalidConfig)
	case c.Throttle.MaxRetries < 0:
		return fmt.Errorf("%w: throttle.max_retries is negative", ErrInvalidConfig)
	case c.Throttle.InitialBackoff <= 0:
		return fmt.Errorf("%w: throttle.initial_backoff must be positive", ErrInvalidConfig)
	case c.Sync.PollInterval <= 0 || c.Sync.PollTimeout <= 0:
		return fmt.Errorf("%w: sync poll interval and timeout must be positive", ErrInvalidConfig)
	case c.Engine.GroupingThreshold <= 0 || c.Engine.GroupingThreshold > 1:
		return fmt.Errorf("%w: engine.grouping_threshold must be in (0, 1]", ErrInvalidConfig)
	case c.Signature.MaxPoints < 2:
		return fmt.Errorf("%w: signature.max_points must be at least 2", ErrInvalidConfig)
	}
	return nil
}
