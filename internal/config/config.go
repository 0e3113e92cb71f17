// Package config loads the snapshot server's YAML configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML values can use the human form
// ("50ms", "1s") instead of raw nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", value.Value, err)
	}

	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

type Config struct {
	// ListenAddr is the address the HTTP/WebSocket server binds to.
	ListenAddr string `yaml:"listen_addr"`

	// TickInterval is the simulation/broadcast cadence.
	TickInterval Duration `yaml:"tick_interval"`

	// KeyframeInterval is the number of ticks between full keyframe
	// snapshots; deltas are broadcast on the ticks in between.
	KeyframeInterval int `yaml:"keyframe_interval"`

	// LogLevel is a zap level name: debug, info, warn or error.
	LogLevel string `yaml:"log_level"`
}

func Default() Config {
	return Config{
		ListenAddr:       ":8080",
		TickInterval:     Duration(50 * time.Millisecond),
		KeyframeInterval: 20,
		LogLevel:         "info",
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.ListenAddr == "" {
		return fmt.Errorf("listen_addr is required")
	}

	if c.TickInterval <= 0 {
		return fmt.Errorf("tick_interval must be positive")
	}

	if c.KeyframeInterval <= 0 {
		return fmt.Errorf("keyframe_interval must be positive")
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}

	return nil
}
