package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPath = "configs/aoc.yaml"

	defaultTop           = 3
	defaultGroupSize     = 3
	defaultPacketWindow  = 4
	defaultMessageWindow = 14
)

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads the YAML configuration at path. When required is false a
// missing file yields the defaults instead of an error.
func Load(path string, required bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Inputs == nil {
		cfg.Inputs = map[int]string{}
	}
	if cfg.Calories.Top == 0 {
		cfg.Calories.Top = defaultTop
	}
	if cfg.Rucksacks.GroupSize == 0 {
		cfg.Rucksacks.GroupSize = defaultGroupSize
	}
	if cfg.Signal.PacketWindow == 0 {
		cfg.Signal.PacketWindow = defaultPacketWindow
	}
	if cfg.Signal.MessageWindow == 0 {
		cfg.Signal.MessageWindow = defaultMessageWindow
	}
}

func (c *Config) Validate() error {
	var errs []error

	for day, path := range c.Inputs {
		if day < 1 || day > 25 {
			errs = append(errs, fmt.Errorf("inputs: day %d is outside 1..25", day))
		}
		if path == "" {
			errs = append(errs, fmt.Errorf("inputs: day %d has an empty path", day))
		}
	}
	if c.Calories.Top < 1 {
		errs = append(errs, fmt.Errorf("calories.top must be positive, got %d", c.Calories.Top))
	}
	if c.Rucksacks.GroupSize < 1 {
		errs = append(errs, fmt.Errorf("rucksacks.group_size must be positive, got %d", c.Rucksacks.GroupSize))
	}
	if c.Signal.PacketWindow < 1 {
		errs = append(errs, fmt.Errorf("signal.packet_window must be positive, got %d", c.Signal.PacketWindow))
	}
	if c.Signal.MessageWindow < 1 {
		errs = append(errs, fmt.Errorf("signal.message_window must be positive, got %d", c.Signal.MessageWindow))
	}

	return errors.Join(errs...)
}

// InputPath returns the configured input file for day, falling back to
// dayNN.txt inside dir.
func (c *Config) InputPath(day int, dir string) string {
	if path, ok := c.Inputs[day]; ok {
		return path
	}
	return filepath.Join(dir, fmt.Sprintf("day%02d.txt", day))
}
