package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/coreman2200/funtimes-keymatrix/internal/frames"
)

type LogCfg struct {
	Level string `yaml:"level"` // zerolog level name
	JSON  bool   `yaml:"json"`  // plain JSON lines instead of console output
}

type SPI struct {
	Port    string `yaml:"port"`     // periph port name, "" for the first one
	FreqKHz int    `yaml:"freq_khz"` // NRZ bit rate, 800 for WS2812
}

type Keypad struct {
	Source   string   `yaml:"source"`    // "gpio" | "stdin"
	Rows     []string `yaml:"rows"`      // row pins R1..R4
	Cols     []string `yaml:"cols"`      // column pins C1..C4
	SettleMs int      `yaml:"settle_ms"` // wait after a detected key
}

type Metrics struct {
	Addr string `yaml:"addr"` // prometheus listen address, empty disables
}

type Config struct {
	Driver         string `yaml:"driver"` // "spi" | "console" | "sim"
	LEDs           int    `yaml:"leds"`
	DebounceMs     int    `yaml:"debounce_ms"`
	PollIntervalMs int    `yaml:"poll_interval_ms"`
	Counting       string `yaml:"counting"` // "down" | "up"

	SPI     SPI     `yaml:"spi,omitempty"`
	Keypad  Keypad  `yaml:"keypad"`
	Log     LogCfg  `yaml:"log"`
	Metrics Metrics `yaml:"metrics,omitempty"`
}

// Default returns the stock configuration: a 5x5 WS2812 matrix on the first
// SPI port and the keypad wired to GPIO 8,1,6,5 (rows) and 4,3,2,27 (cols).
func Default() *Config {
	return &Config{
		Driver:         "sim",
		LEDs:           frames.PixelCount,
		DebounceMs:     200,
		PollIntervalMs: 10,
		Counting:       "down",
		SPI:            SPI{FreqKHz: 800},
		Keypad: Keypad{
			Source:   "gpio",
			Rows:     []string{"GPIO8", "GPIO1", "GPIO6", "GPIO5"},
			Cols:     []string{"GPIO4", "GPIO3", "GPIO2", "GPIO27"},
			SettleMs: 20,
		},
		Log: LogCfg{Level: "info"},
	}
}

// Load reads path over the defaults.
func Load(path string) (*Config, error) {
	c := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return c, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

// Validate checks the values the rest of the program relies on.
func (c *Config) Validate() error {
	var errs []error
	switch c.Driver {
	case "spi", "console", "sim":
	default:
		errs = append(errs, fmt.Errorf("driver: unknown %q", c.Driver))
	}
	// sinks latch once per LEDs words and the player emits one word per pixel
	if c.LEDs != frames.PixelCount {
		errs = append(errs, fmt.Errorf("leds: the matrix has %d pixels, got %d", frames.PixelCount, c.LEDs))
	}
	if c.DebounceMs < 0 || c.PollIntervalMs < 0 || c.Keypad.SettleMs < 0 {
		errs = append(errs, errors.New("timings must not be negative"))
	}
	switch strings.ToLower(c.Counting) {
	case "down", "up":
	default:
		errs = append(errs, fmt.Errorf("counting: want down or up, got %q", c.Counting))
	}
	switch c.Keypad.Source {
	case "gpio":
		if len(c.Keypad.Rows) != 4 || len(c.Keypad.Cols) != 4 {
			errs = append(errs, fmt.Errorf("keypad: need 4 rows and 4 cols, got %d and %d", len(c.Keypad.Rows), len(c.Keypad.Cols)))
		}
	case "stdin":
	default:
		errs = append(errs, fmt.Errorf("keypad.source: unknown %q", c.Keypad.Source))
	}
	return errors.Join(errs...)
}

func (c *Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMs) * time.Millisecond
}

func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMs) * time.Millisecond
}

func (c *Config) Settle() time.Duration {
	return time.Duration(c.Keypad.SettleMs) * time.Millisecond
}
