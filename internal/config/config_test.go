package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/funtimes-keymatrix/internal/frames"
)

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, 200*time.Millisecond, c.Debounce())
	assert.Equal(t, 10*time.Millisecond, c.PollInterval())
	assert.Equal(t, 20*time.Millisecond, c.Settle())
	assert.Equal(t, 25, c.LEDs)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
driver: spi
counting: up
spi:
  port: SPI0.0
keypad:
  source: stdin
log:
  level: debug
metrics:
  addr: ":9101"
`), 0644))

	c, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, c.Validate())
	assert.Equal(t, "spi", c.Driver)
	assert.Equal(t, "up", c.Counting)
	assert.Equal(t, "SPI0.0", c.SPI.Port)
	assert.Equal(t, 800, c.SPI.FreqKHz, "untouched keys keep defaults")
	assert.Equal(t, "stdin", c.Keypad.Source)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, ":9101", c.Metrics.Addr)
	assert.Equal(t, 200, c.DebounceMs)
}

func TestLoadMissingFile(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("driver: [spi"), 0644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	c := Default()
	c.Driver = "console"
	c.Keypad.Rows[0] = "GPIO17"
	require.NoError(t, Save(path, c))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestValidateRejects(t *testing.T) {
	c := Default()
	c.Driver = "pwm"
	c.LEDs = 0
	c.Counting = "sideways"
	c.Keypad.Cols = c.Keypad.Cols[:2]
	c.DebounceMs = -1

	err := c.Validate()
	require.Error(t, err)
	for _, want := range []string{"driver", "leds", "counting", "keypad", "negative"} {
		assert.Contains(t, err.Error(), want)
	}

	c = Default()
	c.Keypad.Source = "bluetooth"
	assert.Error(t, c.Validate())
}

func TestValidateLEDsMatchMatrix(t *testing.T) {
	for _, n := range []int{1, 24, 26, 30, 100} {
		c := Default()
		c.LEDs = n
		err := c.Validate()
		require.Error(t, err, "leds=%d", n)
		assert.Contains(t, err.Error(), "leds")
	}
	c := Default()
	c.LEDs = frames.PixelCount
	assert.NoError(t, c.Validate())
}
