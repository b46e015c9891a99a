package main

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/funtimes-keymatrix/internal/config"
	"github.com/coreman2200/funtimes-keymatrix/internal/led"
)

func TestListPrintsEveryKey(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"list"})
	require.NoError(t, cmd.Execute())

	s := out.String()
	for _, want := range []string{"fill-solid(fill-white)", "turn-off", "play-sequence(ghost)", "palette", "count-down", "explosion", "blinky, pinky"} {
		assert.Contains(t, s, want)
	}
}

func TestPlayRejectsUnknownKey(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"play", "E"})
	assert.Error(t, cmd.Execute())
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	c := config.Default()
	c.Driver = "spi"
	require.NoError(t, config.Save(path, c))

	got, err := loadConfig(&rootFlags{configPath: path, simOnly: true, logLevel: "debug"})
	require.NoError(t, err)
	assert.Equal(t, "sim", got.Driver)
	assert.Equal(t, "debug", got.Log.Level)

	got, err = loadConfig(&rootFlags{configPath: filepath.Join(t.TempDir(), "missing.yaml")})
	require.NoError(t, err)
	assert.Equal(t, config.Default(), got)

	_, err = loadConfig(&rootFlags{configPath: path, driver: "laser"})
	assert.Error(t, err)
}

func TestAppSimFallback(t *testing.T) {
	cfg := config.Default()
	cfg.Keypad.Source = "stdin"
	a, err := newApp(cfg, &bytes.Buffer{})
	require.NoError(t, err)
	defer a.Close()
	_, ok := a.sink.(*led.Sim)
	assert.True(t, ok)

	keys, err := a.keypad(bytes.NewBufferString("A"))
	require.NoError(t, err)
	k, ok := keys.Poll()
	assert.True(t, ok)
	assert.Equal(t, "A", k.String())
}

func TestLoadConfigRejectsLEDCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	c := config.Default()
	c.LEDs = 30
	require.NoError(t, config.Save(path, c))

	_, err := loadConfig(&rootFlags{configPath: path})
	assert.ErrorContains(t, err, "leds")
}

// writeStdinConfig stores a sim config reading keys from stdin.
func writeStdinConfig(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	c := config.Default()
	c.Keypad.Source = "stdin"
	c.DebounceMs = 1
	c.Log.Level = "error"
	require.NoError(t, config.Save(path, c))
	return path
}

func TestRunExitsAtEndOfInput(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetIn(bytes.NewBufferString("C A\n"))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"run", "-c", writeStdinConfig(t)})

	done := make(chan error, 1)
	go func() { done <- cmd.Execute() }()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after the input ended")
	}
}

func TestPlaySequenceByName(t *testing.T) {
	path := writeStdinConfig(t)

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"play", "-c", path, "--sequence", "fill-red", "-s", "off"})
	assert.NoError(t, cmd.Execute())

	cmd = newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"play", "-c", path, "--sequence", "fireworks"})
	assert.ErrorContains(t, cmd.Execute(), "fireworks")

	cmd = newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"play", "-c", path})
	assert.Error(t, cmd.Execute())
}
