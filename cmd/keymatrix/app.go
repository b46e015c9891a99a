package main

import (
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"

	"github.com/coreman2200/funtimes-keymatrix/internal/config"
	"github.com/coreman2200/funtimes-keymatrix/internal/dispatch"
	"github.com/coreman2200/funtimes-keymatrix/internal/events"
	"github.com/coreman2200/funtimes-keymatrix/internal/frames"
	"github.com/coreman2200/funtimes-keymatrix/internal/keypad"
	"github.com/coreman2200/funtimes-keymatrix/internal/led"
	"github.com/coreman2200/funtimes-keymatrix/internal/logging"
	"github.com/coreman2200/funtimes-keymatrix/internal/metrics"
	"github.com/coreman2200/funtimes-keymatrix/internal/player"
)

// app is everything a command needs, wired from the effective config.
type app struct {
	cfg     *config.Config
	log     zerolog.Logger
	bus     *events.Bus
	sink    led.Sink
	player  *player.Player
	metrics *metrics.Collector
}

// loadConfig reads the config file and applies flag overrides. A missing
// file is not an error; the defaults apply.
func loadConfig(f *rootFlags) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	if f.driver != "" {
		cfg.Driver = f.driver
	}
	if f.simOnly {
		cfg.Driver = "sim"
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	return cfg, cfg.Validate()
}

func newApp(cfg *config.Config, out io.Writer) (*app, error) {
	log, err := logging.New(cfg.Log, out)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, log: log, bus: events.New()}
	a.metrics = metrics.NewCollector(prometheus.NewRegistry())
	a.metrics.Attach(a.bus)

	if cfg.Driver == "spi" || cfg.Keypad.Source == "gpio" {
		if _, err := host.Init(); err != nil {
			log.Warn().Err(err).Msg("periph host init failed")
		}
	}

	a.sink = openSink(cfg, log)
	a.player = player.New(a.sink,
		player.WithLogger(logging.Module(log, "player")),
		player.WithBus(a.bus))
	return a, nil
}

// openSink picks the configured driver, falling back to sim when the
// hardware is unavailable.
func openSink(cfg *config.Config, log zerolog.Logger) led.Sink {
	sim := func() led.Sink { return led.NewSim(cfg.LEDs, logging.Module(log, "led")) }

	switch cfg.Driver {
	case "spi":
		freq := physic.Frequency(cfg.SPI.FreqKHz) * physic.KiloHertz
		s, err := led.OpenNRZ(cfg.SPI.Port, cfg.LEDs, freq)
		if err != nil {
			log.Warn().Err(err).
				Str("driver", "spi").
				Str("port", cfg.SPI.Port).
				Int("freq_khz", cfg.SPI.FreqKHz).
				Msg("SPI init failed; falling back to SIM")
			return sim()
		}
		log.Info().Str("driver", "spi").Str("dev", s.String()).Msg("LED sink ready")
		return s
	case "console":
		return led.NewConsole(cfg.LEDs, os.Stdout)
	default:
		return sim()
	}
}

func (a *app) countingSequence() frames.Name {
	if a.cfg.Counting == "up" {
		return frames.CountUp
	}
	return frames.CountDown
}

func (a *app) dispatcher(keys keypad.Source) *dispatch.Dispatcher {
	return dispatch.New(keys, a.player, dispatch.DefaultBindings(a.countingSequence()),
		dispatch.Config{Debounce: a.cfg.Debounce(), PollInterval: a.cfg.PollInterval()},
		dispatch.WithLogger(logging.Module(a.log, "dispatch")),
		dispatch.WithBus(a.bus))
}

func (a *app) keypad(in io.Reader) (keypad.Source, error) {
	if a.cfg.Keypad.Source == "stdin" {
		return keypad.NewScript(in), nil
	}
	var rows [keypad.Rows]string
	var cols [keypad.Cols]string
	copy(rows[:], a.cfg.Keypad.Rows)
	copy(cols[:], a.cfg.Keypad.Cols)
	m, err := keypad.OpenMatrix(rows, cols, a.cfg.Settle())
	if err != nil {
		return nil, fmt.Errorf("keypad: %w", err)
	}
	return m, nil
}

func (a *app) Close() error {
	a.metrics.Detach()
	err := a.sink.Close()
	_ = a.bus.Close()
	return err
}
