package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/coreman2200/funtimes-keymatrix/internal/config"
)

// New builds the process logger and installs it as the zerolog global.
func New(cfg config.LogCfg, out io.Writer) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		l, err := zerolog.ParseLevel(cfg.Level)
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("logger. Error in settings (level: %s): %w", cfg.Level, err)
		}
		level = l
	}

	zerolog.TimeFieldFormat = time.RFC3339
	w := out
	if !cfg.JSON {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}
	l := zerolog.New(w).Level(level).With().Timestamp().Logger()
	log.Logger = l
	return l, nil
}

// Module returns l tagged with a module field.
func Module(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("module", name).Logger()
}
