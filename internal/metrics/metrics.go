// Package metrics exports key press and playback counters to prometheus.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/coreman2200/funtimes-keymatrix/internal/events"
)

// Collector counts events from the bus into a prometheus registry.
type Collector struct {
	registry    *prometheus.Registry
	keyPresses  *prometheus.CounterVec
	frames      *prometheus.CounterVec
	words       prometheus.Counter
	failures    *prometheus.CounterVec
	playSeconds *prometheus.HistogramVec
	unsubscribe []func()
}

// NewCollector registers the counters on registry.
func NewCollector(registry *prometheus.Registry) *Collector {
	c := &Collector{
		registry: registry,
		keyPresses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "keymatrix",
			Name:      "key_presses_total",
			Help:      "Handled key presses by key",
		}, []string{"key"}),
		frames: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "keymatrix",
			Name:      "frames_emitted_total",
			Help:      "Frames emitted to the LED sink by sequence",
		}, []string{"sequence"}),
		words: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "keymatrix",
			Name:      "words_emitted_total",
			Help:      "Color words emitted to the LED sink",
		}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "keymatrix",
			Name:      "playback_failures_total",
			Help:      "Playbacks aborted by a sink error",
		}, []string{"sequence"}),
		playSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "keymatrix",
			Name:      "playback_seconds",
			Help:      "Wall time of one playback",
			Buckets:   []float64{0.01, 0.1, 0.5, 1, 2, 5, 10, 20},
		}, []string{"sequence"}),
	}
	registry.MustRegister(c.keyPresses, c.frames, c.words, c.failures, c.playSeconds)
	return c
}

// Attach subscribes the collector to bus.
func (c *Collector) Attach(bus *events.Bus) {
	c.unsubscribe = append(c.unsubscribe,
		bus.Subscribe(func(e events.KeyPressedEvent) {
			c.keyPresses.WithLabelValues(e.Key).Inc()
		}),
		bus.Subscribe(func(e events.AnimationPlayedEvent) {
			c.frames.WithLabelValues(e.Sequence).Add(float64(e.Frames))
			c.words.Add(float64(e.Words))
			c.playSeconds.WithLabelValues(e.Sequence).Observe(e.Elapsed.Seconds())
			if e.Err != nil {
				c.failures.WithLabelValues(e.Sequence).Inc()
			}
		}),
	)
}

// Detach drops the bus subscriptions.
func (c *Collector) Detach() {
	for _, u := range c.unsubscribe {
		u()
	}
	c.unsubscribe = nil
}

// Serve exposes the registry on addr under /metrics until ctx is done.
func (c *Collector) Serve(ctx context.Context, addr string, log zerolog.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{}))
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()
	log.Info().Str("addr", addr).Msg("metrics server starting")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
