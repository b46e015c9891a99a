package led

import (
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Sim logs a compact summary of each completed frame instead of driving
// hardware.
type Sim struct {
	mu     sync.Mutex
	buf    frameBuffer
	frames int
	log    zerolog.Logger
}

func NewSim(count int, log zerolog.Logger) *Sim {
	return &Sim{buf: newFrameBuffer(count), log: log.With().Str("driver", "sim").Logger()}
}

func (s *Sim) Emit(word uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.buf.push(word) {
		return nil
	}
	s.frames++
	var sb strings.Builder
	for i, w := range s.buf.words {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%06x", w>>8)
	}
	s.log.Debug().Int("frame", s.frames).Str("grb", sb.String()).Msg("frame")
	s.buf.reset()
	return nil
}

// Frames returns how many complete frames were received.
func (s *Sim) Frames() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames
}

func (s *Sim) Close() error { return nil }
