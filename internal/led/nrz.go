package led

import (
	"fmt"
	"sync"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/nrzled"
)

// DefaultFreq is the WS2812 bit rate.
const DefaultFreq = 800 * physic.KiloHertz

// NRZ drives a WS2812 string through an SPI port. Words are buffered until a
// whole frame arrived, so a strip never latches a partial frame.
type NRZ struct {
	mu     sync.Mutex
	dev    *nrzled.Dev
	closer spi.PortCloser
	buf    frameBuffer
}

// NewNRZ wraps an already opened SPI port.
func NewNRZ(p spi.Port, count int, freq physic.Frequency) (*NRZ, error) {
	if count <= 0 {
		return nil, fmt.Errorf("invalid LED count: %d", count)
	}
	if freq == 0 {
		freq = DefaultFreq
	}
	opts := nrzled.Opts{
		NumPixels: count,
		Channels:  3,
		Freq:      freq,
	}
	d, err := nrzled.NewSPI(p, &opts)
	if err != nil {
		return nil, fmt.Errorf("nrzled: %w", err)
	}
	return &NRZ{dev: d, buf: newFrameBuffer(count)}, nil
}

// OpenNRZ opens the named SPI port ("" picks the first one registered).
func OpenNRZ(port string, count int, freq physic.Frequency) (*NRZ, error) {
	p, err := spireg.Open(port)
	if err != nil {
		return nil, fmt.Errorf("open spi %q: %w", port, err)
	}
	n, err := NewNRZ(p, count, freq)
	if err != nil {
		_ = p.Close()
		return nil, err
	}
	n.closer = p
	return n, nil
}

func (n *NRZ) Emit(word uint32) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.dev == nil {
		return fmt.Errorf("nrz sink closed")
	}
	if !n.buf.push(word) {
		return nil
	}
	defer n.buf.reset()
	if _, err := n.dev.Write(n.buf.rgb()); err != nil {
		return fmt.Errorf("nrz write: %w", err)
	}
	return nil
}

func (n *NRZ) String() string {
	return n.dev.String()
}

// Close blanks the strip and releases the port.
func (n *NRZ) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.dev == nil {
		return nil
	}
	err := n.dev.Halt()
	n.dev = nil
	if n.closer != nil {
		if cerr := n.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
