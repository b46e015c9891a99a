package led

import (
	"fmt"
	"image"
	"io"
	"sync"

	"periph.io/x/conn/v3/display"
	"periph.io/x/extra/devices/screen"
)

// Console draws each frame as a row of ANSI colored blocks on the terminal,
// for hosts without an SPI port.
type Console struct {
	mu     sync.Mutex
	drawer display.Drawer
	out    io.Writer
	buf    frameBuffer
}

func NewConsole(count int, out io.Writer) *Console {
	return newConsole(screen.New(count), count, out)
}

func newConsole(d display.Drawer, count int, out io.Writer) *Console {
	return &Console{
		drawer: d,
		out:    out,
		buf:    newFrameBuffer(count),
	}
}

func (c *Console) Emit(word uint32) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.buf.push(word) {
		return nil
	}
	defer c.buf.reset()
	if err := c.drawer.Draw(c.drawer.Bounds(), c.buf.image(), image.Point{}); err != nil {
		return fmt.Errorf("console draw: %w", err)
	}
	if c.out != nil {
		fmt.Fprintln(c.out)
	}
	return nil
}

func (c *Console) Close() error {
	return c.drawer.Halt()
}
