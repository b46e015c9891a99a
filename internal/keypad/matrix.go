package keypad

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

// DefaultSettle is how long a detected key is left to settle before it is
// reported.
const DefaultSettle = 20 * time.Millisecond

// Matrix scans the keypad by driving one row high at a time and reading the
// pulled-down columns.
type Matrix struct {
	rows   [Rows]gpio.PinOut
	cols   [Cols]gpio.PinIn
	settle time.Duration
	sleep  func(time.Duration)
}

// NewMatrix configures rows as low outputs and columns as pulled-down
// inputs.
func NewMatrix(rows [Rows]gpio.PinOut, cols [Cols]gpio.PinIn, settle time.Duration, sleep func(time.Duration)) (*Matrix, error) {
	if sleep == nil {
		sleep = time.Sleep
	}
	for i, p := range rows {
		if err := p.Out(gpio.Low); err != nil {
			return nil, fmt.Errorf("row %d (%s): %w", i, p, err)
		}
	}
	for i, p := range cols {
		if err := p.In(gpio.PullDown, gpio.NoEdge); err != nil {
			return nil, fmt.Errorf("col %d (%s): %w", i, p, err)
		}
	}
	return &Matrix{rows: rows, cols: cols, settle: settle, sleep: sleep}, nil
}

// OpenMatrix looks the pins up by name in the periph registry.
func OpenMatrix(rowNames [Rows]string, colNames [Cols]string, settle time.Duration) (*Matrix, error) {
	var rows [Rows]gpio.PinOut
	var cols [Cols]gpio.PinIn
	for i, n := range rowNames {
		p := gpioreg.ByName(n)
		if p == nil {
			return nil, fmt.Errorf("row pin %q not found", n)
		}
		rows[i] = p
	}
	for i, n := range colNames {
		p := gpioreg.ByName(n)
		if p == nil {
			return nil, fmt.Errorf("col pin %q not found", n)
		}
		cols[i] = p
	}
	return NewMatrix(rows, cols, settle, nil)
}

// Poll returns the first pressed key in scan order.
func (m *Matrix) Poll() (KeyCode, bool) {
	for r, row := range m.rows {
		if err := row.Out(gpio.High); err != nil {
			continue
		}
		for c, col := range m.cols {
			if col.Read() == gpio.High {
				_ = row.Out(gpio.Low)
				m.sleep(m.settle)
				return Layout[r][c], true
			}
		}
		_ = row.Out(gpio.Low)
	}
	return 0, false
}

// Halt releases every line.
func (m *Matrix) Halt() error {
	for _, p := range m.rows {
		if err := p.Out(gpio.Low); err != nil {
			return err
		}
	}
	return nil
}
