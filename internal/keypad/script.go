package keypad

import (
	"bufio"
	"io"
	"sync"
	"unicode"
)

// Script replays key symbols read from r, one per Poll. Whitespace is
// skipped and unknown symbols read as "no key".
type Script struct {
	mu  sync.Mutex
	r   *bufio.Reader
	eof bool
}

func NewScript(r io.Reader) *Script {
	return &Script{r: bufio.NewReader(r)}
}

func (s *Script) Poll() (KeyCode, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for !s.eof {
		c, _, err := s.r.ReadRune()
		if err != nil {
			s.eof = true
			break
		}
		if unicode.IsSpace(c) {
			continue
		}
		k, err := ParseKey(string(c))
		if err != nil {
			return 0, false
		}
		return k, true
	}
	return 0, false
}

// Done reports whether the script is exhausted.
func (s *Script) Done() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eof
}
