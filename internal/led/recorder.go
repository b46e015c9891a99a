package led

import "sync"

// Recorder keeps every emitted word in memory, useful for headless tests.
type Recorder struct {
	mu    sync.Mutex
	words []uint32
	// Fail, when set, is returned by Emit instead of recording.
	Fail error
}

func (r *Recorder) Emit(word uint32) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail != nil {
		return r.Fail
	}
	r.words = append(r.words, word)
	return nil
}

func (r *Recorder) Close() error { return nil }

// Words returns a copy of everything emitted so far.
func (r *Recorder) Words() []uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]uint32, len(r.words))
	copy(out, r.words)
	return out
}

// Frames splits the recording into frames of n words. A trailing partial
// frame is dropped.
func (r *Recorder) Frames(n int) [][]uint32 {
	words := r.Words()
	var out [][]uint32
	for len(words) >= n {
		out = append(out, words[:n])
		words = words[n:]
	}
	return out
}

// Reset drops the recording.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.words = nil
	r.mu.Unlock()
}
