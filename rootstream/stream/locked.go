package stream

import "sync"

// Locked serialises access to one Engine so several goroutines can share
// it. The interleaving of callers decides who gets which block; the block
// sequence itself is unchanged.
type Locked struct {
	mu sync.Mutex
	e  *Engine
	r  *Reader
}

// NewLocked wraps e. After wrapping, e must only be used through the
// returned Locked.
func NewLocked(e *Engine) *Locked {
	return &Locked{e: e, r: NewReader(e)}
}

// Next returns the next block.
//
// Blocks drawn by Next and bytes drawn by Read come from the same engine;
// a Next call does not reuse bytes Read has buffered but not yet returned.
func (l *Locked) Next() Block {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.e.Next()
}

// Counter returns the number of hash rounds consumed so far.
func (l *Locked) Counter() uint32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.e.Counter()
}

// Read fills p from the stream. It never returns an error.
func (l *Locked) Read(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Read(p)
}
