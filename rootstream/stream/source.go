package stream

import (
	"encoding/binary"
	"iter"
	"math/rand/v2"
)

// Source adapts a Reader to math/rand/v2 so a stream can drive
// rand.New(src).IntN, Shuffle, Perm and the rest.
type Source struct {
	r *Reader
}

var _ rand.Source = (*Source)(nil)

// NewSource returns a Source drawing 8 bytes per value from e.
func NewSource(e *Engine) *Source {
	return &Source{r: NewReader(e)}
}

// Uint64 reads the next 8 stream bytes as a big-endian integer.
func (s *Source) Uint64() uint64 {
	var b [8]byte
	s.r.Read(b[:])
	return binary.BigEndian.Uint64(b[:])
}

// Floats returns an endless sequence of floats drawn from e: each value is
// the next 8 stream bytes read big-endian, divided by 2^64.
//
// The division rounds to nearest, so inputs within 2^10 of 2^64 yield 1.0.
// That matches the published float stream bit for bit; use
// rand.New(NewSource(e)).Float64 when a strict [0, 1) range matters more
// than cross-implementation agreement.
func Floats(e *Engine) iter.Seq[float64] {
	src := NewSource(e)
	return func(yield func(float64) bool) {
		for {
			if !yield(float64(src.Uint64()) / (1 << 64)) {
				return
			}
		}
	}
}
