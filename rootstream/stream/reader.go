package stream

import "io"

// Reader serves an Engine's blocks as a byte stream. Bytes of a block left
// over from one Read are returned first by the next, so the byte sequence
// does not depend on how callers size their buffers.
type Reader struct {
	e   *Engine
	buf Block
	off int
}

var _ io.Reader = (*Reader)(nil)

// NewReader returns a Reader that draws from e.
func NewReader(e *Engine) *Reader {
	return &Reader{e: e, off: BlockSize}
}

// Read fills p completely. It never returns an error.
func (r *Reader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if r.off == BlockSize {
			r.buf = r.e.Next()
			r.off = 0
		}
		c := copy(p[n:], r.buf[r.off:])
		r.off += c
		n += c
	}
	return n, nil
}
