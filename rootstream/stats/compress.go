package stats

import (
	"bytes"
	"errors"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// ErrCompressionFailed is returned when the LZ4 writer rejects a sample.
var ErrCompressionFailed = errors.New("stats: compression failed")

// compressorPool reuses LZ4 writers across samples.
var compressorPool = sync.Pool{
	New: func() interface{} {
		return lz4.NewWriter(nil)
	},
}

// CompressionRatio returns len(lz4(data)) / len(data) using the strongest
// LZ4 level. Random data does not compress, so the ratio stays at or just
// above 1; anything well below 1 means the stream has structure.
func CompressionRatio(data []byte) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmptySample
	}

	var buf bytes.Buffer
	w := compressorPool.Get().(*lz4.Writer)
	defer compressorPool.Put(w)

	w.Reset(&buf)
	_ = w.Apply(lz4.CompressionLevelOption(lz4.Level9))

	if _, err := w.Write(data); err != nil {
		return 0, ErrCompressionFailed
	}
	if err := w.Close(); err != nil {
		return 0, ErrCompressionFailed
	}
	return float64(buf.Len()) / float64(len(data)), nil
}
