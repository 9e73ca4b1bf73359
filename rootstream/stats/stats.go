package stats

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

var (
	// ErrEmptySample is returned for a zero-length sample.
	ErrEmptySample = errors.New("stats: empty sample")

	// ErrSampleTooSmall is returned when a sample is too short for the
	// default thresholds to be meaningful.
	ErrSampleTooSmall = errors.New("stats: sample too small")

	// ErrQualityCheckFailed is returned by Check when a metric is out of range.
	ErrQualityCheckFailed = errors.New("stats: quality check failed")
)

// MinSampleSize is the smallest sample DefaultThresholds are calibrated
// for: 16 expected hits per byte value in the chi-square histogram.
const MinSampleSize = 4096

// Monobit returns the fraction of one bits in data.
func Monobit(data []byte) float64 {
	if len(data) == 0 {
		return 0
	}
	ones := 0
	for _, b := range data {
		ones += bits.OnesCount8(b)
	}
	return float64(ones) / float64(len(data)*8)
}

// ChiSquare returns the chi-square statistic of the byte histogram of data
// against a uniform distribution. For uniform bytes it is close to 255, the
// number of degrees of freedom.
func ChiSquare(data []byte) float64 {
	if len(data) == 0 {
		return 0
	}
	var counts [256]int
	for _, b := range data {
		counts[b]++
	}
	expected := float64(len(data)) / 256
	var sum float64
	for _, c := range counts {
		d := float64(c) - expected
		sum += d * d / expected
	}
	return sum
}

// Runs returns the number of maximal runs of equal bits in data, reading
// each byte MSB first.
func Runs(data []byte) int {
	if len(data) == 0 {
		return 0
	}
	runs := 1
	prev := data[0] >> 7
	for _, b := range data {
		for i := 7; i >= 0; i-- {
			bit := (b >> uint(i)) & 1
			if bit != prev {
				runs++
				prev = bit
			}
		}
	}
	return runs
}

// Report collects every metric for one sample.
type Report struct {
	Bytes            int
	Monobit          float64
	ChiSquare        float64
	Runs             int
	CompressionRatio float64
}

// RunsRatio is Runs per bit; about 0.5 for random data.
func (r Report) RunsRatio() float64 {
	if r.Bytes == 0 {
		return 0
	}
	return float64(r.Runs) / float64(r.Bytes*8)
}

func (r Report) String() string {
	return fmt.Sprintf("bytes=%d monobit=%.4f chi2=%.1f runs/bit=%.4f lz4=%.3f",
		r.Bytes, r.Monobit, r.ChiSquare, r.RunsRatio(), r.CompressionRatio)
}

// Thresholds bound what Check accepts.
type Thresholds struct {
	MonobitTolerance    float64 // max |monobit - 0.5|
	MaxChiSquare        float64
	RunsTolerance       float64 // max |runs/bit - 0.5|
	MinCompressionRatio float64
}

// DefaultThresholds are loose enough for samples of MinSampleSize bytes
// and up.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MonobitTolerance:    0.01,
		MaxChiSquare:        400,
		RunsTolerance:       0.03,
		MinCompressionRatio: 0.99,
	}
}

// Analyze computes a Report for data.
func Analyze(data []byte) (Report, error) {
	if len(data) == 0 {
		return Report{}, ErrEmptySample
	}
	ratio, err := CompressionRatio(data)
	if err != nil {
		return Report{}, err
	}
	return Report{
		Bytes:            len(data),
		Monobit:          Monobit(data),
		ChiSquare:        ChiSquare(data),
		Runs:             Runs(data),
		CompressionRatio: ratio,
	}, nil
}

// Check returns ErrQualityCheckFailed, wrapped with the first failing
// metric, if r falls outside th.
func (r Report) Check(th Thresholds) error {
	if d := math.Abs(r.Monobit - 0.5); d > th.MonobitTolerance {
		return fmt.Errorf("%w: monobit %.4f", ErrQualityCheckFailed, r.Monobit)
	}
	if r.ChiSquare > th.MaxChiSquare {
		return fmt.Errorf("%w: chi-square %.1f exceeds %.1f", ErrQualityCheckFailed, r.ChiSquare, th.MaxChiSquare)
	}
	if d := math.Abs(r.RunsRatio() - 0.5); d > th.RunsTolerance {
		return fmt.Errorf("%w: runs per bit %.4f", ErrQualityCheckFailed, r.RunsRatio())
	}
	if r.CompressionRatio < th.MinCompressionRatio {
		return fmt.Errorf("%w: lz4 ratio %.3f below %.3f", ErrQualityCheckFailed, r.CompressionRatio, th.MinCompressionRatio)
	}
	return nil
}
