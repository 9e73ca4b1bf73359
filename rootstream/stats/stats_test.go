package stats

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/TheusHen/rootstream/rootstream/stream"
)

func TestMonobit(t *testing.T) {
	if m := Monobit([]byte{0xff, 0x00}); m != 0.5 {
		t.Fatalf("Monobit = %v", m)
	}
	if m := Monobit([]byte{0x0f}); m != 0.5 {
		t.Fatalf("Monobit = %v", m)
	}
	if m := Monobit(bytes.Repeat([]byte{0xff}, 10)); m != 1 {
		t.Fatalf("Monobit = %v", m)
	}
}

func TestRuns(t *testing.T) {
	cases := []struct {
		in   []byte
		want int
	}{
		{[]byte{0x00}, 1},
		{[]byte{0xff, 0xff}, 1},
		{[]byte{0xaa}, 8},
		{[]byte{0xf0}, 2},
		{[]byte{0x0f, 0xf0}, 3},
	}
	for _, c := range cases {
		if got := Runs(c.in); got != c.want {
			t.Fatalf("Runs(%x) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestChiSquareUniformHistogram(t *testing.T) {
	data := make([]byte, 256*4)
	for i := range data {
		data[i] = byte(i)
	}
	if c := ChiSquare(data); c != 0 {
		t.Fatalf("ChiSquare of flat histogram = %v", c)
	}
}

func TestAnalyzeGeneratedOutput(t *testing.T) {
	data := Sample(stream.DefaultSeed[:], 64*1024)
	r, err := Analyze(data)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if err := r.Check(DefaultThresholds()); err != nil {
		t.Fatalf("generated output failed: %v (%s)", err, r)
	}
}

func TestAnalyzeRejectsStructuredData(t *testing.T) {
	data := bytes.Repeat([]byte("rootstream"), 4096)
	r, err := Analyze(data)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if err := r.Check(DefaultThresholds()); !errors.Is(err, ErrQualityCheckFailed) {
		t.Fatalf("expected ErrQualityCheckFailed, got %v", err)
	}
	if r.CompressionRatio > 0.1 {
		t.Fatalf("repetitive data compressed to %.3f", r.CompressionRatio)
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	if _, err := Analyze(nil); err != ErrEmptySample {
		t.Fatalf("expected ErrEmptySample, got %v", err)
	}
	if _, err := CompressionRatio(nil); err != ErrEmptySample {
		t.Fatalf("expected ErrEmptySample, got %v", err)
	}
}

func TestSampleMatchesStream(t *testing.T) {
	data := Sample(stream.DefaultSeed[:], 16)
	if stream.Block(data).Hex() != stream.ReferenceVectors[0] {
		t.Fatalf("Sample does not start at the first block")
	}
}

func TestSurvey(t *testing.T) {
	var seeds [][]byte
	for i := 0; i < 6; i++ {
		s, err := stream.DeriveSeed(stream.DefaultSeed[:], string(rune('a'+i)))
		if err != nil {
			t.Fatalf("DeriveSeed: %v", err)
		}
		seeds = append(seeds, s[:])
	}

	reports, err := Survey(context.Background(), seeds, 32*1024, 3)
	if err != nil {
		t.Fatalf("Survey: %v", err)
	}
	if len(reports) != len(seeds) {
		t.Fatalf("got %d reports", len(reports))
	}
	for i, r := range reports {
		if r.Bytes != 32*1024 {
			t.Fatalf("report %d: %d bytes", i, r.Bytes)
		}
		if err := r.Check(DefaultThresholds()); err != nil {
			t.Fatalf("seed %d: %v (%s)", i, err, r)
		}
	}

	// Reports are in seed order regardless of scheduling.
	single, err := Analyze(Sample(seeds[2], 32*1024))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if single != reports[2] {
		t.Fatalf("report order mismatch")
	}
}

func TestSurveyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Survey(ctx, [][]byte{[]byte("a"), []byte("b")}, 1024, 1)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestSampleNegativeSize(t *testing.T) {
	if data := Sample(stream.DefaultSeed[:], -1); len(data) != 0 {
		t.Fatalf("Sample(-1) returned %d bytes", len(data))
	}
}

func TestSurveyKeepsCompleteResult(t *testing.T) {
	// Nothing is left unsampled, so a finished ctx does not discard the result.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	reports, err := Survey(ctx, nil, 1024, 1)
	if err != nil {
		t.Fatalf("Survey: %v", err)
	}
	if len(reports) != 0 {
		t.Fatalf("got %d reports", len(reports))
	}
}

func TestSurveyEmptySize(t *testing.T) {
	if _, err := Survey(context.Background(), [][]byte{nil}, 0, 1); err != ErrEmptySample {
		t.Fatalf("expected ErrEmptySample, got %v", err)
	}
}

func BenchmarkAnalyze(b *testing.B) {
	data := Sample(stream.DefaultSeed[:], 64*1024)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Analyze(data)
	}
}
