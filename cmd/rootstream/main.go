// rootstream prints and checks deterministic byte streams.
//
// Usage:
//
//	rootstream verify
//	rootstream hex    [--seed HEX] [--count N]
//	rootstream raw    [--seed HEX] [--bytes N]
//	rootstream floats [--seed HEX] [--count N]
//	rootstream check  [--seed HEX] [--bytes N] [--seeds K] [--workers W]
//
// NOT FOR CRYPTOGRAPHIC USE.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/TheusHen/rootstream/rootstream/stats"
	"github.com/TheusHen/rootstream/rootstream/stream"
)

var errUsage = errors.New("usage: rootstream verify|hex|raw|floats|check [flags]")

func main() {
	log.SetFlags(0)
	log.SetPrefix("rootstream: ")
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if err == pflag.ErrHelp {
			return
		}
		log.Fatalf("%v", err)
	}
}

func run(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, args := args[0], args[1:]

	switch cmd {
	case "verify":
		return runVerify(args, stdout)
	case "hex":
		return runHex(args, stdout)
	case "raw":
		return runRaw(args, stdout)
	case "floats":
		return runFloats(args, stdout)
	case "check":
		return runCheck(args, stdout)
	default:
		return fmt.Errorf("unknown command %q\n%w", cmd, errUsage)
	}
}

// seedFlag registers --seed on fs and returns a getter that parses it.
func seedFlag(fs *pflag.FlagSet) func() (stream.Seed, error) {
	raw := fs.String("seed", "", "64-char hex seed (default: derived from 1/sqrt(2))")
	return func() (stream.Seed, error) {
		if *raw == "" {
			return stream.DefaultSeed, nil
		}
		return stream.ParseSeed(*raw)
	}
}

func runVerify(args []string, stdout io.Writer) error {
	fs := pflag.NewFlagSet("verify", pflag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	e := stream.NewDefault()
	failed := 0
	for i, want := range stream.ReferenceVectors {
		got := e.Next().Hex()
		status := "PASS"
		if got != want {
			status = "FAIL"
			failed++
		}
		if _, err := fmt.Fprintf(stdout, "[%d]: %s  %s\n", i, status, got); err != nil {
			return err
		}
		if got != want {
			if _, err := fmt.Fprintf(stdout, "  expected: %s\n", want); err != nil {
				return err
			}
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d vectors: %w", failed, len(stream.ReferenceVectors), stream.ErrVectorMismatch)
	}
	log.Printf("all %d vectors match", len(stream.ReferenceVectors))
	return nil
}

func runHex(args []string, stdout io.Writer) error {
	fs := pflag.NewFlagSet("hex", pflag.ContinueOnError)
	seed := seedFlag(fs)
	count := fs.IntP("count", "n", 5, "number of 16-byte blocks")
	if err := fs.Parse(args); err != nil {
		return err
	}
	s, err := seed()
	if err != nil {
		return err
	}

	e := stream.New(s[:])
	for i := 0; i < *count; i++ {
		if _, err := fmt.Fprintln(stdout, e.Next().Hex()); err != nil {
			return err
		}
	}
	return nil
}

func runRaw(args []string, stdout io.Writer) error {
	fs := pflag.NewFlagSet("raw", pflag.ContinueOnError)
	seed := seedFlag(fs)
	n := fs.Int64P("bytes", "b", 1024, "number of bytes to write")
	if err := fs.Parse(args); err != nil {
		return err
	}
	s, err := seed()
	if err != nil {
		return err
	}

	_, err = io.CopyN(stdout, stream.NewReader(stream.New(s[:])), *n)
	return err
}

func runFloats(args []string, stdout io.Writer) error {
	fs := pflag.NewFlagSet("floats", pflag.ContinueOnError)
	seed := seedFlag(fs)
	count := fs.IntP("count", "n", 5, "number of floats")
	if err := fs.Parse(args); err != nil {
		return err
	}
	s, err := seed()
	if err != nil {
		return err
	}

	i := 0
	for f := range stream.Floats(stream.New(s[:])) {
		if i >= *count {
			break
		}
		if _, err := fmt.Fprintln(stdout, strconv.FormatFloat(f, 'g', -1, 64)); err != nil {
			return err
		}
		i++
	}
	return nil
}

func runCheck(args []string, stdout io.Writer) error {
	fs := pflag.NewFlagSet("check", pflag.ContinueOnError)
	seed := seedFlag(fs)
	size := fs.IntP("bytes", "b", 64*1024, "bytes sampled per seed")
	seeds := fs.IntP("seeds", "k", 8, "number of substreams derived from the root seed")
	workers := fs.IntP("workers", "w", 4, "concurrent workers")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *seeds < 0 {
		return fmt.Errorf("--seeds must not be negative, got %d\n%w", *seeds, errUsage)
	}
	if *size < stats.MinSampleSize {
		return fmt.Errorf("--bytes %d: %w (minimum %d)", *size, stats.ErrSampleTooSmall, stats.MinSampleSize)
	}
	root, err := seed()
	if err != nil {
		return err
	}

	samples := make([][]byte, 0, *seeds)
	for i := 0; i < *seeds; i++ {
		s, err := stream.DeriveSeed(root[:], strconv.Itoa(i))
		if err != nil {
			return err
		}
		samples = append(samples, s[:])
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Printf("sampling %d substreams of %d bytes", len(samples), *size)
	reports, err := stats.Survey(ctx, samples, *size, *workers)
	if err != nil {
		return err
	}

	th := stats.DefaultThresholds()
	failed := 0
	for i, r := range reports {
		status := "PASS"
		if err := r.Check(th); err != nil {
			status = "FAIL"
			failed++
			log.Printf("substream %d: %v", i, err)
		}
		if _, err := fmt.Fprintf(stdout, "[%d]: %s  %s\n", i, status, r); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d substreams: %w", failed, len(reports), stats.ErrQualityCheckFailed)
	}
	return nil
}
