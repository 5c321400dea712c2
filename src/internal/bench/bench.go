// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package bench times the record parsers against fixture files.
package bench

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/H0llyW00dzZ/buffered-iterator/src/recordio"
	"github.com/dustin/go-humanize"
)

// Kind selects a parsing strategy.
type Kind string

const (
	// Allocating uses [recordio.AllocatingParser].
	Allocating Kind = "allocating"
	// Buffered uses [recordio.BufferedParser.All].
	Buffered Kind = "buffered"
	// Borrowed uses [recordio.BufferedParser.Payloads].
	Borrowed Kind = "borrowed"
)

// Kinds lists every strategy in reporting order.
var Kinds = []Kind{Allocating, Buffered, Borrowed}

// ErrUnknownKind is returned for an unrecognised strategy name.
var ErrUnknownKind = errors.New("unknown parser kind")

// ParseKind validates a strategy name.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Config controls a benchmark run.
type Config struct {
	// Iterations is how many times each file is parsed.
	Iterations int
	// ReadBufferSize is the bufio size of the byte source.
	ReadBufferSize int
}

// Result is the outcome of parsing one file with one strategy.
type Result struct {
	Kind       Kind
	Path       string
	Size       int64
	Iterations int
	Records    uint64
	Elapsed    time.Duration
	Mallocs    uint64
	AllocBytes uint64
}

// PerOp returns the mean time per full parse of the file.
func (r Result) PerOp() time.Duration {
	if r.Iterations == 0 {
		return 0
	}
	return r.Elapsed / time.Duration(r.Iterations)
}

// Throughput returns bytes parsed per second.
func (r Result) Throughput() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Size) * float64(r.Iterations) / r.Elapsed.Seconds()
}

// AllocsPerOp returns heap allocations per full parse.
func (r Result) AllocsPerOp() uint64 {
	if r.Iterations == 0 {
		return 0
	}
	return r.Mallocs / uint64(r.Iterations)
}

// String renders a one-line summary.
func (r Result) String() string {
	return fmt.Sprintf("%s %s: %s/op, %s/s, %d allocs/op",
		r.Kind, humanize.IBytes(uint64(r.Size)), r.PerOp(),
		humanize.IBytes(uint64(r.Throughput())), r.AllocsPerOp())
}

// Run parses path cfg.Iterations times with the given strategy.
func Run(ctx context.Context, kind Kind, path string, cfg Config) (Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Result{}, fmt.Errorf("error reading fixture: %w", err)
	}

	res := Result{Kind: kind, Path: path, Size: info.Size()}

	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)
	start := time.Now()

	for range cfg.Iterations {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		records, err := parseFile(kind, path, cfg.ReadBufferSize)
		if err != nil {
			return res, err
		}
		res.Records = records
		res.Iterations++
	}

	res.Elapsed = time.Since(start)
	runtime.ReadMemStats(&after)
	res.Mallocs = after.Mallocs - before.Mallocs
	res.AllocBytes = after.TotalAlloc - before.TotalAlloc
	return res, nil
}

// Compare runs every strategy on every path, in path order.
func Compare(ctx context.Context, paths []string, cfg Config) ([]Result, error) {
	results := make([]Result, 0, len(paths)*len(Kinds))
	for _, path := range paths {
		for _, kind := range Kinds {
			res, err := Run(ctx, kind, path, cfg)
			if err != nil {
				return results, fmt.Errorf("%s on %s: %w", kind, path, err)
			}
			results = append(results, res)
		}
	}
	return results, nil
}

func parseFile(kind Kind, path string, bufSize int) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	src := recordio.NewBufferedSource(f, max(bufSize, 16))

	switch kind {
	case Allocating:
		p := recordio.NewAllocatingParser(src)
		for _, err := range p.All() {
			if err != nil {
				return 0, err
			}
		}
		return p.Stats().Records, nil

	case Buffered:
		p := recordio.NewBufferedParser(src)
		defer p.Close()
		for v, err := range p.All() {
			if err != nil {
				return 0, err
			}
			_ = v.Bytes()
		}
		return p.Stats().Records, nil

	case Borrowed:
		p := recordio.NewBufferedParser(src)
		defer p.Close()
		for _, err := range p.Payloads() {
			if err != nil {
				return 0, err
			}
		}
		return p.Stats().Records, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}
