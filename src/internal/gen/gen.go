// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package gen writes synthetic record streams used as benchmark and test
// fixtures.
package gen

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"runtime"

	"github.com/H0llyW00dzZ/buffered-iterator/src/recordio"
	"golang.org/x/sync/errgroup"
)

// maxRecordSize is the largest record, length byte included, that Generate
// emits. Record sizes are drawn uniformly from [1, maxRecordSize].
const maxRecordSize = recordio.MaxPayloadLen - 1

// Generate writes random records totalling exactly size bytes to w and
// returns the number of records written. The last record is shortened to
// land on size.
func Generate(w io.Writer, size int64, rng *rand.Rand) (int, error) {
	bw := bufio.NewWriter(w)
	rw := recordio.NewWriter(bw)
	payload := make([]byte, recordio.MaxPayloadLen)

	var (
		written int64
		records int
	)
	for written < size {
		complete := int64(rng.IntN(maxRecordSize) + 1)
		complete = min(complete, size-written)

		data := payload[:complete-recordio.HeaderSize]
		for i := range data {
			data[i] = byte(rng.IntN(255))
		}

		n, err := rw.Write(data)
		if err != nil {
			return records, fmt.Errorf("error writing record %d: %w", records, err)
		}
		written += int64(n)
		records++
	}

	if err := bw.Flush(); err != nil {
		return records, fmt.Errorf("error flushing records: %w", err)
	}
	return records, nil
}

// Payloads returns count random payloads of up to maxLen bytes each.
func Payloads(rng *rand.Rand, count, maxLen int) [][]byte {
	maxLen = min(maxLen, recordio.MaxPayloadLen)
	out := make([][]byte, count)
	for i := range out {
		p := make([]byte, rng.IntN(maxLen+1))
		for j := range p {
			p[j] = byte(rng.IntN(256))
		}
		out[i] = p
	}
	return out
}

// Encode frames payloads into a single stream.
func Encode(payloads [][]byte) ([]byte, error) {
	var (
		buf []byte
		err error
	)
	for _, p := range payloads {
		if buf, err = recordio.Append(buf, p); err != nil {
			return nil, err
		}
	}
	return buf, nil
}

// FileName returns the fixture name for a given size.
func FileName(size int64) string { return fmt.Sprintf("%d.bin", size) }

// File returns the path of a fixture of exactly size bytes in dir. An existing
// file of the right size is reused; otherwise a new one is generated from
// seed.
func File(dir string, size int64, seed uint64) (string, error) {
	path := filepath.Join(dir, FileName(size))

	if info, err := os.Stat(path); err == nil && info.Size() == size {
		return path, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("error creating fixture directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, FileName(size)+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("error creating fixture: %w", err)
	}
	defer os.Remove(tmp.Name())

	rng := rand.New(rand.NewPCG(seed, uint64(size)))
	if _, err := Generate(tmp, size, rng); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("error closing fixture: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("error publishing fixture: %w", err)
	}
	return path, nil
}

// Files generates fixtures for every size concurrently and returns their
// paths in the order of sizes.
func Files(ctx context.Context, dir string, sizes []int64, seed uint64) ([]string, error) {
	paths := make([]string, len(sizes))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, size := range sizes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path, err := File(dir, size, seed)
			if err != nil {
				return fmt.Errorf("fixture %s: %w", FileName(size), err)
			}
			paths[i] = path
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}
