// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gen_test

import (
	"bytes"
	"context"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/H0llyW00dzZ/buffered-iterator/src/internal/gen"
	"github.com/H0llyW00dzZ/buffered-iterator/src/recordio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	sizes := []int64{0, 1, 2, 255, 256, 1 << 10, 1 << 16}

	for _, size := range sizes {
		t.Run(gen.FileName(size), func(t *testing.T) {
			var buf bytes.Buffer
			rng := rand.New(rand.NewPCG(1, 2))

			records, err := gen.Generate(&buf, size, rng)
			require.NoError(t, err)
			assert.Equal(t, size, int64(buf.Len()), "stream size")

			p := recordio.NewAllocatingParser(recordio.NewReaderSource(&buf))
			var (
				parsed int
				total  int64
			)
			for payload, err := range p.All() {
				require.NoError(t, err)
				assert.LessOrEqual(t, len(payload), recordio.MaxPayloadLen-2)
				total += int64(recordio.Size(payload))
				parsed++
			}

			assert.Equal(t, records, parsed, "record count")
			assert.Equal(t, size, total, "framed size")
		})
	}
}

func TestGenerateDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	_, err := gen.Generate(&a, 4096, rand.New(rand.NewPCG(7, 7)))
	require.NoError(t, err)
	_, err = gen.Generate(&b, 4096, rand.New(rand.NewPCG(7, 7)))
	require.NoError(t, err)

	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestEncode(t *testing.T) {
	got, err := gen.Encode([][]byte{{5}, {3, 4, 5, 6}, {}})
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 5, 4, 3, 4, 5, 6, 0}, got)

	_, err = gen.Encode([][]byte{make([]byte, 256)})
	assert.ErrorIs(t, err, recordio.ErrPayloadTooLarge)
}

func TestPayloads(t *testing.T) {
	payloads := gen.Payloads(rand.New(rand.NewPCG(3, 4)), 100, 1000)

	assert.Len(t, payloads, 100)
	for _, p := range payloads {
		assert.LessOrEqual(t, len(p), recordio.MaxPayloadLen)
	}
}

func TestFileReusesExistingFixture(t *testing.T) {
	dir := t.TempDir()

	path, err := gen.File(dir, 2048, 1)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "2048.bin"), path)

	first, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, first, 2048)

	// A different seed must not regenerate a fixture that already has the right size.
	_, err = gen.File(dir, 2048, 99)
	require.NoError(t, err)

	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFileReplacesWrongSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, gen.FileName(512))
	require.NoError(t, os.WriteFile(path, []byte{1, 2}, 0o644))

	got, err := gen.File(dir, 512, 1)
	require.NoError(t, err)

	info, err := os.Stat(got)
	require.NoError(t, err)
	assert.Equal(t, int64(512), info.Size())
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	sizes := []int64{1 << 10, 1 << 12, 1 << 14}

	paths, err := gen.Files(context.Background(), dir, sizes, 42)
	require.NoError(t, err)
	require.Len(t, paths, len(sizes))

	for i, path := range paths {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, sizes[i], info.Size())
	}

	leftovers, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestFilesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gen.Files(ctx, t.TempDir(), []int64{1024}, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
