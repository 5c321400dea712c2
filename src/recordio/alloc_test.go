// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package recordio_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/H0llyW00dzZ/buffered-iterator/src/recordio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAllocating(input []byte) *recordio.AllocatingParser {
	return recordio.NewAllocatingParser(recordio.NewReaderSource(bytes.NewReader(input)))
}

func TestAllocatingParserNext(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		want    [][]byte
		wantErr error
	}{
		{
			name:  "demo stream",
			input: []byte{1, 5, 0, 4, 3, 4, 5, 6},
			want:  [][]byte{{5}, {}, {3, 4, 5, 6}},
		},
		{
			name:  "empty stream",
			input: []byte{},
			want:  [][]byte{},
		},
		{
			name:  "zero length record",
			input: []byte{0, 1, 9},
			want:  [][]byte{{}, {9}},
		},
		{
			name:    "truncated payload",
			input:   []byte{5, 1, 2, 3},
			want:    [][]byte{},
			wantErr: recordio.ErrTruncatedRecord,
		},
		{
			name:    "length without payload",
			input:   []byte{1, 7, 3},
			want:    [][]byte{{7}},
			wantErr: recordio.ErrTruncatedRecord,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newAllocating(tt.input)

			got := [][]byte{}
			var err error
			for {
				var payload []byte
				payload, err = p.Next()
				if err != nil {
					break
				}
				got = append(got, payload)
			}

			assert.Equal(t, tt.want, got)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.ErrorIs(t, err, io.EOF)
			}
		})
	}
}

func TestAllocatingParserOwnsPayloads(t *testing.T) {
	p := newAllocating([]byte{2, 1, 2, 2, 3, 4})

	first, err := p.Next()
	require.NoError(t, err)
	second, err := p.Next()
	require.NoError(t, err)

	first[0] = 99
	assert.Equal(t, []byte{3, 4}, second)
	assert.Equal(t, []byte{99, 2}, first)
}

func TestAllocatingParserStickyError(t *testing.T) {
	p := newAllocating([]byte{4, 1})

	_, err := p.Next()
	require.ErrorIs(t, err, recordio.ErrTruncatedRecord)

	_, again := p.Next()
	assert.Equal(t, err, again)
}

func TestAllocatingParserIOFailure(t *testing.T) {
	p := recordio.NewAllocatingParser(recordio.NewReaderSource(newMockReader([]byte{1, 5, 1, 6}, 3)))

	payload, err := p.Next()
	require.NoError(t, err)
	assert.Equal(t, []byte{5}, payload)

	_, err = p.Next()
	assert.ErrorIs(t, err, recordio.ErrIO)
	assert.ErrorIs(t, err, errRead)
	assert.EqualError(t, err, "error reading length: i/o failure: i failed to read")
}

func TestAllocatingParserAll(t *testing.T) {
	p := newAllocating([]byte{1, 5, 4, 3, 4, 5, 6, 9})

	var (
		got  [][]byte
		errs []error
	)
	for payload, err := range p.All() {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		got = append(got, payload)
	}

	assert.Equal(t, [][]byte{{5}, {3, 4, 5, 6}}, got)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], recordio.ErrTruncatedRecord)
}

func TestAllocatingParserStats(t *testing.T) {
	p := newAllocating([]byte{1, 5, 0, 4, 3, 4, 5, 6})
	for _, err := range p.All() {
		require.NoError(t, err)
	}

	stats := p.Stats()
	assert.Equal(t, uint64(3), stats.Records)
	assert.Equal(t, uint64(5), stats.Bytes)
	assert.Equal(t, uint64(3), stats.Allocations)
	assert.Zero(t, stats.Reuses)
}
