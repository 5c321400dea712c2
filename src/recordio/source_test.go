// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package recordio_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/H0llyW00dzZ/buffered-iterator/src/recordio"
	"github.com/stretchr/testify/assert"
)

var errRead = errors.New("i failed to read")

// mockReader fails its errorCounter-th Read call.
type mockReader struct {
	*bytes.Reader
	counter      int
	errorCounter int
}

func newMockReader(data []byte, errorCount int) *mockReader {
	return &mockReader{
		Reader:       bytes.NewReader(data),
		errorCounter: errorCount,
	}
}

func (r *mockReader) Read(p []byte) (n int, err error) {
	r.counter++
	if r.counter == r.errorCounter {
		return 0, errRead
	}
	return r.Reader.Read(p)
}

func TestReaderSourceReadExact(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		readLen int
		want    []byte
		wantErr error
	}{
		{
			name:    "exact read",
			input:   []byte{1, 2, 3},
			readLen: 3,
			want:    []byte{1, 2, 3},
		},
		{
			name:    "partial stream consumed",
			input:   []byte{1, 2, 3, 4},
			readLen: 2,
			want:    []byte{1, 2},
		},
		{
			name:    "zero length read on empty stream",
			input:   nil,
			readLen: 0,
			want:    []byte{},
		},
		{
			name:    "clean end of stream",
			input:   nil,
			readLen: 1,
			wantErr: io.EOF,
		},
		{
			name:    "truncated",
			input:   []byte{1, 2},
			readLen: 5,
			wantErr: recordio.ErrTruncatedRecord,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := recordio.NewReaderSource(bytes.NewReader(tt.input))
			p := make([]byte, tt.readLen)

			err := src.ReadExact(p)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, p)
		})
	}
}

func TestReaderSourceTruncatedMessage(t *testing.T) {
	src := recordio.NewReaderSource(bytes.NewReader([]byte{1, 2, 3}))

	err := src.ReadExact(make([]byte, 5))

	assert.EqualError(t, err, "truncated record: got 3 of 5 bytes")
}

func TestReaderSourceIOFailure(t *testing.T) {
	src := recordio.NewReaderSource(newMockReader([]byte{1, 2, 3}, 1))

	err := src.ReadExact(make([]byte, 2))

	assert.ErrorIs(t, err, recordio.ErrIO)
	assert.ErrorIs(t, err, errRead)
	assert.NotErrorIs(t, err, io.EOF)
	assert.EqualError(t, err, "i/o failure: i failed to read")
}

func TestBufferedSource(t *testing.T) {
	input := bytes.Repeat([]byte{7}, 100)
	src := recordio.NewBufferedSource(bytes.NewReader(input), 16)

	for range 10 {
		p := make([]byte, 10)
		assert.NoError(t, src.ReadExact(p))
		assert.Equal(t, bytes.Repeat([]byte{7}, 10), p)
	}

	assert.ErrorIs(t, src.ReadExact(make([]byte, 1)), io.EOF)
}
