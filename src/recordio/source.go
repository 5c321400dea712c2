// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package recordio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Source is a sequential byte source.
//
// ReadExact fills p completely or reports why it could not:
//   - io.EOF if no bytes at all were available;
//   - an error wrapping ErrTruncatedRecord if the stream ended part way;
//   - an error wrapping ErrIO for any other failure.
type Source interface {
	ReadExact(p []byte) error
}

type readerSource struct {
	r io.Reader
}

// NewReaderSource adapts r to a Source without adding buffering.
func NewReaderSource(r io.Reader) Source {
	return &readerSource{r: r}
}

// NewBufferedSource adapts r to a Source reading through a bufio.Reader of the
// given size. Small reads of one length byte at a time are otherwise one
// syscall each on files and sockets.
func NewBufferedSource(r io.Reader, size int) Source {
	return &readerSource{r: bufio.NewReaderSize(r, size)}
}

func (s *readerSource) ReadExact(p []byte) error {
	n, err := io.ReadFull(s.r, p)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF):
		return io.EOF
	case errors.Is(err, io.ErrUnexpectedEOF):
		return fmt.Errorf("%w: got %d of %d bytes", ErrTruncatedRecord, n, len(p))
	default:
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
}

// readLength reads the length prefix into hdr. It returns io.EOF only for a
// clean end of stream.
func readLength(src Source, hdr []byte) (int, error) {
	if err := src.ReadExact(hdr[:HeaderSize]); err != nil {
		if errors.Is(err, io.EOF) {
			return 0, io.EOF
		}
		return 0, fmt.Errorf("error reading length: %w", err)
	}
	return int(hdr[0]), nil
}

// readPayload fills p. Running out of input here is always a truncation.
func readPayload(src Source, p []byte) error {
	err := src.ReadExact(p)
	if err == nil {
		return nil
	}
	if errors.Is(err, io.EOF) {
		err = fmt.Errorf("%w: got 0 of %d bytes", ErrTruncatedRecord, len(p))
	}
	return fmt.Errorf("error reading payload: %w", err)
}
