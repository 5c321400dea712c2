// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package recordio

import (
	"fmt"
	"io"
)

const (
	// MaxPayloadLen is the largest payload a single length byte can describe.
	MaxPayloadLen = 255
	// HeaderSize is the size of the length prefix.
	HeaderSize = 1
)

// Size returns the number of bytes payload occupies on the wire.
func Size(payload []byte) int { return HeaderSize + len(payload) }

// Append appends the framed payload to dst.
func Append(dst, payload []byte) ([]byte, error) {
	if len(payload) > MaxPayloadLen {
		return dst, fmt.Errorf("%w: %d", ErrPayloadTooLarge, len(payload))
	}
	dst = append(dst, byte(len(payload)))
	return append(dst, payload...), nil
}

// Writer frames payloads onto an io.Writer.
type Writer struct {
	w      io.Writer
	header [HeaderSize]byte
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write writes a single record and returns the number of bytes written,
// including the length byte.
func (w *Writer) Write(payload []byte) (int, error) {
	if len(payload) > MaxPayloadLen {
		return 0, fmt.Errorf("%w: %d", ErrPayloadTooLarge, len(payload))
	}

	w.header[0] = byte(len(payload))
	n, err := w.w.Write(w.header[:])
	if err != nil {
		return n, fmt.Errorf("error writing length: %w", err)
	}

	m, err := w.w.Write(payload)
	if err != nil {
		return n + m, fmt.Errorf("error writing payload: %w", err)
	}

	return n + m, nil
}
