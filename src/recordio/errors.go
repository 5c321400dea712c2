// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package recordio

import "errors"

var (
	// ErrTruncatedRecord is returned when a length byte was read but the
	// stream ended before the full payload was available.
	ErrTruncatedRecord = errors.New("truncated record")

	// ErrIO wraps transport errors reported by the byte source.
	ErrIO = errors.New("i/o failure")

	// ErrPayloadTooLarge is returned when writing a payload longer than MaxPayloadLen.
	ErrPayloadTooLarge = errors.New("payload exceeds 255 bytes")

	// ErrClosed is returned by Next after the parser has been closed.
	ErrClosed = errors.New("parser closed")

	// ErrViewReleased is the panic value for reads of a released View.
	ErrViewReleased = errors.New("view used after release")

	// ErrReuseInvariantViolation is the panic value raised when a buffer epoch
	// would be written or reclaimed while views into it are still alive.
	// Reaching it is a bug in this package, never a stream condition.
	ErrReuseInvariantViolation = errors.New("buffer reuse invariant violated")
)
