// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gc

import (
	"io"
	"slices"

	"github.com/valyala/bytebufferpool"
)

// Buffer defines the interface for a reusable byte buffer.
// It abstracts the [bytebufferpool.ByteBuffer] type to avoid direct dependencies.
type Buffer interface {
	Write(p []byte) (int, error)
	WriteString(s string) (int, error)
	WriteByte(c byte) error
	WriteTo(w io.Writer) (int64, error)
	ReadFrom(r io.Reader) (int64, error)
	Bytes() []byte
	String() string
	Len() int
	Reset()

	// Resize sets the length of the buffer to n and returns its contents.
	// Bytes below the old length are preserved. Capacity only ever grows.
	Resize(n int) []byte
	// Cap reports the capacity of the underlying storage.
	Cap() int
}

// Pool defines the interface for buffer pooling.
// It abstracts the [bytebufferpool.Pool] type to avoid direct dependencies.
//
// Pool implementations must be safe for concurrent use by multiple goroutines.
type Pool interface {
	Get() Buffer
	Put(b Buffer)
}

// buffer adds grow-only resizing to [bytebufferpool.ByteBuffer].
type buffer struct{ *bytebufferpool.ByteBuffer }

func (b buffer) Resize(n int) []byte {
	if n > len(b.B) {
		b.B = slices.Grow(b.B, n-len(b.B))
	}
	b.B = b.B[:n]
	return b.B
}

func (b buffer) Cap() int { return cap(b.B) }

// pool wraps [bytebufferpool.Pool] to implement Pool interface.
type pool struct{ p *bytebufferpool.Pool }

// NewPool returns an empty pool with its own size calibration.
func NewPool() Pool { return &pool{p: &bytebufferpool.Pool{}} }

// Get returns a buffer from the pool.
func (p *pool) Get() Buffer { return buffer{p.p.Get()} }

// Put returns a buffer to the pool. Buffers that did not come from a pool
// created by this package are dropped.
func (p *pool) Put(b Buffer) {
	if buf, ok := b.(buffer); ok {
		p.p.Put(buf.ByteBuffer)
	}
}

// Default is the default buffer pool used for efficient memory reuse in I/O operations.
//
// Example usage:
//
//	buf := gc.Default.Get()
//
//	defer func() {
//		buf.Reset()         // Reset the buffer to prevent data leaks
//		gc.Default.Put(buf) // Return the buffer to the pool for reuse
//	}()
//
//	region := buf.Resize(1 + n) // grow-only; earlier bytes are kept
var Default Pool = NewPool()
