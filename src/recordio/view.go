// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package recordio

import (
	"bytes"
	"fmt"
	"sync/atomic"
)

// View is a read-only window onto one record's payload inside a parser
// buffer. It holds a reference on that buffer until released.
//
// A View must not be copied by value; pass the pointer around and use Clone
// for an independently releasable handle.
type View struct {
	ep       *epoch
	off, n   int
	released atomic.Bool
}

func newView(ep *epoch, off, n int) *View {
	ep.acquire()
	return &View{ep: ep, off: off, n: n}
}

// Bytes returns the payload. The slice shares the parser's buffer: it stays
// valid until the view is released and must not be modified.
func (v *View) Bytes() []byte {
	v.mustBeLive()
	return v.ep.bytes()[v.off : v.off+v.n : v.off+v.n]
}

// Len returns the payload length.
func (v *View) Len() int { return v.n }

// Epoch identifies the buffer generation the view points into.
func (v *View) Epoch() uint64 { return v.ep.id }

// Equal reports whether the payload equals b.
func (v *View) Equal(b []byte) bool { return bytes.Equal(v.Bytes(), b) }

// Copy returns the payload in a new slice owned by the caller.
func (v *View) Copy() []byte { return bytes.Clone(v.Bytes()) }

// String formats the payload like a byte slice, e.g. "[3 4 5 6]".
func (v *View) String() string {
	if v.released.Load() {
		return "<released>"
	}
	return fmt.Sprint(v.Bytes())
}

// Clone returns a second handle on the same bytes. Each handle is released
// separately.
func (v *View) Clone() *View {
	v.mustBeLive()
	return newView(v.ep, v.off, v.n)
}

// Release drops the view's reference on its buffer. Calling Release more than
// once has no further effect.
func (v *View) Release() {
	if v.released.CompareAndSwap(false, true) {
		v.ep.release()
	}
}

func (v *View) mustBeLive() {
	if v.released.Load() {
		panic(ErrViewReleased)
	}
}
