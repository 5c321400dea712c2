// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package recordio

import (
	"fmt"
	"sync/atomic"

	"github.com/H0llyW00dzZ/buffered-iterator/src/internal/helper/gc"
)

// epoch is one generation of the parser's buffer.
//
// refs is the reuse ledger. The parser holds one reference while the epoch is
// current and every live View holds one more, so refs > 1 means views are
// outstanding. Whoever drops refs to zero hands the region back to the pool.
type epoch struct {
	id   uint64
	refs atomic.Int64
	buf  gc.Buffer
	pool gc.Pool
}

func newEpoch(id uint64, pool gc.Pool) *epoch {
	e := &epoch{id: id, buf: pool.Get(), pool: pool}
	e.refs.Store(1)
	return e
}

// shared reports whether any view into the epoch is alive.
func (e *epoch) shared() bool { return e.refs.Load() > 1 }

// outstanding is the number of live views.
func (e *epoch) outstanding() int64 { return e.refs.Load() - 1 }

// region resizes the buffer to n bytes for writing. The caller must be the
// only holder.
func (e *epoch) region(n int) []byte {
	if refs := e.refs.Load(); refs != 1 {
		panic(fmt.Errorf("%w: write to epoch %d with %d references", ErrReuseInvariantViolation, e.id, refs))
	}
	return e.buf.Resize(n)
}

// bytes returns the committed contents of the buffer.
func (e *epoch) bytes() []byte { return e.buf.Bytes() }

func (e *epoch) acquire() {
	if e.refs.Add(1) <= 1 {
		panic(fmt.Errorf("%w: epoch %d acquired after reclaim", ErrReuseInvariantViolation, e.id))
	}
}

func (e *epoch) release() {
	switch refs := e.refs.Add(-1); {
	case refs == 0:
		e.reclaim()
	case refs < 0:
		panic(fmt.Errorf("%w: epoch %d released %d times too often", ErrReuseInvariantViolation, e.id, -refs))
	}
}

func (e *epoch) reclaim() {
	if refs := e.refs.Load(); refs != 0 {
		panic(fmt.Errorf("%w: reclaim of epoch %d with %d references", ErrReuseInvariantViolation, e.id, refs))
	}
	buf := e.buf
	e.buf = nil
	buf.Reset()
	e.pool.Put(buf)
}
