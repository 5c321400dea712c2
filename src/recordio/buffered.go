// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package recordio

import (
	"errors"
	"io"
	"iter"

	"github.com/H0llyW00dzZ/buffered-iterator/src/internal/helper/gc"
)

// BufferedParser reads records into a reused buffer and returns views into it.
//
// The buffer is overwritten in place only when every view from the previous
// record has been released. If a view is still alive, the parser starts a new
// buffer epoch and leaves the old one to the views that reference it.
//
// A BufferedParser is not safe for concurrent use. Views may be read and
// released from any goroutine.
type BufferedParser struct {
	src    Source
	pool   gc.Pool
	cur    *epoch
	epochs uint64
	err    error
	stats  Stats
}

// NewBufferedParser returns a parser reading from src. Buffers come from
// the package-wide pool.
func NewBufferedParser(src Source) *BufferedParser {
	return newBufferedParser(src, gc.Default)
}

func newBufferedParser(src Source, pool gc.Pool) *BufferedParser {
	return &BufferedParser{src: src, pool: pool}
}

// Next returns a view of the next record, io.EOF once the stream is
// exhausted, or the fatal error that ended the stream. Errors are sticky.
//
// The caller owns the returned view and must Release it.
func (p *BufferedParser) Next() (*View, error) {
	off, n, err := p.advance()
	if err != nil {
		return nil, err
	}
	return newView(p.cur, off, n), nil
}

// advance reads the next record into the current epoch and returns the
// payload bounds within it.
func (p *BufferedParser) advance() (off, n int, err error) {
	if p.err != nil {
		return 0, 0, p.err
	}

	reused := p.prepare()

	n, err = readLength(p.src, p.cur.region(HeaderSize))
	if err != nil {
		p.err = err
		return 0, 0, err
	}

	buf := p.cur.region(HeaderSize + n)
	if err := readPayload(p.src, buf[HeaderSize:]); err != nil {
		p.err = err
		return 0, 0, err
	}

	if reused {
		p.stats.Reuses++
	}
	p.stats.Records++
	p.stats.Bytes += uint64(n)
	p.stats.Capacity = p.cur.buf.Cap()
	return HeaderSize, n, nil
}

// prepare makes sure the current epoch can be written in place. It reports
// whether the existing buffer is being reused.
func (p *BufferedParser) prepare() bool {
	switch {
	case p.cur == nil:
	case p.cur.shared():
		p.cur.release()
	default:
		return true
	}

	p.epochs++
	p.cur = newEpoch(p.epochs, p.pool)
	p.stats.Allocations++
	return false
}

// All ranges over the remaining records. Each view is released when the loop
// body returns; Clone it to keep it longer. A fatal error is yielded once and
// ends the sequence; io.EOF ends it silently.
func (p *BufferedParser) All() iter.Seq2[*View, error] {
	return func(yield func(*View, error) bool) {
		for {
			v, err := p.Next()
			if err != nil {
				if !errors.Is(err, io.EOF) {
					yield(nil, err)
				}
				return
			}
			more := yield(v, nil)
			v.Release()
			if !more {
				return
			}
		}
	}
}

// Payloads ranges over the remaining payloads without allocating. Each slice
// is only valid inside the loop body.
func (p *BufferedParser) Payloads() iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		for {
			off, n, err := p.advance()
			if err != nil {
				if !errors.Is(err, io.EOF) {
					yield(nil, err)
				}
				return
			}
			ep := p.cur
			ep.acquire()
			more := yield(ep.bytes()[off:off+n:off+n], nil)
			ep.release()
			if !more {
				return
			}
		}
	}
}

// Outstanding returns the number of live views into the current buffer.
func (p *BufferedParser) Outstanding() int {
	if p.cur == nil {
		return 0
	}
	return int(p.cur.outstanding())
}

// Stats returns a snapshot of the parser's counters.
func (p *BufferedParser) Stats() Stats { return p.stats }

// Close releases the parser's hold on its buffer. Views that are still alive
// stay readable; the buffer goes back to the pool when the last one is
// released. Next returns ErrClosed afterwards.
func (p *BufferedParser) Close() error {
	if p.cur != nil {
		p.cur.release()
		p.cur = nil
	}
	p.err = ErrClosed
	return nil
}
