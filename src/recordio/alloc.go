// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package recordio

import (
	"errors"
	"io"
	"iter"
)

// AllocatingParser returns every payload in a new slice owned by the caller.
// Nothing is shared between records.
type AllocatingParser struct {
	src   Source
	hdr   [HeaderSize]byte
	err   error
	stats Stats
}

func NewAllocatingParser(src Source) *AllocatingParser {
	return &AllocatingParser{src: src}
}

// Next returns the next payload, io.EOF once the stream is exhausted, or the
// fatal error that ended the stream. Errors are sticky.
func (p *AllocatingParser) Next() ([]byte, error) {
	if p.err != nil {
		return nil, p.err
	}

	n, err := readLength(p.src, p.hdr[:])
	if err != nil {
		p.err = err
		return nil, err
	}

	payload := make([]byte, n)
	p.stats.Allocations++
	if err := readPayload(p.src, payload); err != nil {
		p.err = err
		return nil, err
	}

	p.stats.Records++
	p.stats.Bytes += uint64(n)
	return payload, nil
}

// All ranges over the remaining payloads. A fatal error is yielded once and
// ends the sequence; io.EOF ends it silently.
func (p *AllocatingParser) All() iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		for {
			payload, err := p.Next()
			if err != nil {
				if !errors.Is(err, io.EOF) {
					yield(nil, err)
				}
				return
			}
			if !yield(payload, nil) {
				return
			}
		}
	}
}

// Stats returns a snapshot of the parser's counters.
func (p *AllocatingParser) Stats() Stats { return p.stats }
