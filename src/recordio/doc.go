// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package recordio reads and writes streams of length-prefixed records.
//
// Each record on the wire is one length byte L (0-255) followed by exactly L
// payload bytes. There is no header, checksum or separator. A stream ends when
// zero bytes remain at a record boundary; any other truncation is malformed.
//
// Two parsers read the format:
//
//   - [AllocatingParser] returns every payload in a freshly allocated slice that
//     the caller owns.
//   - [BufferedParser] reads every record into one reused buffer and returns a
//     [View] into it. The buffer is only overwritten in place when no view into
//     it is alive; otherwise the parser moves on to a new buffer epoch and the
//     old one is returned to its pool once its last view is released.
//
// Basic usage:
//
//	p := recordio.NewBufferedParser(recordio.NewBufferedSource(file, 64<<10))
//	defer p.Close()
//
//	for v, err := range p.All() {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    process(v.Bytes()) // v is released when the loop body returns
//	}
//
// Views obtained from [BufferedParser.Next] belong to the caller and must be
// released with [View.Release]. Reading a released view panics.
//
// The length prefix is a single byte, so a payload never exceeds
// [MaxPayloadLen] bytes. Larger payloads are rejected by the [Writer].
package recordio
