// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package recordio

// Stats is a snapshot of a parser's counters.
type Stats struct {
	// Records is the number of records returned.
	Records uint64
	// Bytes is the number of payload bytes returned.
	Bytes uint64
	// Allocations counts backing regions obtained: one per record for the
	// allocating parser, one per buffer epoch for the buffered parser.
	Allocations uint64
	// Reuses counts records read into an existing region in place.
	Reuses uint64
	// Capacity is the capacity of the current region (buffered parser only).
	Capacity int
}
