// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package recordio

// Parser is the pull contract shared by both parsers. T is []byte for
// [AllocatingParser] and *View for [BufferedParser].
type Parser[T any] interface {
	Next() (T, error)
	Stats() Stats
}

var (
	_ Parser[[]byte] = (*AllocatingParser)(nil)
	_ Parser[*View]  = (*BufferedParser)(nil)
)
