// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package recordio_test

import (
	"bytes"
	"fmt"
	"io"

	"github.com/H0llyW00dzZ/buffered-iterator/src/recordio"
)

func ExampleBufferedParser() {
	stream := []byte{1, 5, 0, 4, 3, 4, 5, 6}

	p := recordio.NewBufferedParser(recordio.NewReaderSource(bytes.NewReader(stream)))
	defer p.Close()

	for v, err := range p.All() {
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("slice: %v\n", v)
	}

	// Output:
	// slice: [5]
	// slice: []
	// slice: [3 4 5 6]
}

func ExampleBufferedParser_Next() {
	p := recordio.NewBufferedParser(recordio.NewReaderSource(bytes.NewReader([]byte{1, 5, 1, 6})))
	defer p.Close()

	first, _ := p.Next()
	second, _ := p.Next() // first is still alive, so this lands in a new buffer
	_, err := p.Next()

	fmt.Println(first, second, err == io.EOF)
	first.Release()
	second.Release()

	// Output:
	// [5] [6] true
}

func ExampleWriter() {
	var buf bytes.Buffer
	w := recordio.NewWriter(&buf)

	for _, payload := range [][]byte{[]byte("hi"), nil, []byte("there")} {
		if _, err := w.Write(payload); err != nil {
			fmt.Println("error:", err)
			return
		}
	}

	fmt.Println(buf.Bytes())

	// Output:
	// [2 104 105 0 5 116 104 101 114 101]
}
