// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// buffered-iterator is a command-line tool for reading streams of
// length-prefixed binary records.
//
// Each record is one length byte L followed by L payload bytes. Records are
// read with a parser that reuses one buffer for as long as no earlier record
// is still referenced.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/buffered-iterator/cmd/buffered-iterator@latest
//
// # Usage
//
//	buffered-iterator [COMMAND] [FLAGS]
//
// # Commands
//
//	demo      Parse the built-in stream [1 5 0 4 3 4 5 6] (default)
//	parse     Print the records of FILE, or of stdin when FILE is "-"
//	generate  Write random record files for benchmarking
//	bench     Compare the allocating and buffered parsers
//
// # Global Flags
//
//	-c, --config      Config file (.json, .yaml, .yml); defaults to $BUFITER_CONFIG_FILE
//	    --log-format  text or json
//
// # Examples
//
// Print the demo records:
//
//	buffered-iterator
//
// Dump a file as hex and export parser statistics:
//
//	buffered-iterator parse -f hex --metrics-file parser.prom records.bin
//
// Benchmark on 1 MiB and 1 GiB fixtures:
//
//	buffered-iterator bench --sizes 1MiB,1GiB -n 3
package main
