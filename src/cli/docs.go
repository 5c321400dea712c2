// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for buffered-iterator.
// It implements a Cobra-based CLI with a demo, a record file parser with text,
// hex, JSON and markdown table output, a fixture generator and a benchmark
// comparing the allocating and buffered parsers. Settings come from flags,
// then from a JSON or YAML config file, then from built-in defaults.
package cli
