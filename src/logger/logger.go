// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/H0llyW00dzZ/buffered-iterator/src/internal/helper/gc"
)

// Logger defines the interface for logging operations.
// It provides methods for formatted output and output redirection.
//
// This interface supports both human-readable and structured output,
// selected on the command line with --log-format.
type Logger interface {
	// Printf formats and prints a log message.
	Printf(format string, v ...any)
	// Println prints a log message with a newline.
	Println(v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// Log formats accepted by [New].
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrUnknownFormat is returned by [New] for an unsupported format name.
var ErrUnknownFormat = errors.New("unknown log format")

// New returns the logger for the named format writing to w.
// A nil w selects the logger's default destination.
func New(format string, w io.Writer) (Logger, error) {
	switch format {
	case FormatText, "":
		l := NewCLILogger()
		if w != nil {
			l.SetOutput(w)
		}
		return l, nil
	case FormatJSON:
		if w == nil {
			w = os.Stderr
		}
		return NewJSONLogger(w, false), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// CLILogger implements Logger using the standard log package.
// It's designed for command-line interface output with human-readable formatting.
type CLILogger struct{ logger *log.Logger }

// NewCLILogger creates a new CLI logger with timestamps disabled.
// This is suitable for user-facing CLI output.
func NewCLILogger() *CLILogger {
	l := log.New(os.Stderr, "", 0)
	return &CLILogger{logger: l}
}

// Printf formats and prints a log message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) { c.logger.Printf(format, v...) }

// Println prints a log message with a newline.
func (c *CLILogger) Println(v ...any) { c.logger.Println(v...) }

// SetOutput sets the output destination for the CLI logger.
func (c *CLILogger) SetOutput(w io.Writer) { c.logger.SetOutput(w) }

// JSONLogger implements Logger by writing one JSON object per line,
// for consumption by log collectors.
//
// Each line is assembled in a pooled buffer and written with a single
// Write call, so concurrent lines never interleave.
//
// JSONLogger is safe for concurrent use by multiple goroutines.
type JSONLogger struct {
	mu     sync.Mutex
	writer io.Writer
	silent bool
	pool   gc.Pool
}

// NewJSONLogger creates a new JSON logger.
// A nil writer discards output. With silent set, nothing is written at all.
func NewJSONLogger(writer io.Writer, silent bool) *JSONLogger {
	if writer == nil {
		writer = io.Discard
	}
	return &JSONLogger{
		writer: writer,
		silent: silent,
		pool:   gc.Default,
	}
}

// Printf formats and logs a structured message in JSON format.
// Output is suppressed if silent mode is enabled.
func (j *JSONLogger) Printf(format string, v ...any) {
	if j.silent {
		return
	}
	j.write(fmt.Sprintf(format, v...))
}

// Println logs a structured message in JSON format.
// Output is suppressed if silent mode is enabled.
func (j *JSONLogger) Println(v ...any) {
	if j.silent {
		return
	}
	j.write(fmt.Sprint(v...))
}

// SetOutput sets the output destination for the JSON logger.
// A nil writer discards output.
//
// SetOutput is safe for concurrent use by multiple goroutines.
func (j *JSONLogger) SetOutput(w io.Writer) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if w == nil {
		j.writer = io.Discard
	} else {
		j.writer = w
	}
}

func (j *JSONLogger) write(msg string) {
	// A string always marshals.
	quoted, _ := json.Marshal(msg)

	buf := j.pool.Get()
	defer func() {
		buf.Reset()
		j.pool.Put(buf)
	}()

	buf.WriteString(`{"level":"info","message":`)
	buf.Write(quoted)
	buf.WriteString("}\n")

	j.mu.Lock()
	buf.WriteTo(j.writer)
	j.mu.Unlock()
}
