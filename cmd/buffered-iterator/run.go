// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/H0llyW00dzZ/buffered-iterator/src/cli"
	"github.com/H0llyW00dzZ/buffered-iterator/src/logger"
	verpkg "github.com/H0llyW00dzZ/buffered-iterator/src/version"
)

var version string // set by ldflags or defaults to imported version

func init() {
	if version == "" {
		version = verpkg.Version
	}
}

// Exit codes.
const (
	exitFailure   = 1
	exitInterrupt = 130
)

func main() {
	log := logger.NewCLILogger()
	os.Exit(run(context.Background(), log))
}

// run executes the CLI until it finishes or a signal arrives and returns the
// process exit code.
func run(ctx context.Context, log logger.Logger) int {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan error, 1)
	go func() {
		done <- cli.Execute(ctx, version, log)
	}()

	select {
	case err := <-done:
		if err != nil {
			log.Printf("Error: %v", err)
			return exitFailure
		}
		return 0
	case <-ctx.Done():
		log.Println("Operation cancelled by signal. Exiting...")
		// Commands check the context between records; give them a moment.
		select {
		case <-done:
		case <-time.After(100 * time.Millisecond):
		}
		return exitInterrupt
	}
}
