// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/H0llyW00dzZ/x509-peer-trust/src/cli"
	"github.com/H0llyW00dzZ/x509-peer-trust/src/logger"
	verpkg "github.com/H0llyW00dzZ/x509-peer-trust/src/version"
)

var version string // set by ldflags or defaults to imported version

func init() {
	if version == "" {
		version = verpkg.Version
	}
}

// Exit codes.
const (
	exitOK        = 0
	exitError     = 1
	exitRejected  = 2
	exitInterrupt = 130
)

// exitCode maps the CLI result to a process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, cli.ErrPeerRejected), errors.Is(err, cli.ErrIdentityMismatch):
		return exitRejected
	default:
		return exitError
	}
}

func main() {
	log := logger.NewCLILogger()
	log.SetOutput(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan error, 1)
	go func() {
		done <- cli.Execute(ctx, version)
	}()

	select {
	case err := <-done:
		if err != nil {
			log.Printf("Error: %v", err)
		}
		stop()
		os.Exit(exitCode(err))
	case <-ctx.Done():
		log.Println("Operation cancelled by signal. Exiting...")
		select {
		case <-done:
		case <-time.After(100 * time.Millisecond):
		}
		os.Exit(exitInterrupt)
	}
}
