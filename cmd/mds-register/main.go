// File: cmd/mds-register/main.go
// Author: Andrei Batyrov <arbatyrov@edu.hse.ru>

// Package main includes the main function for running mds-register as
// an executable.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	// Create context that will cancel when a SIGINT signal is received.
	ctx, cancel := context.WithCancel(context.Background())
	interruptSignalChannel := make(chan os.Signal, 1)
	signal.Notify(interruptSignalChannel, os.Interrupt)
	defer func() {
		signal.Stop(interruptSignalChannel)
		cancel()
	}()
	go func() {
		select {
		case <-interruptSignalChannel:
			cancel()
		case <-ctx.Done():
		}
	}()

	if err := Execute(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "mds-register:", err)
		os.Exit(1)
	}
}
