package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"lookup/internal/cli"
)

func main() {
	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	err := cli.Execute(ctx)
	cancel()

	switch {
	case err == nil:
	case errors.Is(err, cli.ErrCancelled):
		os.Exit(1)
	default:
		fmt.Fprintf(os.Stderr, "lookup: %v\n", err)
		os.Exit(2)
	}
}
