package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	// Rendering shells out to poppler, so honor Ctrl-C cleanly.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
