package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"expenses/internal/cli"
)

func main() {
	// Graceful shutdown handling
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
