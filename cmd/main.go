package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"getdriver.dev/cli/internal/interfaces/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	container, err := cli.NewContainer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize application: %v\n", err)
		os.Exit(1)
	}

	cli.Execute(ctx, container)
}
