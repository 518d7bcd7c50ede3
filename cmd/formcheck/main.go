package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/formcheck/pkg/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := cli.NewRoot().Run(ctx, os.Args)
	stop()

	if err != nil {
		if !errors.Is(err, cli.ErrInvalidInput) {
			fmt.Fprintf(os.Stderr, "formcheck: %v\n", err)
		}
		os.Exit(1)
	}
}
