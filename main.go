package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"

	"github.com/ardnew/pml/cli"
	"github.com/ardnew/pml/cli/cmd"
	"github.com/ardnew/pml/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := cli.Run(ctx, os.Exit, os.Args[1:]...)

	stop()

	if err != nil {
		// Rejected orders were already reported on stdout.
		level := log.Error
		if errors.Is(err, cmd.ErrRejected) {
			level = log.Debug
		}

		level("run failed", slog.Any("error", err)) // slog automatically uses LogValue()
		os.Exit(1)
	}
}
