// main is the entry point of the birthdays CLI.
//
// All command wiring lives in internal/cli; this file only hands
// control over and translates the result into a process exit code.
// Ctrl+C cancels the root context, which stops a running
// `remind --every` loop cleanly.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Mobinshahidi/bday-reminder/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
