package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	appcenterdevices "github.com/arthur-debert/appcenter-devices/cmd/appcenter-devices"
	"github.com/pterm/pterm"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := appcenterdevices.NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, pterm.Red(fmt.Sprintf("Error: %v", err)))
		stop()
		os.Exit(1)
	}
}
