// Package main provides the CLI entrypoint for gender-swap.
//
// gender-swap resolves gender-conditional markup in LARP character sheets:
//   - Loads a gender list assigning each numbered character a gender
//   - Replaces "[N: she/he]" tokens with the alternative for that gender
//   - Optionally genders file names such as "3.Alice.Bob.txt"
//   - Reports likely authoring mistakes without stopping
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := newApp(os.Stdout, os.Stderr).rootCmd().ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}
