// Package main is the entry point for the mru history tracker.
package main

import (
	"context"
	"io"
	"os"

	"go.trai.ch/mru/cmd/mru/commands"
	_ "go.trai.ch/mru/internal/wiring"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, commands.GraftComponents))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, provider commands.ComponentProvider) int {
	return commands.Run(ctx, args, stdout, stderr, provider, commands.New)
}
