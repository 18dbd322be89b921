package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/doeshing/voxsh/internal/infrastructure/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := cli.Options{Verbose: isVerbose()}

	root, err := cli.NewRootCmd(ctx, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	if err := root.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func isVerbose() bool {
	return strings.EqualFold(os.Getenv("VOXSH_DEBUG"), "1") || strings.EqualFold(os.Getenv("VOXSH_DEBUG"), "true")
}
