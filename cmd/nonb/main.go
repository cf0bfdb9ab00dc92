// nonb scans nucleotide sequences for non-B DNA motifs: repeat
// families, quadruplexes, inverted repeats, and friends.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"nonb/cmd/nonb/cmd"
	"nonb/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		switch {
		case errors.Is(err, context.Canceled):
			os.Exit(130)
		case cli.IsUsage(err):
			os.Exit(2)
		}
		os.Exit(1)
	}
}
