// Command paletteatlas packs a TOML paint list into a paint texture.
//
// Usage:
//
//	paletteatlas build paints.toml -o palette.png
//	paletteatlas inspect paints.toml --sampling linear
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gogpu/gg-palette/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, "paletteatlas:", err)
		os.Exit(1)
	}
}
