package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/arthur-debert/dotlink/cmd/dotlink"
	"github.com/arthur-debert/dotlink/pkg/output"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := dotlink.NewRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		color := output.DetectFormat(os.Stderr) == output.FormatTerminal
		styles := output.NewStyles(os.Stderr, color)
		fmt.Fprintln(os.Stderr, styles.Paint(styles.Error, fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
