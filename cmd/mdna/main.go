// Command mdna aligns the notes of two songs with Needleman-Wunsch and
// reports whether their similarity reaches the infringement threshold.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/simlab/internal/app"
	"github.com/katalvlaran/simlab/internal/cli"
	"github.com/katalvlaran/simlab/internal/ctxlog"
)

func main() {
	// Use a minimal logger until the flags are parsed.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.CodeFailure)
	}
}

// run parses args, loads the configuration and writes the report to outW.
// Logs go to logW.
func run(outW, logW io.Writer, args []string) error {
	parsed, shouldExit, err := cli.ParseAlign(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := ctxlog.New(parsed.Level, parsed.Format, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	cfg, err := app.LoadAlignConfig(parsed.ConfigPath)
	if err != nil {
		return err
	}
	_, err = app.RunAlign(ctx, outW, cfg)
	return err
}
