// Command controlburn simulates a forest fire day by day under a weather
// forecast and prints the forest until the fire burns out.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/katalvlaran/simlab/internal/app"
	"github.com/katalvlaran/simlab/internal/cli"
	"github.com/katalvlaran/simlab/internal/ctxlog"
)

func main() {
	// Use a minimal logger until the flags are parsed.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Stdout, os.Stderr, os.Args[1:])
	stop()
	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.CodeFailure)
	}
}

// run parses args, resolves the input paths and writes every simulated day
// to outW. Logs go to logW. A cancelled ctx stops the simulation.
func run(ctx context.Context, outW, logW io.Writer, args []string) error {
	parsed, shouldExit, err := cli.ParseBurn(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := ctxlog.New(parsed.Level, parsed.Format, logW)
	ctx = ctxlog.WithLogger(ctx, logger)

	forestPath, forecastPath := parsed.ForestPath, parsed.ForecastPath
	if parsed.ConfigPath != "" {
		forestPath, forecastPath, err = app.LoadBurnPaths(parsed.ConfigPath)
		if err != nil {
			return err
		}
		logger.Debug("Paths resolved from config.", "config", parsed.ConfigPath)
	}

	_, err = app.RunBurn(ctx, outW, forestPath, forecastPath)
	return err
}
