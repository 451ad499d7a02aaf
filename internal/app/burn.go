package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/katalvlaran/simlab/forest"
	"github.com/katalvlaran/simlab/input"
	"github.com/katalvlaran/simlab/internal/ctxlog"
	"github.com/katalvlaran/simlab/report"
)

// RunBurn loads the forest and forecast, simulates until the fire is out
// and renders every day plus the closing summary to out. It returns the
// last simulated day.
func RunBurn(ctx context.Context, out io.Writer, forestPath, forecastPath string) (int, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Burn run started.", "forest", forestPath, "forecast", forecastPath)

	f, err := input.LoadForest(forestPath)
	if err != nil {
		return 0, err
	}
	fc, err := input.LoadForecast(forecastPath)
	if err != nil {
		return 0, err
	}
	logger.Debug("Inputs loaded.", "width", f.Width, "height", f.Height,
		"burn_duration", f.BurnDuration, "forecast_entries", len(fc.Entries()))

	trees := f.Count(forest.Tree)
	days, err := forest.Simulate(f, fc, func(d forest.Day) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if logger.Enabled(ctx, slog.LevelDebug) {
			logger.Debug("Day simulated.", "day", d.Number, "weather", d.Weather.String(),
				"burning", d.Forest.Count(forest.Fire), "fronts", len(d.Forest.Fronts()))
		}
		return report.Day(out, d)
	})
	if err != nil {
		return days, err
	}
	if err := report.BurnedOut(out, days); err != nil {
		return days, err
	}

	logger.Info("Fire burned out.", "days", days,
		"trees_lost", trees-f.Count(forest.Tree), "burnt", f.Count(forest.Burnt))
	return days, nil
}
