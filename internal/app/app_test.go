package app_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simlab/input"
	"github.com/katalvlaran/simlab/internal/app"
	"github.com/katalvlaran/simlab/internal/ctxlog"
	"github.com/katalvlaran/simlab/nw"
)

// writeFile creates name under dir and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// testContext attaches a debug logger writing to logs.
func testContext(logs *bytes.Buffer) context.Context {
	return ctxlog.WithLogger(context.Background(), ctxlog.New("debug", "text", logs))
}

const wantAlign = "Alignment Matrix\n" +
	"       -    A    C    G    A \n" +
	"  -    0   -2   -4   -6   -8 \n" +
	"  A   -2    1   -1   -3   -5 \n" +
	"  C   -4   -1    2    0   -2 \n" +
	"  G   -6   -3    0    3    1 \n" +
	"  T   -8   -5   -2    1    2 \n" +
	"\n" +
	"0001 Twinkle                  :ACGT\n" +
	"0002 Star                     :ACGA\n" +
	"\n" +
	"The similarity between the two songs was 75% and is not below the similarity threshold of 70%. Thus, copyright infringement has occurred.\n"

func TestRunAlign(t *testing.T) {
	dir := t.TempDir()
	cfg := input.AlignConfig{
		FirstSong:  writeFile(t, dir, "a.txt", "#Twinkle|0001\nACGT\n"),
		SecondSong: writeFile(t, dir, "b.txt", "#Star|0002\nACGA\n"),
		Scoring:    nw.Scoring{Match: 1, Mismatch: -1, Gap: -2},
		Threshold:  70,
	}

	var out, logs bytes.Buffer
	rep, err := app.RunAlign(testContext(&logs), &out, cfg)
	require.NoError(t, err)

	assert.Equal(t, wantAlign, out.String())
	assert.Equal(t, 75, rep.Result.Similarity)
	assert.Equal(t, 2, rep.Result.Score)
	assert.True(t, rep.Infringed)
	assert.Equal(t, "Twinkle", rep.First.Name)
	assert.Equal(t, "0002", rep.Second.ID)
	assert.Contains(t, logs.String(), "Alignment finished.")
	assert.NotContains(t, out.String(), "level=")
}

func TestRunAlign_BelowThreshold(t *testing.T) {
	dir := t.TempDir()
	cfg := input.AlignConfig{
		FirstSong:  writeFile(t, dir, "a.txt", "#One|1\nAAAA\n"),
		SecondSong: writeFile(t, dir, "b.txt", "#Two|2\nCCCC\n"),
		Scoring:    nw.DefaultScoring(),
		Threshold:  50,
	}

	var out bytes.Buffer
	rep, err := app.RunAlign(context.Background(), &out, cfg)
	require.NoError(t, err)
	assert.False(t, rep.Infringed)
	assert.Equal(t, 0, rep.Result.Similarity)
	assert.Contains(t, out.String(), "Thus, no copyright infringement has occurred.\n")
}

func TestRunAlign_MissingSong(t *testing.T) {
	dir := t.TempDir()
	cfg := input.AlignConfig{
		FirstSong:  writeFile(t, dir, "a.txt", "#One|1\nAAAA\n"),
		SecondSong: filepath.Join(dir, "missing.txt"),
		Scoring:    nw.DefaultScoring(),
		Threshold:  50,
	}

	var out bytes.Buffer
	_, err := app.RunAlign(context.Background(), &out, cfg)
	require.ErrorIs(t, err, input.ErrInputFormat)
	assert.Zero(t, out.Len(), "nothing is rendered before both songs load")
}

func TestRunAlign_Cancelled(t *testing.T) {
	dir := t.TempDir()
	cfg := input.AlignConfig{
		FirstSong:  writeFile(t, dir, "a.txt", "#One|1\nAC\n"),
		SecondSong: writeFile(t, dir, "b.txt", "#Two|2\nAC\n"),
		Scoring:    nw.DefaultScoring(),
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := app.RunAlign(ctx, &bytes.Buffer{}, cfg)
	assert.ErrorIs(t, err, context.Canceled)
}

const wantBurn = "The wind is now blowing N\n" +
	"Current day: 0\n" +
	"T T T \n" +
	"T F T \n" +
	"T T T \n" +
	"\n" +
	"Current day: 1\n" +
	"F F F \n" +
	"T B T \n" +
	"T T T \n" +
	"\n" +
	"Current day: 2\n" +
	"B B B \n" +
	"T B T \n" +
	"T T T \n" +
	"\n" +
	"The forest fire took 2 days to burn out.\n" +
	"Remember-Only YOU Can Prevent Forest Fires!\n" +
	"-Smokey Bear\n"

func TestRunBurn(t *testing.T) {
	dir := t.TempDir()
	forestPath := writeFile(t, dir, "forest.txt", "Burn days:1\nT,T,T\nT,F,T\nT,T,T\n")
	forecastPath := writeFile(t, dir, "forecast.txt", "Day 0:N\n")

	var out, logs bytes.Buffer
	days, err := app.RunBurn(testContext(&logs), &out, forestPath, forecastPath)
	require.NoError(t, err)

	assert.Equal(t, 2, days)
	assert.Equal(t, wantBurn, out.String())
	assert.Contains(t, logs.String(), "Day simulated.")
	assert.Contains(t, logs.String(), "trees_lost=3")
}

func TestRunBurn_BadInputs(t *testing.T) {
	dir := t.TempDir()
	goodForest := writeFile(t, dir, "forest.txt", "Burn days:1\nF\n")
	goodForecast := writeFile(t, dir, "forecast.txt", "Day 0:R\n")
	badForest := writeFile(t, dir, "bad_forest.txt", "Burn days:1\nF,Q\n")
	badForecast := writeFile(t, dir, "bad_forecast.txt", "Day 0:Z\n")

	cases := []struct {
		name             string
		forest, forecast string
	}{
		{"Forest", badForest, goodForecast},
		{"Forecast", goodForest, badForecast},
		{"MissingForest", filepath.Join(dir, "nope.txt"), goodForecast},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			_, err := app.RunBurn(context.Background(), &out, tc.forest, tc.forecast)
			require.ErrorIs(t, err, input.ErrInputFormat)
			assert.Zero(t, out.Len())
		})
	}
}

func TestRunBurn_Cancelled(t *testing.T) {
	dir := t.TempDir()
	forestPath := writeFile(t, dir, "forest.txt", "Burn days:1\nF\n")
	forecastPath := writeFile(t, dir, "forecast.txt", "Day 0:R\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	_, err := app.RunBurn(ctx, &out, forestPath, forecastPath)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, out.Len())
}
