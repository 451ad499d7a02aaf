package forest_test

import (
	"testing"

	"github.com/katalvlaran/simlab/forest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewForecast_Errors rejects empty and unordered forecasts.
func TestNewForecast_Errors(t *testing.T) {
	_, err := forest.NewForecast(nil)
	assert.ErrorIs(t, err, forest.ErrEmptyForecast)

	_, err = forest.NewForecast([]forest.Entry{{Day: 0, Weather: forest.North}, {Day: 0, Weather: forest.Rain}})
	assert.ErrorIs(t, err, forest.ErrUnorderedForecast)

	_, err = forest.NewForecast([]forest.Entry{{Day: 4, Weather: forest.North}, {Day: 2, Weather: forest.Rain}})
	assert.ErrorIs(t, err, forest.ErrUnorderedForecast)
}

// TestForecast_Resolve checks forward-fill across gaps and past the end.
func TestForecast_Resolve(t *testing.T) {
	fc, err := forest.NewForecast([]forest.Entry{
		{Day: 0, Weather: forest.North},
		{Day: 3, Weather: forest.Rain},
		{Day: 5, Weather: forest.East},
	})
	require.NoError(t, err)

	cases := []struct {
		day  int
		want forest.Conditions
	}{
		{0, forest.Conditions{Weather: forest.North, Changed: true}},
		{1, forest.Conditions{Weather: forest.North}},
		{2, forest.Conditions{Weather: forest.North}},
		{3, forest.Conditions{Weather: forest.Rain, Changed: true}},
		{4, forest.Conditions{Weather: forest.Rain}},
		{5, forest.Conditions{Weather: forest.East, Changed: true}},
		{6, forest.Conditions{Weather: forest.East}},
		{100, forest.Conditions{Weather: forest.East}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, fc.Resolve(tc.day), "day %d", tc.day)
	}
}

// TestForecast_ResolveBeforeFirst backfills days that precede every entry.
func TestForecast_ResolveBeforeFirst(t *testing.T) {
	fc, err := forest.NewForecast([]forest.Entry{{Day: 2, Weather: forest.South}})
	require.NoError(t, err)

	assert.Equal(t, forest.Conditions{Weather: forest.South}, fc.Resolve(0))
	assert.Equal(t, forest.Conditions{Weather: forest.South, Changed: true}, fc.Resolve(2))
}

// TestForecast_EntriesCopy ensures callers cannot mutate the forecast.
func TestForecast_EntriesCopy(t *testing.T) {
	in := []forest.Entry{{Day: 0, Weather: forest.West}}
	fc, err := forest.NewForecast(in)
	require.NoError(t, err)

	in[0].Weather = forest.Rain
	got := fc.Entries()
	got[0].Day = 9
	assert.Equal(t, []forest.Entry{{Day: 0, Weather: forest.West}}, fc.Entries())
}
