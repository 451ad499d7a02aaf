package input_test

import (
	"path/filepath"
	"testing"

	"github.com/katalvlaran/simlab/input"
	"github.com/katalvlaran/simlab/nw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadRunConfig decodes both blocks and expands config_dir.
func TestLoadRunConfig(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "run.hcl", `
alignment {
  first_song  = "${config_dir}/song1.txt"
  second_song = "song2.txt"
  match       = 2
  mismatch    = -1
  gap         = -3
  threshold   = 60
}

burn {
  forest   = "${config_dir}/forest.txt"
  forecast = "${config_dir}/forecast.txt"
}
`)
	cfg, err := input.LoadRunConfig(p)
	require.NoError(t, err)

	require.NotNil(t, cfg.Align)
	assert.Equal(t, input.AlignConfig{
		FirstSong:  filepath.Join(dir, "song1.txt"),
		SecondSong: "song2.txt",
		Scoring:    nw.Scoring{Match: 2, Mismatch: -1, Gap: -3},
		Threshold:  60,
	}, cfg.Align.AlignConfig())

	require.NotNil(t, cfg.Burn)
	assert.Equal(t, filepath.Join(dir, "forest.txt"), cfg.Burn.Forest)
	assert.Equal(t, filepath.Join(dir, "forecast.txt"), cfg.Burn.Forecast)
}

// TestLoadRunConfig_OptionalBlocks allows a file with only one block.
func TestLoadRunConfig_OptionalBlocks(t *testing.T) {
	p := writeFile(t, t.TempDir(), "burn.hcl", `burn {
  forest   = "f.txt"
  forecast = "w.txt"
}
`)
	cfg, err := input.LoadRunConfig(p)
	require.NoError(t, err)
	assert.Nil(t, cfg.Align)
	require.NotNil(t, cfg.Burn)
}

// TestLoadRunConfig_Errors maps HCL diagnostics to FormatErrors.
func TestLoadRunConfig_Errors(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		hasLine bool
	}{
		{"Syntax", "alignment {\n  match = \n", true},
		{"MissingAttr", "alignment {\n  first_song = \"a\"\n}\n", true},
		{"WrongType", "burn {\n  forest = \"f\"\n  forecast = [1]\n}\n", true},
		{"Threshold", "alignment {\n first_song = \"a\"\n second_song = \"b\"\n match = 1\n mismatch = 1\n gap = 1\n threshold = -5\n}\n", false},
		{"UnknownBlock", "wind {\n}\n", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := writeFile(t, t.TempDir(), "bad.hcl", tc.src)
			_, err := input.LoadRunConfig(p)
			require.ErrorIs(t, err, input.ErrInputFormat)
			var fe *input.FormatError
			require.ErrorAs(t, err, &fe)
			if tc.hasLine {
				assert.Positive(t, fe.Line, "diagnostic line should be carried over")
			} else {
				assert.Zero(t, fe.Line)
			}
		})
	}
}
