package input

import (
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/simlab/nw"
)

// AlignConfig is the loaded alignment configuration.
type AlignConfig struct {
	FirstSong  string
	SecondSong string
	Scoring    nw.Scoring
	Threshold  int // percent, 0..100
}

// alignKeys documents the six lines in file order. Keys are informative
// only; values are taken by position.
var alignKeys = [...]string{"first song", "second song", "match score", "mismatch score", "gap score", "threshold"}

// Validate checks the threshold range.
func (c AlignConfig) Validate(path string) error {
	if c.Threshold < 0 || c.Threshold > 100 {
		return formatErr(path, 0, nil, "threshold %d outside 0..100", c.Threshold)
	}
	if c.FirstSong == "" || c.SecondSong == "" {
		return formatErr(path, 0, nil, "both song paths are required")
	}
	return nil
}

// ReadAlignConfig parses six key=value lines: first song path, second
// song path, match, mismatch, gap and threshold. The value is everything
// after the first '=' with surrounding blanks trimmed.
func ReadAlignConfig(r io.Reader, path string) (AlignConfig, error) {
	lr := newLineReader(r, path)
	var vals [len(alignKeys)]string
	for i, what := range alignKeys {
		line, err := lr.require(what)
		if err != nil {
			return AlignConfig{}, err
		}
		_, v, ok := strings.Cut(line, "=")
		if !ok {
			return AlignConfig{}, formatErr(path, lr.n, nil, "%s: expected key=value, got %q", what, line)
		}
		vals[i] = strings.TrimSpace(v)
	}

	var nums [4]int
	for i := range nums {
		n, err := strconv.Atoi(vals[i+2])
		if err != nil {
			return AlignConfig{}, formatErr(path, i+3, err, "%s is not an integer", alignKeys[i+2])
		}
		nums[i] = n
	}

	cfg := AlignConfig{
		FirstSong:  vals[0],
		SecondSong: vals[1],
		Scoring:    nw.Scoring{Match: nums[0], Mismatch: nums[1], Gap: nums[2]},
		Threshold:  nums[3],
	}
	if err := cfg.Validate(path); err != nil {
		return AlignConfig{}, err
	}
	return cfg, nil
}

// LoadAlignConfig opens path and calls ReadAlignConfig.
func LoadAlignConfig(path string) (AlignConfig, error) {
	f, err := openFile(path)
	if err != nil {
		return AlignConfig{}, err
	}
	defer f.Close()

	return ReadAlignConfig(f, path)
}
