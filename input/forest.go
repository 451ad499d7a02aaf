package input

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/simlab/forest"
)

// ReadForest parses a forest file into a ready-to-run *forest.Forest.
//
//	line 1:  <label>:<burn duration in days>
//	line 2+: comma-separated cells, one character each: T, F, B or ' '
//
// Empty lines are ignored; a line holding a single space is a one-cell row.
func ReadForest(r io.Reader, path string) (*forest.Forest, error) {
	lr := newLineReader(r, path)
	header, err := lr.require("burn duration")
	if err != nil {
		return nil, err
	}
	_, v, ok := strings.Cut(header, ":")
	if !ok {
		return nil, formatErr(path, 1, nil, "expected label:days, got %q", header)
	}
	burn, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return nil, formatErr(path, 1, err, "burn duration is not an integer")
	}

	var rows [][]forest.State
	for {
		line, ok, err := lr.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if line == "" {
			continue
		}
		row, err := parseForestRow(line)
		if err != nil {
			return nil, formatErr(path, lr.n, err, "bad grid row %q", line)
		}
		rows = append(rows, row)
	}

	f, err := forest.New(rows, burn)
	if err != nil {
		return nil, formatErr(path, 0, err, "invalid forest")
	}
	return f, nil
}

// parseForestRow splits a comma-separated row of single-character cells.
func parseForestRow(line string) ([]forest.State, error) {
	fields := strings.Split(line, ",")
	row := make([]forest.State, 0, len(fields))
	for i, fld := range fields {
		if utf8.RuneCountInString(fld) != 1 {
			return nil, fmt.Errorf("cell %d must be exactly one character", i+1)
		}
		r, _ := utf8.DecodeRuneInString(fld)
		s, err := forest.ParseState(r)
		if err != nil {
			return nil, err
		}
		row = append(row, s)
	}
	return row, nil
}

// LoadForest opens path and calls ReadForest.
func LoadForest(path string) (*forest.Forest, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadForest(f, path)
}
