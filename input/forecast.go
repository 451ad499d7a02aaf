package input

import (
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/simlab/forest"
)

// ReadForecast parses a forecast file, one entry per line:
//
//	<label> <day>:<flag>     e.g. "Day 0:N", flag one of N S E W R
//
// Blank lines are ignored. Days must strictly increase.
func ReadForecast(r io.Reader, path string) (forest.Forecast, error) {
	lr := newLineReader(r, path)
	var entries []forest.Entry
	for {
		line, ok, err := lr.next()
		if err != nil {
			return forest.Forecast{}, err
		}
		if !ok {
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		e, err := parseForecastLine(line)
		if err != nil {
			return forest.Forecast{}, formatErr(path, lr.n, err, "bad forecast line %q", line)
		}
		entries = append(entries, e)
	}

	fc, err := forest.NewForecast(entries)
	if err != nil {
		return forest.Forecast{}, formatErr(path, 0, err, "invalid forecast")
	}
	return fc, nil
}

// parseForecastLine reads "<label> <day>:<flag>".
func parseForecastLine(line string) (forest.Entry, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return forest.Entry{}, errMissingDayFlag
	}
	dayStr, flag, ok := strings.Cut(fields[1], ":")
	if !ok || flag == "" {
		return forest.Entry{}, errMissingDayFlag
	}
	day, err := strconv.Atoi(dayStr)
	if err != nil {
		return forest.Entry{}, err
	}
	r, _ := utf8.DecodeRuneInString(flag)
	w, err := forest.ParseWeather(r)
	if err != nil {
		return forest.Entry{}, err
	}
	return forest.Entry{Day: day, Weather: w}, nil
}

// LoadForecast opens path and calls ReadForecast.
func LoadForecast(path string) (forest.Forecast, error) {
	f, err := openFile(path)
	if err != nil {
		return forest.Forecast{}, err
	}
	defer f.Close()

	return ReadForecast(f, path)
}
