package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/simlab/internal/ctxlog"
)

// Exit codes returned through ExitError.
const (
	CodeFailure = 1
	CodeUsage   = 2
)

// ExitError is an error that carries the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// usageErr builds an ExitError with CodeUsage.
func usageErr(format string, args ...any) *ExitError {
	return &ExitError{Code: CodeUsage, Message: fmt.Sprintf(format, args...)}
}

// Logging holds the validated logging flags shared by both programs.
type Logging struct {
	Level  string
	Format string
}

// AlignArgs is the parsed mdna command line.
type AlignArgs struct {
	Logging
	ConfigPath string
}

// BurnArgs is the parsed controlburn command line. Either ConfigPath or
// both ForestPath and ForecastPath are set.
type BurnArgs struct {
	Logging
	ConfigPath   string
	ForestPath   string
	ForecastPath string
}

// logFlags registers -log-level and -log-format on fs.
func logFlags(fs *flag.FlagSet) (level, format *string) {
	level = fs.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	format = fs.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	return level, format
}

// validateLogging normalises and checks the logging flags.
func validateLogging(level, format string) (Logging, error) {
	l := Logging{Level: strings.ToLower(level), Format: strings.ToLower(format)}
	if l.Format != "text" && l.Format != "json" {
		return Logging{}, usageErr("invalid log-format: must be 'text' or 'json'")
	}
	if _, ok := ctxlog.ParseLevel(l.Level); !ok {
		return Logging{}, usageErr("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	return l, nil
}

// parse runs fs over args. shouldExit is true after -h.
func parse(fs *flag.FlagSet, args []string) (shouldExit bool, err error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return true, nil
		}
		return false, usageErr("%s", err.Error())
	}
	return false, nil
}

// ParseAlign processes the mdna arguments. It returns the parsed
// arguments, whether the program should exit cleanly, or an ExitError.
func ParseAlign(args []string, output io.Writer) (*AlignArgs, bool, error) {
	fs := flag.NewFlagSet("mdna", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
mdna - Needleman-Wunsch similarity check between two songs.

Usage:
  mdna [options] CONFIG

Arguments:
  CONFIG
    A six-line key=value file (first song, second song, match, mismatch,
    gap, threshold) or a .hcl file with an alignment block.

Options:
`)
		fs.PrintDefaults()
	}
	level, format := logFlags(fs)

	if exit, err := parse(fs, args); exit || err != nil {
		return nil, exit, err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return nil, true, nil
	}
	if fs.NArg() > 1 {
		return nil, false, usageErr("expected one CONFIG argument, got %d", fs.NArg())
	}

	logging, err := validateLogging(*level, *format)
	if err != nil {
		return nil, false, err
	}
	return &AlignArgs{Logging: logging, ConfigPath: fs.Arg(0)}, false, nil
}

// ParseBurn processes the controlburn arguments. It returns the parsed
// arguments, whether the program should exit cleanly, or an ExitError.
func ParseBurn(args []string, output io.Writer) (*BurnArgs, bool, error) {
	fs := flag.NewFlagSet("controlburn", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
controlburn - Forest fire spread simulation under a weather forecast.

Usage:
  controlburn [options] FOREST FORECAST
  controlburn [options] -config RUN.hcl

Arguments:
  FOREST
    Burn duration header followed by comma-separated cells (T, F, B, space).
  FORECAST
    One "label day:flag" line per weather change, flag in N, S, E, W, R.

Options:
`)
		fs.PrintDefaults()
	}
	level, format := logFlags(fs)
	configFlag := fs.String("config", "", "Path to a .hcl file with a burn block.")

	if exit, err := parse(fs, args); exit || err != nil {
		return nil, exit, err
	}

	out := &BurnArgs{ConfigPath: *configFlag}
	switch {
	case out.ConfigPath != "" && fs.NArg() > 0:
		return nil, false, usageErr("-config cannot be combined with FOREST FORECAST")
	case out.ConfigPath != "":
	case fs.NArg() == 0:
		fs.Usage()
		return nil, true, nil
	case fs.NArg() != 2:
		return nil, false, usageErr("expected FOREST and FORECAST, got %d argument(s)", fs.NArg())
	default:
		out.ForestPath, out.ForecastPath = fs.Arg(0), fs.Arg(1)
	}

	logging, err := validateLogging(*level, *format)
	if err != nil {
		return nil, false, err
	}
	out.Logging = logging
	return out, false, nil
}
