package input

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// lineReader yields lines with their 1-based numbers, stripping a trailing
// carriage return.
type lineReader struct {
	sc   *bufio.Scanner
	path string
	n    int
}

// maxLineBytes caps a single line; long songs exceed bufio's 64 KiB default.
const maxLineBytes = 16 << 20

func newLineReader(r io.Reader, path string) *lineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &lineReader{sc: sc, path: path}
}

// next returns the next line, or ok=false at EOF. Scanner errors are
// reported as FormatErrors.
func (lr *lineReader) next() (line string, ok bool, err error) {
	if !lr.sc.Scan() {
		if err := lr.sc.Err(); err != nil {
			return "", false, formatErr(lr.path, lr.n+1, err, "read failed")
		}
		return "", false, nil
	}
	lr.n++
	return strings.TrimSuffix(lr.sc.Text(), "\r"), true, nil
}

// require returns the next line or a FormatError naming what was expected.
func (lr *lineReader) require(what string) (string, error) {
	line, ok, err := lr.next()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", formatErr(lr.path, lr.n+1, nil, "missing %s line", what)
	}
	return line, nil
}

// openFile opens path for one of the Load* helpers.
func openFile(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, formatErr(path, 0, err, "cannot open")
	}
	return f, nil
}
