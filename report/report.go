// Package report renders the console output of both programs. The layouts
// are fixed: existing transcripts are compared byte for byte.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/simlab/forest"
	"github.com/katalvlaran/simlab/nw"
)

// ---------- Formatting literals ----------
const (
	_matrixTitle  = "Alignment Matrix\n"
	_headerCorner = "       -"
	_headerCell   = "    "
	_rowIndent    = "  "
	_rowGapLabel  = "-"
	_cellFmt      = "%5d"
	_lineEnd      = " \n"
	_idWidth      = 5
	_nameWidth    = 25
)

// write flushes a builder to w.
func write(w io.Writer, sb *strings.Builder) error {
	_, err := io.WriteString(w, sb.String())
	return err
}

// Matrix renders the labelled score table. Columns are headed by the
// symbols of b, rows by the symbols of a; row and column 0 are labelled '-'.
// Every line ends with a space before the newline and the table is
// followed by a blank line.
//
//	Alignment Matrix
//	       -    A    C
//	  -    0   -2   -4
//	  A   -2    1   -1
func Matrix(w io.Writer, m *nw.Matrix, a, b string) error {
	if m == nil {
		return nw.ErrNilMatrix
	}
	if m.Rows() != len(a)+1 || m.Cols() != len(b)+1 {
		return nw.ErrDimensionMismatch
	}

	var sb strings.Builder
	sb.WriteString(_matrixTitle)
	sb.WriteString(_headerCorner)
	for j := 0; j < len(b); j++ {
		sb.WriteString(_headerCell)
		sb.WriteByte(b[j])
	}
	sb.WriteString(_lineEnd)

	for i := 0; i < m.Rows(); i++ {
		sb.WriteString(_rowIndent)
		if i == 0 {
			sb.WriteString(_rowGapLabel)
		} else {
			sb.WriteByte(a[i-1])
		}
		row, err := m.Row(i)
		if err != nil {
			return err
		}
		for _, v := range row {
			fmt.Fprintf(&sb, _cellFmt, v)
		}
		sb.WriteString(_lineEnd)
	}
	sb.WriteByte('\n')

	return write(w, &sb)
}

// padRight pads s with spaces to n bytes. Width counts bytes, not runes,
// so multi-byte names line up with existing transcripts.
func padRight(sb *strings.Builder, s string, n int) {
	sb.WriteString(s)
	for i := len(s); i < n; i++ {
		sb.WriteByte(' ')
	}
}

// Alignment renders one "<id><name>:<aligned>" line, id padded to 5 and
// name to 25 bytes. Longer fields are not truncated.
func Alignment(w io.Writer, id, name, aligned string) error {
	var sb strings.Builder
	padRight(&sb, id, _idWidth)
	padRight(&sb, name, _nameWidth)
	sb.WriteByte(':')
	sb.WriteString(aligned)
	sb.WriteByte('\n')

	return write(w, &sb)
}

// Track labels one aligned sequence.
type Track struct {
	ID   string
	Name string
}

// Alignments renders both aligned sequences followed by a blank line.
func Alignments(w io.Writer, first, second Track, al nw.Alignment) error {
	if err := Alignment(w, first.ID, first.Name, al.A); err != nil {
		return err
	}
	if err := Alignment(w, second.ID, second.Name, al.B); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Verdict renders the closing sentence comparing similarity to threshold.
func Verdict(w io.Writer, similarity, threshold int) error {
	var err error
	if nw.Infringes(similarity, threshold) {
		_, err = fmt.Fprintf(w, "The similarity between the two songs was %d%% and is not below the similarity threshold of %d%%. Thus, copyright infringement has occurred.\n",
			similarity, threshold)
	} else {
		_, err = fmt.Fprintf(w, "The similarity between the two songs was %d%% and is below the similarity threshold of %d%%. Thus, no copyright infringement has occurred.\n",
			similarity, threshold)
	}
	return err
}

// Day renders one simulation day: a weather notice when the forecast
// names this day, the day number, then the grid with every cell followed
// by a space, then a blank line.
func Day(w io.Writer, d forest.Day) error {
	var sb strings.Builder
	if d.Changed {
		if d.Weather == forest.Rain {
			sb.WriteString("It is now raining\n")
		} else {
			fmt.Fprintf(&sb, "The wind is now blowing %c\n", d.Weather.Rune())
		}
	}
	fmt.Fprintf(&sb, "Current day: %d\n", d.Number)
	for _, row := range d.Forest.Rows() {
		for _, s := range row {
			sb.WriteRune(s.Rune())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')

	return write(w, &sb)
}

// BurnedOut renders the closing summary of the fire simulation.
func BurnedOut(w io.Writer, days int) error {
	_, err := fmt.Fprintf(w, "The forest fire took %d days to burn out.\nRemember-Only YOU Can Prevent Forest Fires!\n-Smokey Bear\n", days)
	return err
}
