package nw

import "fmt"

// method tags used in error wrappers
const (
	ctxAt  = "At"
	ctxSet = "Set"
	ctxRow = "Row"
)

// matrixErrorf attaches the method name and coordinates to a sentinel.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a row-major integer score table.
//   - r,c hold dimensions; both are at least 1 (the gap-prefix row/column).
//   - data has length r*c, offset = i*c + j.
//
// Row 0 and column 0 are the boundary conditions; cell (i,j) for i,j ≥ 1 is
// the best score for the prefixes a[:i] and b[:j]. A Matrix returned by Fill
// is complete and must be treated as read-only.
type Matrix struct {
	r, c int
	data []int
}

// newMatrix allocates an r×c zero matrix. Callers guarantee r,c ≥ 1.
// Complexity: O(r*c).
func newMatrix(r, c int) *Matrix {
	return &Matrix{r: r, c: c, data: make([]int, r*c)}
}

// Rows returns the row count, len(a)+1.
func (m *Matrix) Rows() int { return m.r }

// Cols returns the column count, len(b)+1.
func (m *Matrix) Cols() int { return m.c }

// inBounds reports whether (i,j) addresses a cell.
func (m *Matrix) inBounds(i, j int) bool {
	return i >= 0 && i < m.r && j >= 0 && j < m.c
}

// at is the unchecked accessor used by the algorithms in this package.
func (m *Matrix) at(i, j int) int { return m.data[i*m.c+j] }

// set is the unchecked mutator used by Fill.
func (m *Matrix) set(i, j, v int) { m.data[i*m.c+j] = v }

// At returns the value at (i,j) or ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix) At(i, j int) (int, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if !m.inBounds(i, j) {
		return 0, matrixErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return m.at(i, j), nil
}

// Set stores v at (i,j) or returns ErrOutOfRange.
// Intended for building fixtures; Fill output should not be modified.
// Complexity: O(1).
func (m *Matrix) Set(i, j, v int) error {
	if m == nil {
		return ErrNilMatrix
	}
	if !m.inBounds(i, j) {
		return matrixErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	m.set(i, j, v)

	return nil
}

// Row returns a copy of row i.
// Complexity: O(c).
func (m *Matrix) Row(i int) ([]int, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if i < 0 || i >= m.r {
		return nil, matrixErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]int, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// NewMatrix builds a Matrix from a rectangular [][]int, deep-copying it.
// Returns ErrBadShape for an empty or ragged input.
// Useful to feed hand-made tables into Backtrace.
func NewMatrix(values [][]int) (*Matrix, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrBadShape
	}
	r, c := len(values), len(values[0])
	m := newMatrix(r, c)
	for i, row := range values {
		if len(row) != c {
			return nil, ErrBadShape
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}
