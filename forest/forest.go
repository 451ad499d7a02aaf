// Package forest simulates a fire spreading through a rectangular forest,
// one day at a time, under a wind/rain forecast.
//
//   - Cells are Tree, Fire, Burnt or Empty.
//   - Wind pushes fire from every burning cell into a three-cell footprint
//     on the downwind side; rain stops spreading for the day.
//   - Each burning tree counts its days on fire and turns Burnt after
//     BurnDuration days (the day it was first seen burning counts).
package forest

// Forest is a width×height grid of cells plus per-cell burn counters.
// Width and Height define dimensions; cells are stored row-major (y*Width+x).
// A Forest is owned by a single simulation run and is mutated only by Step.
type Forest struct {
	Width, Height int
	BurnDuration  int
	cells         []State
	burnDays      []int
}

// New constructs a Forest from a non-empty, rectangular 2D slice.
// It deep-copies the input; rows[y][x] is the cell at column x, row y.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrBadBurnDuration if burnDuration < 1.
// Algorithmic complexity: O(W×H) time and memory.
func New(rows [][]State, burnDuration int) (*Forest, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	if burnDuration < 1 {
		return nil, ErrBadBurnDuration
	}
	cells := make([]State, 0, w*h)
	for _, row := range rows {
		cells = append(cells, row...)
	}

	return &Forest{
		Width:        w,
		Height:       h,
		BurnDuration: burnDuration,
		cells:        cells,
		burnDays:     make([]int, w*h),
	}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (f *Forest) InBounds(x, y int) bool {
	return x >= 0 && x < f.Width && y >= 0 && y < f.Height
}

// index maps (x,y) to a row‑major index: y*Width + x.
func (f *Forest) index(x, y int) int {
	return y*f.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (f *Forest) Coordinate(idx int) (x, y int) {
	return idx % f.Width, idx / f.Width
}

// At returns the state of cell (x,y) or ErrOutOfRange.
func (f *Forest) At(x, y int) (State, error) {
	if !f.InBounds(x, y) {
		return Empty, ErrOutOfRange
	}

	return f.cells[f.index(x, y)], nil
}

// BurnDays returns how many days cell (x,y) has been counted as burning.
func (f *Forest) BurnDays(x, y int) (int, error) {
	if !f.InBounds(x, y) {
		return 0, ErrOutOfRange
	}

	return f.burnDays[f.index(x, y)], nil
}

// Rows returns a deep copy of the grid as rows[y][x].
// Complexity: O(W×H).
func (f *Forest) Rows() [][]State {
	out := make([][]State, f.Height)
	for y := range out {
		out[y] = make([]State, f.Width)
		copy(out[y], f.cells[y*f.Width:(y+1)*f.Width])
	}

	return out
}

// Burning reports whether any cell is on fire.
func (f *Forest) Burning() bool {
	for _, s := range f.cells {
		if s == Fire {
			return true
		}
	}

	return false
}

// Count returns the number of cells in state s.
func (f *Forest) Count(s State) int {
	n := 0
	for _, c := range f.cells {
		if c == s {
			n++
		}
	}

	return n
}
