package nw

import (
	"errors"
	"fmt"
)

// Needleman–Wunsch
//
// Description:
//
//	Global alignment of two symbol sequences under a linear gap cost.
//	The whole (n+1)x(m+1) matrix is filled, then walked back from the
//	bottom-right cell to the origin to produce two aligned strings.
//
// Algorithm Outline:
//  1. Let n = len(a), m = len(b). Allocate (n+1)x(m+1) matrix M.
//  2. Initialize M[0][j] = j·Gap and M[i][0] = i·Gap.
//  3. For i = 1..n, j = 1..m (row-major):
//     equal symbols → M[i-1][j-1] + Match
//     otherwise     → max(up+Gap, left+Gap, diag+Mismatch)
//  4. Backtrace from (n,m) while i>0 && j>0 (Diag → Up → Left),
//     then drain the remaining row/column with forced gap moves.
//  5. Reverse the collected columns.
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(n·m)
//
// Errors:
//   - ErrNilMatrix          — nil matrix passed to Backtrace or an accessor.
//   - ErrDimensionMismatch  — matrix shape differs from (len(a)+1)x(len(b)+1).
//   - ErrInconsistentMatrix — no predecessor reproduces a cell during backtrace.
//   - ErrLengthMismatch     — Similarity on strings of different lengths.
//   - ErrOutOfRange         — At/Set/Row outside the matrix.
//   - ErrBadShape           — NewMatrix on an empty or ragged table.
var (
	// ErrNilMatrix indicates a nil *Matrix was used.
	ErrNilMatrix = errors.New("nw: nil matrix")

	// ErrOutOfRange indicates a row or column index outside the matrix.
	ErrOutOfRange = errors.New("nw: index out of range")

	// ErrBadShape indicates an empty or non-rectangular table.
	ErrBadShape = errors.New("nw: table must be non-empty and rectangular")

	// ErrDimensionMismatch indicates the matrix does not fit the sequences.
	ErrDimensionMismatch = errors.New("nw: matrix shape does not match sequences")

	// ErrInconsistentMatrix indicates the matrix was not produced by Fill
	// with the same sequences and scoring.
	ErrInconsistentMatrix = errors.New("nw: no predecessor reproduces cell")

	// ErrLengthMismatch indicates aligned strings of unequal length.
	ErrLengthMismatch = errors.New("nw: aligned strings differ in length")
)

// Fill builds the complete score matrix for a and b.
// Either sequence may be empty; the result is then a single row or column
// of gap multiples.
//
// Example:
//
//	m := nw.Fill("ACGT", "ACGA", nw.DefaultScoring())
//	v, _ := m.At(4, 4) // 2
func Fill(a, b string, s Scoring) *Matrix {
	n, k := len(a), len(b)
	m := newMatrix(n+1, k+1)

	// Boundary: all-gap alignments against an empty prefix
	for j := 0; j <= k; j++ {
		m.set(0, j, j*s.Gap)
	}
	for i := 0; i <= n; i++ {
		m.set(i, 0, i*s.Gap)
	}

	for i := 1; i <= n; i++ {
		ca := a[i-1]
		for j := 1; j <= k; j++ {
			if ca == b[j-1] {
				m.set(i, j, m.at(i-1, j-1)+s.Match)
				continue
			}
			up := m.at(i-1, j) + s.Gap
			left := m.at(i, j-1) + s.Gap
			diag := m.at(i-1, j-1) + s.Mismatch
			m.set(i, j, max(up, left, diag))
		}
	}

	return m
}

// Backtrace walks m from (len(a),len(b)) to (0,0) and returns the aligned
// strings. Equal symbols always step diagonally. Otherwise the first
// satisfied of diagonal (+Mismatch), up (+Gap) and left (+Gap) is taken.
// Once either index reaches 0 the other sequence is drained against gaps.
func Backtrace(m *Matrix, a, b string, s Scoring) (Alignment, error) {
	if m == nil {
		return Alignment{}, ErrNilMatrix
	}
	n, k := len(a), len(b)
	if m.Rows() != n+1 || m.Cols() != k+1 {
		return Alignment{}, fmt.Errorf("%w: %dx%d for lengths %d,%d",
			ErrDimensionMismatch, m.Rows(), m.Cols(), n, k)
	}

	outA := make([]byte, 0, n+k)
	outB := make([]byte, 0, n+k)
	path := make([]Move, 0, n+k)

	i, j := n, k
	for i > 0 && j > 0 {
		cur := m.at(i, j)
		var mv Move
		switch {
		case a[i-1] == b[j-1]:
			mv = Diag
		case m.at(i-1, j-1)+s.Mismatch == cur:
			mv = Diag
		case m.at(i-1, j)+s.Gap == cur:
			mv = Up
		case m.at(i, j-1)+s.Gap == cur:
			mv = Left
		default:
			return Alignment{}, fmt.Errorf("%w at (%d,%d)", ErrInconsistentMatrix, i, j)
		}

		switch mv {
		case Diag:
			outA = append(outA, a[i-1])
			outB = append(outB, b[j-1])
			i--
			j--
		case Up:
			outA = append(outA, a[i-1])
			outB = append(outB, GapChar)
			i--
		case Left:
			outA = append(outA, GapChar)
			outB = append(outB, b[j-1])
			j--
		}
		path = append(path, mv)
	}

	// Along the top row or left column only gap moves remain
	for ; i > 0; i-- {
		outA = append(outA, a[i-1])
		outB = append(outB, GapChar)
		path = append(path, Up)
	}
	for ; j > 0; j-- {
		outA = append(outA, GapChar)
		outB = append(outB, b[j-1])
		path = append(path, Left)
	}

	reverse(outA)
	reverse(outB)
	reverse(path)

	return Alignment{A: string(outA), B: string(outB), Path: path}, nil
}

// Similarity returns the percentage of aligned columns whose characters are
// equal, rounded to the nearest integer with halves away from zero
// (86.5 → 87, 86.4 → 86). The denominator is the aligned length, gaps
// included. Two empty strings score 0.
func Similarity(alignedA, alignedB string) (int, error) {
	if len(alignedA) != len(alignedB) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(alignedA), len(alignedB))
	}
	total := len(alignedA)
	if total == 0 {
		return 0, nil
	}
	same := 0
	for i := 0; i < total; i++ {
		if alignedA[i] == alignedB[i] {
			same++
		}
	}

	// round(same*100/total) in integers: (2·same·100 + total) / (2·total)
	return (same*200 + total) / (2 * total), nil
}

// Align runs Fill, Backtrace and Similarity for a and b.
//
// Example:
//
//	res, err := nw.Align("", "CAT", nw.DefaultScoring())
//	// res.A == "---", res.B == "CAT", res.Similarity == 0
func Align(a, b string, s Scoring) (*Result, error) {
	m := Fill(a, b, s)
	al, err := Backtrace(m, a, b, s)
	if err != nil {
		return nil, err
	}
	sim, err := Similarity(al.A, al.B)
	if err != nil {
		return nil, err
	}

	return &Result{
		Matrix:     m,
		Alignment:  al,
		Score:      m.at(len(a), len(b)),
		Similarity: sim,
	}, nil
}

// Score returns the optimal global alignment score, M[len(a)][len(b)],
// keeping only two rows of the matrix. The recurrence is symmetric in a
// and b, so rows run over the shorter sequence.
// Complexity: O(n·m) time, O(min(n,m)) memory.
func Score(a, b string, s Scoring) int {
	if len(b) > len(a) {
		a, b = b, a
	}
	k := len(b)
	prev := make([]int, k+1)
	curr := make([]int, k+1)
	for j := 0; j <= k; j++ {
		prev[j] = j * s.Gap
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i * s.Gap
		for j := 1; j <= k; j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + s.Match
				continue
			}
			curr[j] = max(prev[j]+s.Gap, curr[j-1]+s.Gap, prev[j-1]+s.Mismatch)
		}
		prev, curr = curr, prev
	}

	return prev[k]
}

// Infringes reports the verdict for a similarity percentage: reaching the
// threshold counts as infringement.
func Infringes(similarity, threshold int) bool {
	return similarity >= threshold
}

// reverse reverses s in place.
func reverse[T any](s []T) {
	for l, r := 0, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}
}
