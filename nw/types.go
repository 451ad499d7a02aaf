// Package nw defines scoring, backtrace moves and results for alignment.
package nw

// GapChar marks a position where one sequence has no symbol.
const GapChar = '-'

// Move is one backtrace step through the score matrix.
type Move int

const (
	// Diag consumes a symbol from both sequences (match or mismatch).
	Diag Move = iota

	// Up consumes a symbol from A and places a gap in B.
	Up

	// Left consumes a symbol from B and places a gap in A.
	Left
)

// String returns the lower-case move name.
func (mv Move) String() string {
	switch mv {
	case Diag:
		return "diag"
	case Up:
		return "up"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// Scoring configures the alignment recurrence.
//
// Fields:
//   - Match    — added when the two symbols are equal.
//   - Mismatch — added on a diagonal step over different symbols.
//   - Gap      — added for every single gap unit (linear, no open/extend split).
//
// All three may be any integer; mismatch and gap are usually negative.
//
// Example:
//
//	s := nw.Scoring{Match: 1, Mismatch: -1, Gap: -2}
//	m := nw.Fill("ACGT", "ACGA", s)
type Scoring struct {
	Match    int
	Mismatch int
	Gap      int
}

// DefaultScoring returns Match=1, Mismatch=-1, Gap=-2.
func DefaultScoring() Scoring {
	return Scoring{
		Match:    1,
		Mismatch: -1,
		Gap:      -2,
	}
}

// Alignment holds the two aligned strings and the moves that produced them.
// A and B always have the same length; Path[k] produced column k.
type Alignment struct {
	A    string
	B    string
	Path []Move
}

// Len returns the aligned length (number of columns).
func (al Alignment) Len() int { return len(al.A) }

// Result bundles everything Align computes for a single pair.
type Result struct {
	Matrix *Matrix // fully populated, read-only
	Alignment
	Score      int // M[n][m], the optimal global score
	Similarity int // 0..100
}
