// Package nw computes Needleman–Wunsch global alignments between two
// symbol sequences, with a full score matrix, a deterministic backtrace
// and a positional similarity percentage.
//
// 🚀 What is Needleman–Wunsch?
//
//	A dynamic-programming alignment of two entire sequences, end to end.
//	Every cell (i,j) of an (n+1)x(m+1) matrix holds the best score for
//	aligning the prefixes a[:i] and b[:j]. It is used for:
//	  • Melody comparison (note-by-note plagiarism checks)
//	  • DNA / protein global alignment
//	  • Diffing short symbolic traces
//
// ✨ Key features:
//   - linear gap cost: every gap unit costs Scoring.Gap independently
//   - full-matrix fill, always complete (no early exit)
//   - fixed backtrace priority Diag → Up → Left on ties
//   - rolling two-row Score when only the optimum is needed
//   - similarity rounded half away from zero over the aligned length
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/simlab/nw"
//
//	res, err := nw.Align("ACGT", "ACGA", nw.DefaultScoring())
//	if err != nil {
//	  // ErrInconsistentMatrix / ErrLengthMismatch are invariant violations
//	}
//	fmt.Println(res.A, res.B, res.Similarity) // ACGT ACGA 75
//
// Recurrence:
//
//	M[0][j] = j·Gap
//	M[i][0] = i·Gap
//	M[i][j] = M[i-1][j-1] + Match                     if a[i-1] == b[j-1]
//	        = max(M[i-1][j]   + Gap,
//	              M[i][j-1]   + Gap,
//	              M[i-1][j-1] + Mismatch)              otherwise
//
// Tie-break policy:
//
//	When symbols differ and several predecessors reproduce M[i][j], the
//	backtrace takes the first of diagonal, up, left. Other orders give
//	alignments with the same score but different strings and therefore
//	different similarity percentages; the order is part of the contract.
//
// Performance:
//
//   - Fill/Align: O(N·M) time and memory
//   - Score:      O(N·M) time, O(min(N,M)) memory
package nw
