// Package simlab bundles two small console simulations built on a shared
// grid-and-table toolkit.
//
// 🚀 What is inside?
//
//	• nw/       — Needleman–Wunsch global alignment: score matrix, backtrace,
//	              similarity percentage, rolling-row score
//	• forest/   — forest-fire cellular automaton: wind-directed spread,
//	              burn duration, forward-filled weather forecast, fire fronts
//	• input/    — loaders for songs, key=value and HCL run configs, forests
//	              and forecasts, all failing with *input.FormatError
//	• report/   — byte-exact console rendering for both programs
//
// Two commands drive them:
//
//	cmd/mdna        — compares two songs and prints an infringement verdict
//	cmd/controlburn — burns a forest day by day until the fire is out
//
// Quick example:
//
//	res, _ := nw.Align("ACGT", "ACGA", nw.DefaultScoring())
//	fmt.Println(res.Similarity) // 75
//
//	go install github.com/katalvlaran/simlab/cmd/...
package simlab
