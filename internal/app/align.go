package app

import (
	"context"
	"fmt"
	"io"

	"github.com/katalvlaran/simlab/input"
	"github.com/katalvlaran/simlab/internal/ctxlog"
	"github.com/katalvlaran/simlab/nw"
	"github.com/katalvlaran/simlab/report"
)

// AlignReport is what RunAlign computed, for callers that need more than
// the rendered text.
type AlignReport struct {
	First     input.Song
	Second    input.Song
	Result    *nw.Result
	Threshold int
	Infringed bool
}

// RunAlign loads both songs named by cfg, aligns their notes and renders
// the matrix, the two aligned lines and the verdict to out.
func RunAlign(ctx context.Context, out io.Writer, cfg input.AlignConfig) (*AlignReport, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Alignment run started.", "first", cfg.FirstSong, "second", cfg.SecondSong,
		"match", cfg.Scoring.Match, "mismatch", cfg.Scoring.Mismatch, "gap", cfg.Scoring.Gap,
		"threshold", cfg.Threshold)

	first, err := input.LoadSong(cfg.FirstSong)
	if err != nil {
		return nil, err
	}
	second, err := input.LoadSong(cfg.SecondSong)
	if err != nil {
		return nil, err
	}
	logger.Debug("Songs loaded.", "first_len", len(first.Notes), "second_len", len(second.Notes))

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	res, err := nw.Align(first.Notes, second.Notes, cfg.Scoring)
	if err != nil {
		return nil, fmt.Errorf("failed to align %q and %q: %w", first.Name, second.Name, err)
	}

	if err := report.Matrix(out, res.Matrix, first.Notes, second.Notes); err != nil {
		return nil, err
	}
	err = report.Alignments(out,
		report.Track{ID: first.ID, Name: first.Name},
		report.Track{ID: second.ID, Name: second.Name},
		res.Alignment)
	if err != nil {
		return nil, err
	}
	if err := report.Verdict(out, res.Similarity, cfg.Threshold); err != nil {
		return nil, err
	}

	rep := &AlignReport{
		First:     first,
		Second:    second,
		Result:    res,
		Threshold: cfg.Threshold,
		Infringed: nw.Infringes(res.Similarity, cfg.Threshold),
	}
	logger.Info("Alignment finished.", "score", res.Score, "similarity", res.Similarity,
		"aligned_len", res.Len(), "infringed", rep.Infringed)
	return rep, nil
}
