package search

import (
	"github.com/hevc-go/intracore/internal/herr"
	"github.com/hevc-go/intracore/internal/hevcimage"
)

// gateApplies implements the outer gate shared by all three strategies,
// per spec.md §4.6: only run mode selection for 2Nx2N/depth-0 or
// NxN/depth-1 intra blocks.
func gateApplies(predMode hevcimage.PredMode, part PartMode, trafoDepth int) bool {
	if predMode != hevcimage.PredModeIntra {
		return false
	}
	switch {
	case part == PartMode2Nx2N && trafoDepth == 0:
		return true
	case part == PartModeNxN && trafoDepth == 1:
		return true
	default:
		return false
	}
}

// delegateStraightThrough implements the "otherwise delegate straight
// through to the TB split analyser" half of spec.md §4.6's outer gate: no
// mode trial loop runs, the analyser is invoked once against whatever mode
// is already recorded for this block, and its result is committed as-is.
func delegateStraightThrough(
	img *hevcimage.WorkingImage,
	x, y, log2TbSize, blkIdx int,
	analyser TBSplitAnalyser,
	baseCtx CABACContext,
	cfg Config,
) (hevcimage.IntraMode, EncTB, error) {
	mode := img.IntraPredModeAtIndex(img.Meta.PUIndex(x, y))
	ctx := baseCtx.Clone()

	tb, err := analyser.Analyze(AnalyzeContext{
		Image:      img,
		X:          x,
		Y:          y,
		Log2TbSize: log2TbSize,
		BlkIdx:     blkIdx,
		CIdx:       hevcimage.CIdxY,
		Mode:       mode,
		CABAC:      ctx,
	})
	if err != nil {
		if cfg.Stats != nil {
			cfg.Stats.RecordAnalyzerError()
		}
		return -1, nil, herr.WrapAnalyserFailed(err)
	}

	if err := commitWinner(img, x, y, log2TbSize, blkIdx, mode, tb, cfg); err != nil {
		return -1, nil, err
	}
	return mode, tb, nil
}

// trial runs the per-mode state machine of spec.md §4.6's "for each mode
// tried" list, steps (a)-(e), against the supplied CABAC base context and
// TB split analyser, and returns the resulting EncTB and its RD cost. The
// caller is responsible for Release()-ing every non-winning trial.
func trial(
	img *hevcimage.WorkingImage,
	x, y, log2TbSize, blkIdx int,
	m hevcimage.IntraMode,
	analyser TBSplitAnalyser,
	baseCtx CABACContext,
	cfg Config,
	candList CandList,
) (EncTB, float64, error) {
	ctx := baseCtx.Clone()

	img.SetIntraPredMode(x, y, log2TbSize, m)
	if blkIdx == 0 {
		img.SetChromaMode(x, y, log2TbSize, m)
	}

	tb, err := analyser.Analyze(AnalyzeContext{
		Image:      img,
		X:          x,
		Y:          y,
		Log2TbSize: log2TbSize,
		BlkIdx:     blkIdx,
		CIdx:       hevcimage.CIdxY,
		Mode:       m,
		CABAC:      ctx,
	})
	if err != nil {
		return nil, 0, herr.WrapAnalyserFailed(err)
	}

	rate := float64(tb.Rate()) + signallingRate(candList, m, ctx, cfg.Estimator)
	cost := float64(tb.Distortion()) + cfg.Lambda*rate

	if cfg.Stats != nil {
		cfg.Stats.RecordTrial(int(m), cost)
	}
	cfg.Trace.Trialf("trial x=%d y=%d mode=%d cost=%.3f", x, y, m, cost)

	return tb, cost, nil
}

// commitWinner re-applies the winning mode's metadata, reconstructs its
// EncTB, and — per SPEC_FULL.md §4.7 — runs chroma synthesis with the same
// mode once for the block. If any of this fails, tb is released before the
// error is returned.
func commitWinner(img *hevcimage.WorkingImage, x, y, log2TbSize, blkIdx int, mode hevcimage.IntraMode, tb EncTB, cfg Config) error {
	img.SetIntraPredMode(x, y, log2TbSize, mode)
	if blkIdx == 0 {
		img.SetChromaMode(x, y, log2TbSize, mode)
	}
	if err := tb.Reconstruct(img, x, y, x, y, blkIdx); err != nil {
		tb.Release()
		return err
	}
	if blkIdx == 0 {
		if err := synthesizeChroma(img, x, y, log2TbSize, mode); err != nil {
			tb.Release()
			return err
		}
	}

	if cfg.Stats != nil {
		cfg.Stats.RecordCommit()
	}
	cfg.Trace.Commitf("commit x=%d y=%d mode=%d", x, y, mode)

	return nil
}
