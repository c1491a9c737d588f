package search

import (
	"github.com/hevc-go/intracore/internal/distortion"
	"github.com/hevc-go/intracore/internal/herr"
	"github.com/hevc-go/intracore/internal/hevcimage"
	"github.com/hevc-go/intracore/internal/intra"
)

// residualMetric scores a candidate prediction block against the
// original samples using cfg.Metric, per spec.md §4.5.
func residualMetric(orig *hevcimage.Plane, ox, oy int, pred *intra.PredBlock, metric MetricKind) int64 {
	a := orig.Pix[orig.PtrOffset(ox, oy):]
	switch metric {
	case MetricSAD:
		return distortion.SAD(a, orig.Stride, pred.Pix, pred.Stride, pred.N)
	case MetricSATDDCT:
		return distortion.SATDDCT(a, orig.Stride, pred.Pix, pred.Stride, pred.N)
	case MetricSATDHadamard:
		return distortion.SATDHadamard(a, orig.Stride, pred.Pix, pred.Stride, pred.N)
	default:
		return distortion.SSD(a, orig.Stride, pred.Pix, pred.Stride, pred.N)
	}
}

// RunMinResidual implements C6's MinResidual strategy: synthesise the
// prediction of every mode enabled in cfg.EnabledModes directly (no
// transform-tree analysis), score each against
// orig with cfg.Metric, pick the minimiser, then invoke the TB split
// analyser once for that mode, per spec.md §4.6. No MPM rate term is
// added to the residual-metric comparison.
func RunMinResidual(
	img *hevcimage.WorkingImage,
	orig *hevcimage.Plane,
	x, y, log2TbSize, blkIdx int,
	part PartMode,
	trafoDepth int,
	analyser TBSplitAnalyser,
	baseCtx CABACContext,
	cfg Config,
) (hevcimage.IntraMode, EncTB, error) {
	if !gateApplies(img.PredMode(x, y), part, trafoDepth) {
		return delegateStraightThrough(img, x, y, log2TbSize, blkIdx, analyser, baseCtx, cfg)
	}

	nT := 1 << log2TbSize

	var (
		bestMode  hevcimage.IntraMode = -1
		bestScore int64
	)
	for m := 0; m < hevcimage.NumIntraModes; m++ {
		mode := hevcimage.IntraMode(m)
		if !cfg.EnabledModes[m] {
			continue
		}
		pred, err := intra.Predict(img, x, y, nT, hevcimage.CIdxY, mode)
		if err != nil {
			return -1, nil, err
		}
		score := residualMetric(orig, x, y, pred, cfg.Metric)
		intra.Release(pred)
		if bestMode == -1 || score < bestScore {
			bestMode, bestScore = mode, score
		}
	}
	if bestMode == -1 {
		return -1, nil, nil
	}

	ctx := baseCtx.Clone()
	img.SetIntraPredMode(x, y, log2TbSize, bestMode)
	tb, err := analyser.Analyze(AnalyzeContext{
		Image:      img,
		X:          x,
		Y:          y,
		Log2TbSize: log2TbSize,
		BlkIdx:     blkIdx,
		CIdx:       hevcimage.CIdxY,
		Mode:       bestMode,
		CABAC:      ctx,
	})
	if err != nil {
		if cfg.Stats != nil {
			cfg.Stats.RecordAnalyzerError()
		}
		return -1, nil, herr.WrapAnalyserFailed(err)
	}
	if cfg.Stats != nil {
		cfg.Stats.RecordTrial(int(bestMode), float64(tb.Distortion()))
	}

	if err := commitWinner(img, x, y, log2TbSize, blkIdx, bestMode, tb, cfg); err != nil {
		return -1, nil, err
	}
	return bestMode, tb, nil
}
