package search

import (
	"sort"

	"github.com/hevc-go/intracore/internal/hevcimage"
	"github.com/hevc-go/intracore/internal/intra"
)

// RunFastBrute implements C6's FastBrute strategy, per spec.md §4.6: score
// every non-MPM mode with the cheap residual metric, keep the
// cfg.KeepNBest cheapest, always add the three MPM candidates back
// (duplicates permitted), then run the full RD path over that reduced set.
func RunFastBrute(
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
	candList := deriveCandList(img, x, y)

	type scored struct {
		mode  hevcimage.IntraMode
		score int64
	}
	var candidates []scored
	for m := 0; m < hevcimage.NumIntraModes; m++ {
		mode := hevcimage.IntraMode(m)
		if candList.Contains(mode) {
			continue
		}
		pred, err := intra.Predict(img, x, y, nT, hevcimage.CIdxY, mode)
		if err != nil {
			return -1, nil, err
		}
		score := residualMetric(orig, x, y, pred, cfg.Metric)
		intra.Release(pred)
		candidates = append(candidates, scored{mode, score})
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].score < candidates[j].score })

	keep := cfg.KeepNBest
	if keep > len(candidates) {
		keep = len(candidates)
	}

	trialSet := make([]hevcimage.IntraMode, 0, keep+3)
	for i := 0; i < keep; i++ {
		trialSet = append(trialSet, candidates[i].mode)
	}
	trialSet = append(trialSet, candList[0], candList[1], candList[2])

	var (
		bestMode hevcimage.IntraMode = -1
		bestTb   EncTB
		bestCost float64
		trials   []EncTB
	)
	for _, mode := range trialSet {
		if !cfg.EnabledModes[mode] {
			continue
		}
		tb, cost, err := trial(img, x, y, log2TbSize, blkIdx, mode, analyser, baseCtx, cfg, candList)
		if err != nil {
			if cfg.Stats != nil {
				cfg.Stats.RecordAnalyzerError()
			}
			for _, t := range trials {
				t.Release()
			}
			return -1, nil, err
		}
		trials = append(trials, tb)
		if bestMode == -1 || cost < bestCost {
			bestMode, bestTb, bestCost = mode, tb, cost
		}
	}

	for _, t := range trials {
		if t != bestTb {
			t.Release()
		}
	}

	if bestTb == nil {
		return -1, nil, nil
	}
	if err := commitWinner(img, x, y, log2TbSize, blkIdx, bestMode, bestTb, cfg); err != nil {
		return -1, nil, err
	}
	return bestMode, bestTb, nil
}
