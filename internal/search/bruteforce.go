package search

import "github.com/hevc-go/intracore/internal/hevcimage"

// RunBruteForce implements C6's BruteForce strategy: try every mode for
// which cfg.EnabledModes[m] is true, per spec.md §4.6.
func RunBruteForce(
	img *hevcimage.WorkingImage,
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

	candList := deriveCandList(img, x, y)

	var (
		bestMode hevcimage.IntraMode = -1
		bestTb   EncTB
		bestCost float64
		trials   []EncTB
	)

	for m := 0; m < hevcimage.NumIntraModes; m++ {
		mode := hevcimage.IntraMode(m)
		if !cfg.EnabledModes[m] {
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
