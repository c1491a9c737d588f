package intra

import "github.com/hevc-go/intracore/internal/hevcimage"

// CandList is the 3-entry most-probable-mode shortlist of spec.md §4.4.
// I-MPM: the three entries are always distinct.
type CandList [3]hevcimage.IntraMode

// neighbourIntraMode implements the "treat unavailable/non-intra/PCM
// neighbour as INTRA_DC" rule of spec.md §4.4 for a single neighbour at
// luma position (xN,yN), whose min-PU index is puIdx.
func neighbourIntraMode(img *hevcimage.WorkingImage, xB, yB, xN, yN, puIdx int) hevcimage.IntraMode {
	if !neighbourAvailable(img, xB, yB, xN, yN) {
		return hevcimage.IntraDC
	}
	if img.PredMode(xN, yN) != hevcimage.PredModeIntra || img.PCMFlag(xN, yN) {
		return hevcimage.IntraDC
	}
	return img.IntraPredModeAtIndex(puIdx)
}

// DeriveCandList computes C4's MPM list for the luma PU at (x,y) with
// min-PU grid index puIdx, per spec.md §4.4.
func DeriveCandList(img *hevcimage.WorkingImage, x, y, puIdx int) CandList {
	sps := img.SPS

	candA := neighbourIntraMode(img, x, y, x-1, y, puIdx-1)

	var candB hevcimage.IntraMode
	ctbRowStart := (y >> sps.Log2CtbSizeY) << sps.Log2CtbSizeY
	if y-1 < ctbRowStart {
		candB = hevcimage.IntraDC
	} else {
		candB = neighbourIntraMode(img, x, y, x, y-1, puIdx-sps.PicWidthInMinPUs)
	}

	return buildCandList(candA, candB)
}

// buildCandList implements the 3-list construction rules of spec.md §4.4
// given already-derived candA and candB.
func buildCandList(candA, candB hevcimage.IntraMode) CandList {
	if candA == candB {
		if candA == hevcimage.IntraPlanar || candA == hevcimage.IntraDC {
			return CandList{hevcimage.IntraPlanar, hevcimage.IntraDC, hevcimage.IntraAngular26}
		}
		a := int(candA)
		second := 2 + ((a-2-1+32)%32)
		third := 2 + ((a-2+1)%32)
		return CandList{candA, hevcimage.IntraMode(second), hevcimage.IntraMode(third)}
	}

	third := hevcimage.IntraPlanar
	switch {
	case candA != hevcimage.IntraPlanar && candB != hevcimage.IntraPlanar:
		third = hevcimage.IntraPlanar
	case candA != hevcimage.IntraDC && candB != hevcimage.IntraDC:
		third = hevcimage.IntraDC
	default:
		third = hevcimage.IntraAngular26
	}
	return CandList{candA, candB, third}
}

// Contains reports whether mode appears in the list.
func (c CandList) Contains(mode hevcimage.IntraMode) bool {
	return c[0] == mode || c[1] == mode || c[2] == mode
}

// RDBitsEstimator obtains the CABAC RD-bits cost for a single bin value
// from the external context, per spec.md §4.4.
type RDBitsEstimator interface {
	RDBitsForBin(ctx any, bin int) float64
}

// SignallingRate computes the +1/+2/+5 mode-signalling rate contribution
// of spec.md §4.4 for choosing mode m against candList, plus the CABAC
// cost of the prev_intra_luma_pred_flag bin (1 if m is in the list, else
// 0) obtained from estimator. ctx is opaque and passed through unchanged.
func SignallingRate(candList CandList, m hevcimage.IntraMode, ctx any, estimator RDBitsEstimator) float64 {
	var base float64
	switch {
	case m == candList[0]:
		base = 1
	case m == candList[1] || m == candList[2]:
		base = 2
	default:
		base = 5
	}

	bin := 0
	if candList.Contains(m) {
		bin = 1
	}
	if estimator != nil {
		base += estimator.RDBitsForBin(ctx, bin)
	}
	return base
}
