package intra

import (
	"github.com/hevc-go/intracore/internal/herr"
	"github.com/hevc-go/intracore/internal/hevcimage"
)

func validBlockSize(nT int) bool {
	return nT == 4 || nT == 8 || nT == 16 || nT == 32
}

// Predict runs the full C1->C2->C3 pipeline for one transform block: it
// fills the reference border (FillBorderSamples), conditionally smooths it
// (FilterReferenceSamples), and dispatches to the matching prediction
// kernel (Planar, DC, or Angular), per spec.md §4. It is the package's
// exported entry point that validates caller-supplied preconditions and
// reports them as errors rather than panicking, per the boundary convention
// described in the herr package documentation.
func Predict(img *hevcimage.WorkingImage, x, y, nT, cIdx int, mode hevcimage.IntraMode) (*PredBlock, error) {
	if !validBlockSize(nT) {
		return nil, herr.Wrapf(herr.ErrUnsupportedBlockSize, "predict: nT=%d", nT)
	}
	if minNT, maxNT := img.SPS.IntraSizeBounds(); nT < minNT || nT > maxNT {
		return nil, herr.Wrapf(herr.ErrUnsupportedBlockSize, "predict: nT=%d outside SPS-derived bounds [%d,%d]", nT, minNT, maxNT)
	}
	if !mode.Valid() {
		return nil, herr.Wrapf(herr.ErrModeOutOfRange, "predict: mode=%d", mode)
	}

	bitDepth := img.SPS.BitDepthLuma
	border := FillBorderSamples(img, x, y, nT, cIdx, bitDepth)
	border = FilterReferenceSamples(border, mode, cIdx, nT, bitDepth, img.SPS.StrongIntraSmoothingEnableFlag)

	switch {
	case mode == hevcimage.IntraPlanar:
		return Planar(border, nT), nil
	case mode == hevcimage.IntraDC:
		return DC(border, nT, cIdx), nil
	default:
		return Angular(border, nT, cIdx, mode), nil
	}
}
