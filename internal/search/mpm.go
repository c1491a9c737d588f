package search

import (
	"github.com/hevc-go/intracore/internal/hevcimage"
	"github.com/hevc-go/intracore/internal/intra"
)

// CandList is C4's 3-entry most-probable-mode shortlist.
type CandList = intra.CandList

// deriveCandList is a thin wrapper over intra.DeriveCandList so the search
// strategies never need to know the PU-index bookkeeping in hevcimage.
func deriveCandList(img *hevcimage.WorkingImage, x, y int) CandList {
	puIdx := img.Meta.PUIndex(x, y)
	return intra.DeriveCandList(img, x, y, puIdx)
}

// signallingRate computes C4's mode-signalling rate term for choosing m
// against candList under the supplied CABAC context and estimator.
func signallingRate(candList CandList, m hevcimage.IntraMode, ctx CABACContext, estimator RDBitsEstimator) float64 {
	return intra.SignallingRate(candList, m, ctx, asIntraEstimator(estimator))
}
