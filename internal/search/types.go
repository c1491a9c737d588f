// Package search implements C6: the three mode-search strategies
// (BruteForce, MinResidual, FastBrute) that drive C1-C4 prediction
// synthesis and C5 distortion scoring to pick an intra mode for one luma
// transform block, per spec.md §4.6.
package search

import (
	"github.com/hevc-go/intracore/internal/hevcimage"
	"github.com/hevc-go/intracore/internal/intra"
	"github.com/hevc-go/intracore/internal/observability"
)

// PartMode names the two partition shapes the search outer gate cares
// about, per spec.md §4.6.
type PartMode int

const (
	PartMode2Nx2N PartMode = iota
	PartModeNxN
)

// ImageAccessor is the subset of WorkingImage that the search strategies
// and the external TB split analyser need, per SPEC_FULL.md §6. It is
// satisfied by *hevcimage.WorkingImage without adaptation.
type ImageAccessor interface {
	GetPlaneAtPos(cIdx, x, y int) uint8
	SetPlaneAtPos(cIdx, x, y int, v uint8)
	Stride(cIdx int) int
	PredMode(x, y int) hevcimage.PredMode
	PCMFlag(x, y int) bool
	SliceAddrRS(ctbX, ctbY int) int
	IntraPredModeAtIndex(puIdx int) hevcimage.IntraMode
	SetIntraPredMode(x, y, log2TbSize int, mode hevcimage.IntraMode)
}

// AnalyzeContext is the request passed to the external TB split analyser
// for one candidate trial.
type AnalyzeContext struct {
	Image      ImageAccessor
	X, Y       int
	Log2TbSize int
	BlkIdx     int
	CIdx       int
	Mode       hevcimage.IntraMode
	CABAC      CABACContext
}

// TBSplitAnalyser is the external, black-box recursive transform-tree
// analyser, per spec.md §6.
type TBSplitAnalyser interface {
	Analyze(ctx AnalyzeContext) (EncTB, error)
}

// EncTB is the result of one transform-tree analysis: its residual coding
// cost, its distortion, and the means to commit or discard it.
type EncTB interface {
	Rate() int
	Distortion() int
	Reconstruct(img ImageAccessor, x, y, xBase, yBase, blkIdx int) error
	Release()
}

// CABACContext is the opaque, clonable arithmetic-coder state threaded
// through every trial so sibling trials never observe each other's bins.
type CABACContext interface {
	Clone() CABACContext
}

// RDBitsEstimator reports the CABAC RD-bits cost of a single bin, per
// spec.md §4.4's mpmRate term.
type RDBitsEstimator interface {
	RDBitsForBin(ctx CABACContext, bin int) float64
}

// cabacEstimatorAdapter lets intra.SignallingRate's generic `any` context
// call into a typed RDBitsEstimator without internal/intra importing
// internal/search.
type cabacEstimatorAdapter struct{ est RDBitsEstimator }

func (a cabacEstimatorAdapter) RDBitsForBin(ctx any, bin int) float64 {
	cc, _ := ctx.(CABACContext)
	return a.est.RDBitsForBin(cc, bin)
}

func asIntraEstimator(est RDBitsEstimator) intra.RDBitsEstimator {
	if est == nil {
		return nil
	}
	return cabacEstimatorAdapter{est: est}
}

// MetricKind selects the C5 distortion metric MinResidual and FastBrute
// score candidate modes with.
type MetricKind int

const (
	MetricSSD MetricKind = iota
	MetricSAD
	MetricSATDDCT
	MetricSATDHadamard
)

// Config holds the per-search tunables of spec.md §4.6 and §9.
type Config struct {
	Lambda          float64
	EnabledModes    [hevcimage.NumIntraModes]bool
	KeepNBest       int
	Metric          MetricKind
	Estimator       RDBitsEstimator
	StrongSmoothing bool

	// Stats, if non-nil, receives per-trial RD costs and commit/error
	// counts from every strategy run, per SPEC_FULL.md §10's observability
	// surface. A nil Stats costs nothing on the hot path.
	Stats *observability.Stats

	// Trace, if non-nil, receives a human-readable log line per trial and
	// per commit.
	Trace *observability.TraceLogger
}

// DefaultConfig returns a Config with every mode enabled and a neutral
// lambda, matching BruteForce's "try every enabled mode" default.
func DefaultConfig() Config {
	c := Config{Lambda: 1.0, KeepNBest: 4, Metric: MetricSATDHadamard}
	for m := range c.EnabledModes {
		c.EnabledModes[m] = true
	}
	return c
}
