package intra

import "github.com/hevc-go/intracore/internal/hevcimage"

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// filterEnabled reports whether C2's 1-2-1/strong smoothing applies, per
// spec.md §4.2: cIdx==0, mode != DC, nT != 4, and mode far enough from the
// pure horizontal (10) / vertical (26) directions for this block size.
func filterEnabled(mode hevcimage.IntraMode, cIdx, nT int) bool {
	if cIdx != hevcimage.CIdxY || mode == hevcimage.IntraDC || nT == 4 {
		return false
	}
	d := abs(int(mode) - 26)
	if dh := abs(int(mode) - 10); dh < d {
		d = dh
	}
	switch nT {
	case 8:
		return d > 7
	case 16:
		return d > 1
	case 32:
		return d > 0
	default:
		return false
	}
}

// strongSmoothingApplies implements the bi-linear gate of spec.md §4.2:
// only at nT==32, and only if both diagonal-linearity tests pass.
func strongSmoothingApplies(border *Border, nT, bitDepth int, strongEnableFlag bool) bool {
	if !strongEnableFlag || nT != 32 {
		return false
	}
	threshold := 1 << (bitDepth - 5)
	top := abs(border.Get(0) + border.Get(2*nT) - 2*border.Get(nT))
	left := abs(border.Get(0) + border.Get(-2*nT) - 2*border.Get(-nT))
	return top < threshold && left < threshold
}

// FilterReferenceSamples applies C2 to border and returns the result,
// selecting strong bi-linear interpolation or the 1-2-1 filter per
// spec.md §4.2. Strong smoothing rewrites border in place and returns it;
// the 1-2-1 filter returns a filtered copy and leaves border unchanged. If
// smoothing is not enabled for (mode,cIdx,nT), border is returned
// unmodified (I-Smoothing).
func FilterReferenceSamples(border *Border, mode hevcimage.IntraMode, cIdx, nT, bitDepth int, strongEnableFlag bool) *Border {
	if !filterEnabled(mode, cIdx, nT) {
		return border
	}

	if strongSmoothingApplies(border, nT, bitDepth, strongEnableFlag) {
		p0 := border.Get(0)
		topEnd := border.Get(2 * nT)
		leftEnd := border.Get(-2 * nT)
		for i := 1; i <= 63; i++ {
			border.Set(i, p0+((i*(topEnd-p0)+32)>>6))
			border.Set(-i, p0+((i*(leftEnd-p0)+32)>>6))
		}
		return border
	}

	filtered := border.Clone()
	for i := -2*nT + 1; i <= 2*nT-1; i++ {
		v := (border.Get(i+1) + 2*border.Get(i) + border.Get(i-1) + 2) >> 2
		filtered.Set(i, v)
	}
	return filtered
}
