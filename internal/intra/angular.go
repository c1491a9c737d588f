package intra

import "github.com/hevc-go/intracore/internal/hevcimage"

// angleTable is intraPredAngle indexed by mode, per spec.md §4.3. Indices
// 0 and 1 (planar, DC) are never read through this table.
var angleTable = [35]int{
	0, 0,
	32, 26, 21, 17, 13, 9, 5, 2, 0, -2, -5, -9, -13, -17, -21, -26, -32,
	-26, -21, -17, -13, -9, -5, -2, 0, 2, 5, 9, 13, 17, 21, 26, 32,
}

// invAngleTable is invAngle indexed by mode, defined only for modes 11..25
// (the only modes with a negative intraPredAngle), per spec.md §4.3.
var invAngleTable = [35]int{
	11: -4096, 12: -1638, 13: -910, 14: -630, 15: -482, 16: -390, 17: -315,
	18: -256,
	19: -315, 20: -390, 21: -482, 22: -630, 23: -910, 24: -1638, 25: -4096,
}

// refBuffer is a projected reference row/column indexable from -nT to 2*nT,
// used by Angular to build the extended reference array of spec.md §4.3.
type refBuffer struct {
	buf []int
	nT  int
}

func newRefBuffer(nT int) *refBuffer {
	return &refBuffer{buf: make([]int, 3*nT+1), nT: nT}
}

func (r *refBuffer) get(x int) int  { return r.buf[r.nT+x] }
func (r *refBuffer) set(x, v int)   { r.buf[r.nT+x] = v }

// Angular computes one of the directional intra modes 2..34, per
// spec.md §4.3, including the negative-angle reference projection and the
// mode-26/mode-10 luma post-filter.
func Angular(border *Border, nT, cIdx int, mode hevcimage.IntraMode) *PredBlock {
	angle := angleTable[mode]
	out := NewPredBlock(nT)

	if mode >= 18 {
		ref := newRefBuffer(nT)
		for x := 0; x <= nT; x++ {
			ref.set(x, border.Get(x))
		}
		if angle < 0 {
			invAngle := invAngleTable[mode]
			// With lo == -1 no prediction reads ref[-1], and projecting it
			// would index past the border for small nT.
			lo := (nT * angle) >> 5
			for x := lo; x <= -1 && lo < -1; x++ {
				ref.set(x, border.Get(-((x*invAngle+128)>>8)))
			}
		} else {
			for x := nT + 1; x <= 2*nT; x++ {
				ref.set(x, border.Get(x))
			}
		}

		for y := 0; y < nT; y++ {
			iIdx := ((y + 1) * angle) >> 5
			iFact := ((y + 1) * angle) & 31
			for x := 0; x < nT; x++ {
				var pred int
				if iFact != 0 {
					pred = ((32-iFact)*ref.get(x+iIdx+1) + iFact*ref.get(x+iIdx+2) + 16) >> 5
				} else {
					pred = ref.get(x + iIdx + 1)
				}
				out.Set(x, y, uint8(pred))
			}
		}
	} else {
		ref := newRefBuffer(nT)
		for x := 0; x <= nT; x++ {
			ref.set(x, border.Get(-x))
		}
		if angle < 0 {
			invAngle := invAngleTable[mode]
			lo := (nT * angle) >> 5
			for x := lo; x <= -1 && lo < -1; x++ {
				ref.set(x, border.Get((x*invAngle+128)>>8))
			}
		} else {
			for x := nT + 1; x <= 2*nT; x++ {
				ref.set(x, border.Get(-x))
			}
		}

		for x := 0; x < nT; x++ {
			iIdx := ((x + 1) * angle) >> 5
			iFact := ((x + 1) * angle) & 31
			for y := 0; y < nT; y++ {
				var pred int
				if iFact != 0 {
					pred = ((32-iFact)*ref.get(y+iIdx+1) + iFact*ref.get(y+iIdx+2) + 16) >> 5
				} else {
					pred = ref.get(y + iIdx + 1)
				}
				out.Set(x, y, uint8(pred))
			}
		}
	}

	if cIdx == hevcimage.CIdxY && nT < 32 {
		switch mode {
		case hevcimage.IntraAngular26:
			for y := 0; y < nT; y++ {
				v := clip8(border.Get(1) + ((border.Get(-1-y) - border.Get(0)) >> 1))
				out.Set(0, y, v)
			}
		case hevcimage.IntraAngular10:
			for x := 0; x < nT; x++ {
				v := clip8(border.Get(-1) + ((border.Get(1+x) - border.Get(0)) >> 1))
				out.Set(x, 0, v)
			}
		}
	}

	return out
}
