// Package intra implements the HEVC intra-prediction synthesis core: C1
// neighbour availability and reference fill, C2 reference smoothing, C3 the
// planar/DC/angular prediction kernels, and C4 the MPM candidate list.
// Every formula, shift, and rounding constant here is bit-exact-normative;
// see SPEC_FULL.md §4 and §9.
package intra

import "github.com/hevc-go/intracore/internal/hevcimage"

// Border holds the 4*nT+1 reference samples around a transform block,
// indexed symmetrically from -2*nT to +2*nT: index 0 is the top-left
// sample, negative indices run down the left column, positive indices run
// right along the top row. This mirrors spec.md §4.1's indexing exactly;
// the backing array is offset by 2*nT so Go's non-negative slice indices
// still work.
type Border struct {
	buf []int
	nT  int
}

func newBorder(nT int) *Border {
	return &Border{buf: make([]int, 4*nT+1), nT: nT}
}

// Get returns border[i] for i in [-2*nT, 2*nT].
func (b *Border) Get(i int) int { return b.buf[2*b.nT+i] }

// Set writes border[i] for i in [-2*nT, 2*nT].
func (b *Border) Set(i, v int) { b.buf[2*b.nT+i] = v }

// Len returns 4*nT+1.
func (b *Border) Len() int { return len(b.buf) }

// NT returns the transform block size this border was built for.
func (b *Border) NT() int { return b.nT }

// Clone returns a deep copy of b, used by the 1-2-1 smoothing filter so
// that it reads the unfiltered border while writing the filtered one.
func (b *Border) Clone() *Border {
	c := &Border{buf: make([]int, len(b.buf)), nT: b.nT}
	copy(c.buf, b.buf)
	return c
}

// neighbourAvailable implements spec.md §4.1's availability derivation for
// a single neighbour luma sample at (xN,yN), given the current block's
// luma top-left (xBL,yBL) and sequence/picture parameters.
func neighbourAvailable(img *hevcimage.WorkingImage, xBL, yBL, xN, yN int) bool {
	sps, pps := img.SPS, img.PPS
	if xN < 0 || yN < 0 {
		return false
	}
	if xN >= sps.PicWidthInLumaSamples || yN >= sps.PicHeightInLumaSamples {
		return false
	}

	ctbSize := sps.CtbSizeY()
	ctbXN, ctbYN := xN/ctbSize, yN/ctbSize
	ctbXC, ctbYC := xBL/ctbSize, yBL/ctbSize

	if img.SliceAddrRS(ctbXN, ctbYN) != img.SliceAddrRS(ctbXC, ctbYC) {
		return false
	}

	ctbRSN := ctbYN*sps.PicWidthInCtbsY + ctbXN
	ctbRSC := ctbYC*sps.PicWidthInCtbsY + ctbXC
	if img.TileIDRS(ctbRSN) != img.TileIDRS(ctbRSC) {
		return false
	}

	minTbSize := 1 << sps.Log2MinTrafoSize
	minTbRSN := (yN/minTbSize)*sps.PicWidthInTbsY + (xN / minTbSize)
	minTbRSC := (yBL/minTbSize)*sps.PicWidthInTbsY + (xBL / minTbSize)
	if img.MinTbAddrZS(minTbRSN) >= img.MinTbAddrZS(minTbRSC) {
		return false
	}

	if pps.ConstrainedIntraPredFlag && img.PredMode(xN, yN) != hevcimage.PredModeIntra {
		return false
	}
	return true
}

// FillBorderSamples computes C1: the flat border array of length 4*nT+1
// around the block at plane-cIdx position (xB,yB) of size nT, with
// substitution for any unavailable sample. bitDepth is the sample bit
// depth (8, per spec.md's data model).
func FillBorderSamples(img *hevcimage.WorkingImage, xB, yB, nT, cIdx, bitDepth int) *Border {
	xBL, yBL := xB, yB
	if cIdx != hevcimage.CIdxY {
		xBL, yBL = 2*xB, 2*yB
	}

	b := newBorder(nT)
	avail := make([]bool, b.Len())

	haveFirst := false
	firstValue := 0

	// Index order -2*nT .. +2*nT is exactly the traversal order spec.md
	// §4.1 describes: left column bottom-up, top-left, top row left-right.
	for i := -2 * nT; i <= 2*nT; i++ {
		var xP, yP int // plane-cIdx coordinates of this border position
		switch {
		case i < 0:
			xP, yP = xB-1, yB+(-i-1)
		case i == 0:
			xP, yP = xB-1, yB-1
		default:
			xP, yP = xB+i-1, yB-1
		}

		xN, yN := xP, yP
		if cIdx != hevcimage.CIdxY {
			xN, yN = 2*xP, 2*yP
		}

		ok := neighbourAvailable(img, xBL, yBL, xN, yN)
		idx := 2*nT + i
		avail[idx] = ok
		if ok {
			v := int(img.GetPlaneAtPos(cIdx, xP, yP))
			b.buf[idx] = v
			if !haveFirst {
				haveFirst = true
				firstValue = v
			}
		}
	}

	if !haveFirst {
		neutral := 1 << (bitDepth - 1)
		for i := range b.buf {
			b.buf[i] = neutral
		}
		return b
	}

	if !avail[0] { // border[-2*nT]
		b.buf[0] = firstValue
	}
	for idx := 1; idx < len(b.buf); idx++ {
		if !avail[idx] {
			b.buf[idx] = b.buf[idx-1]
		}
	}
	return b
}
