package search

import (
	"github.com/hevc-go/intracore/internal/hevcimage"
	"github.com/hevc-go/intracore/internal/intra"
)

// synthesizeChroma runs C1-C3 a second time over the Cb and Cr planes at
// half geometry, using the winning luma mode, per SPEC_FULL.md §4.7. A
// chroma block size below 4 (a 4x4 luma block) is raised to 4.
func synthesizeChroma(img *hevcimage.WorkingImage, x, y, log2TbSize int, mode hevcimage.IntraMode) error {
	nT := 1 << log2TbSize
	cx, cy, cnT := x/2, y/2, nT/2
	if cnT < 4 {
		cnT = 4
	}
	for _, cIdx := range [2]int{hevcimage.CIdxCb, hevcimage.CIdxCr} {
		block, err := intra.Predict(img, cx, cy, cnT, cIdx, mode)
		if err != nil {
			return err
		}
		for dy := 0; dy < cnT; dy++ {
			for dx := 0; dx < cnT; dx++ {
				img.SetPlaneAtPos(cIdx, cx+dx, cy+dy, block.At(dx, dy))
			}
		}
		intra.Release(block)
	}
	return nil
}
