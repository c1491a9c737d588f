package intra

import "testing"

func TestPlanarUniformBorderProducesUniformBlock(t *testing.T) {
	for _, nT := range []int{4, 8, 16, 32} {
		b := uniformBorderFor(nT, 88)
		block := Planar(b, nT)
		for y := 0; y < nT; y++ {
			for x := 0; x < nT; x++ {
				if got := block.At(x, y); got != 88 {
					t.Fatalf("nT=%d: Planar[%d,%d]=%d, want 88 (I-Planar)", nT, x, y, got)
				}
			}
		}
	}
}
