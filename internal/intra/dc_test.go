package intra

import "testing"

func TestDCUniformBorderProducesUniformBlock(t *testing.T) {
	for _, nT := range []int{4, 8, 16, 32} {
		b := uniformBorderFor(nT, 64)
		block := DC(b, nT, 0)
		for y := 0; y < nT; y++ {
			for x := 0; x < nT; x++ {
				if got := block.At(x, y); got != 64 {
					t.Fatalf("nT=%d: DC[%d,%d]=%d, want 64 (I-DC)", nT, x, y, got)
				}
			}
		}
	}
}

func TestDCPostFilterSkippedAt32AndForChroma(t *testing.T) {
	b := uniformBorderFor(32, 1)
	b.Set(-1, 200) // would perturb the post-filtered corner if applied
	block := DC(b, 32, 0)
	if got := block.At(0, 0); got != block.At(5, 5) {
		t.Fatalf("DC post-filter must not apply at nT==32: corner=%d, interior=%d", got, block.At(5, 5))
	}

	b16 := uniformBorderFor(16, 1)
	b16.Set(-1, 200)
	chromaBlock := DC(b16, 16, 1)
	if got := chromaBlock.At(0, 0); got != chromaBlock.At(5, 5) {
		t.Fatalf("DC post-filter must not apply for chroma: corner=%d, interior=%d", got, chromaBlock.At(5, 5))
	}
}

func TestDCValueMatchesFormula(t *testing.T) {
	b := uniformBorderFor(8, 10)
	if got := DCValue(b, 8); got != 10 {
		t.Fatalf("DCValue = %d, want 10", got)
	}
}
