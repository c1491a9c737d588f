package intra

// Planar computes the INTRA_PLANAR prediction, per spec.md §4.3:
//
//	pred[x,y] = ((nT-1-x)*border[-1-y] + (x+1)*border[1+nT] +
//	             (nT-1-y)*border[1+x] + (y+1)*border[-1-nT] + nT)
//	            >> (log2(nT)+1)
func Planar(border *Border, nT int) *PredBlock {
	out := NewPredBlock(nT)
	shift := log2(nT) + 1
	topRight := border.Get(1 + nT)
	bottomLeft := border.Get(-1 - nT)
	for y := 0; y < nT; y++ {
		left := border.Get(-1 - y)
		for x := 0; x < nT; x++ {
			top := border.Get(1 + x)
			v := (nT-1-x)*left + (x+1)*topRight + (nT-1-y)*top + (y+1)*bottomLeft + nT
			out.Set(x, y, uint8(v>>shift))
		}
	}
	return out
}
