package intra

import "github.com/hevc-go/intracore/internal/search/pool"

// PredBlock is an nT-by-nT predicted sample block, row-major with Stride==N.
// Its backing buffer comes from pool, per spec.md §5's "no dynamic
// allocation on the hot path" rule: callers done with a block should call
// Release to return it.
type PredBlock struct {
	Pix    []uint8
	Stride int
	N      int
}

// NewPredBlock allocates an nT-by-nT prediction block from the shared byte
// pool and zeroes it.
func NewPredBlock(nT int) *PredBlock {
	buf := pool.Get(nT * nT)
	for i := range buf {
		buf[i] = 0
	}
	return &PredBlock{Pix: buf, Stride: nT, N: nT}
}

// Release returns p's backing buffer to the pool. p must not be used again
// afterwards.
func Release(p *PredBlock) {
	pool.Put(p.Pix)
}

// At returns the sample at (x,y).
func (p *PredBlock) At(x, y int) uint8 { return p.Pix[y*p.Stride+x] }

// Set writes the sample at (x,y).
func (p *PredBlock) Set(x, y int, v uint8) { p.Pix[y*p.Stride+x] = v }

// log2 returns log2(n) for n a power of two in {4,8,16,32}; it panics for
// anything else, matching spec.md §7's "unsupported nT" precondition
// violation.
func log2(n int) int {
	switch n {
	case 4:
		return 2
	case 8:
		return 3
	case 16:
		return 4
	case 32:
		return 5
	default:
		panic("intra: unsupported transform block size")
	}
}
