package distortion

import (
	"math"

	"github.com/hevc-go/intracore/internal/search/pool"
)

// dctShift is the fixed-point scale applied to dctMatrixOf's coefficients.
const dctShift = 8

// dctMatrixCache holds the generated fixed-point type-II DCT matrix for
// each supported block size, built once in init.
var dctMatrixCache = map[int][]int32{}

func init() {
	for _, n := range []int{4, 8, 16, 32} {
		dctMatrixCache[n] = buildDCTMatrix(n)
	}
}

// buildDCTMatrix generates an n-by-n fixed-point type-II DCT basis, row
// m holding scale*cos(pi*(2x+1)*m/(2n)) for x=0..n-1, matching the
// structure (if not the exact per-size constants) of the teacher's
// fTransform fixed-point rotation factors generalised across sizes.
func buildDCTMatrix(n int) []int32 {
	out := make([]int32, n*n)
	scale := float64(int(1) << dctShift)
	for m := 0; m < n; m++ {
		c := math.Sqrt(1.0 / float64(n))
		if m != 0 {
			c = math.Sqrt(2.0 / float64(n))
		}
		for x := 0; x < n; x++ {
			v := c * math.Cos(math.Pi*(2*float64(x)+1)*float64(m)/(2*float64(n)))
			out[m*n+x] = int32(math.Round(v * scale))
		}
	}
	return out
}

// dct1D applies the n-point fixed-point DCT-II matrix to a, writing the
// rounded, descaled result back into a.
func dct1D(a []int32, n int) {
	mat := dctMatrixCache[n]
	out := make([]int32, n)
	for m := 0; m < n; m++ {
		var acc int64
		row := mat[m*n : m*n+n]
		for x := 0; x < n; x++ {
			acc += int64(row[x]) * int64(a[x])
		}
		out[m] = int32((acc + (1 << (dctShift - 1))) >> dctShift)
	}
	copy(a, out)
}

// dct2D applies dct1D to every row, then every column, of an n-by-n block.
func dct2D(block []int32, n int) {
	row := make([]int32, n)
	for y := 0; y < n; y++ {
		copy(row, block[y*n:y*n+n])
		dct1D(row, n)
		copy(block[y*n:y*n+n], row)
	}
	col := make([]int32, n)
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			col[y] = block[y*n+x]
		}
		dct1D(col, n)
		for y := 0; y < n; y++ {
			block[y*n+x] = col[y]
		}
	}
}

// SATDDCT computes the forward-DCT-style SATD of spec.md §4.5: form the
// signed difference block, apply the size-indexed integer DCT, and sum the
// absolute coefficients.
func SATDDCT(a []uint8, aStride int, b []uint8, bStride int, n int) int64 {
	block := diffBlock(a, aStride, b, bStride, n)
	dct2D(block, n)
	var sum int64
	for _, c := range block {
		sum += int64(abs32(c))
	}
	pool.PutInt32(block)
	return sum
}
