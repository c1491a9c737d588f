package distortion

import "github.com/hevc-go/intracore/internal/search/pool"

// hadamard1D applies an in-place natural-order Walsh-Hadamard butterfly to a
// slice whose length is a power of two, generalising the 4-point pattern of
// the teacher's transformWHT to sizes 4, 8, 16, and 32.
func hadamard1D(a []int32) {
	n := len(a)
	for size := 1; size < n; size *= 2 {
		for start := 0; start < n; start += size * 2 {
			for i := 0; i < size; i++ {
				u := a[start+i]
				v := a[start+i+size]
				a[start+i] = u + v
				a[start+i+size] = u - v
			}
		}
	}
}

// hadamard2D applies hadamard1D to every row, then every column, of an
// n-by-n block stored row-major in block.
func hadamard2D(block []int32, n int) {
	row := make([]int32, n)
	for y := 0; y < n; y++ {
		copy(row, block[y*n:y*n+n])
		hadamard1D(row)
		copy(block[y*n:y*n+n], row)
	}
	col := make([]int32, n)
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			col[y] = block[y*n+x]
		}
		hadamard1D(col)
		for y := 0; y < n; y++ {
			block[y*n+x] = col[y]
		}
	}
}

// SATDHadamard computes the Hadamard-domain SATD of spec.md §4.5: form the
// signed difference block, apply the size-indexed Hadamard transform, and
// sum the absolute coefficients.
func SATDHadamard(a []uint8, aStride int, b []uint8, bStride int, n int) int64 {
	block := diffBlock(a, aStride, b, bStride, n)
	hadamard2D(block, n)
	var sum int64
	for _, c := range block {
		sum += int64(abs32(c))
	}
	pool.PutInt32(block)
	return sum
}

func abs32(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}
