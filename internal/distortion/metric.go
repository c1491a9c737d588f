// Package distortion implements C5: the SSD, SAD, and SATD block-distortion
// metrics used by the mode-search strategies in internal/search to score a
// candidate intra prediction against the original samples.
package distortion

import "github.com/hevc-go/intracore/internal/search/pool"

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// SSD returns Σ(a-b)² over an n-by-n block, reading a at stride aStride and
// b at stride bStride.
func SSD(a []uint8, aStride int, b []uint8, bStride int, n int) int64 {
	var sum int64
	for y := 0; y < n; y++ {
		ao, bo := y*aStride, y*bStride
		for x := 0; x < n; x++ {
			d := int(a[ao+x]) - int(b[bo+x])
			sum += int64(d * d)
		}
	}
	return sum
}

// SAD returns Σ|a-b| over an n-by-n block.
func SAD(a []uint8, aStride int, b []uint8, bStride int, n int) int64 {
	var sum int64
	for y := 0; y < n; y++ {
		ao, bo := y*aStride, y*bStride
		for x := 0; x < n; x++ {
			sum += int64(abs(int(a[ao+x]) - int(b[bo+x])))
		}
	}
	return sum
}

// diffBlock forms the signed difference block a-b as a flat row-major int32
// slice sized via the coefficient-scratch pool, the common input both SATD
// transforms operate on.
func diffBlock(a []uint8, aStride int, b []uint8, bStride int, n int) []int32 {
	out := pool.GetInt32(n * n)
	for y := 0; y < n; y++ {
		ao, bo := y*aStride, y*bStride
		for x := 0; x < n; x++ {
			out[y*n+x] = int32(a[ao+x]) - int32(b[bo+x])
		}
	}
	return out
}
