// Package pool provides bucketed sync.Pool instances for reducing allocations
// in hot paths. Buffers are organized by size class to minimize waste.
package pool

import "sync"

// Size classes for bucketed pools.
const (
	Size256B = 256
	Size1K   = 1024
	Size4K   = 4096
	Size16K  = 16384
	Size64K  = 65536
	Size256K = 262144
	Size1M   = 1048576
)

// bucketIndex returns the pool index for a given size.
func bucketIndex(size int) int {
	switch {
	case size <= Size256B:
		return 0
	case size <= Size1K:
		return 1
	case size <= Size4K:
		return 2
	case size <= Size16K:
		return 3
	case size <= Size64K:
		return 4
	case size <= Size256K:
		return 5
	default:
		return 6
	}
}

var sizes = [7]int{Size256B, Size1K, Size4K, Size16K, Size64K, Size256K, Size1M}

var pools [7]sync.Pool

func init() {
	for i := range pools {
		sz := sizes[i]
		pools[i] = sync.Pool{
			New: func() any {
				b := make([]byte, sz)
				return &b
			},
		}
	}
}

// Get returns a byte slice of at least the requested size from the pool.
// The returned slice has length == size and may have a larger capacity.
// The caller must call Put when done.
func Get(size int) []byte {
	idx := bucketIndex(size)
	bp := pools[idx].Get().(*[]byte)
	b := *bp
	if cap(b) < size {
		b = make([]byte, size)
		*bp = b
		return b
	}
	return b[:size]
}

// Put returns a byte slice to the pool. The slice must have been obtained
// from Get. Slices smaller than Size256B are not pooled.
func Put(b []byte) {
	c := cap(b)
	if c < Size256B {
		return
	}
	idx := bucketIndex(c)
	b = b[:c]
	pools[idx].Put(&b)
}

// int32Sizes are the bucket upper bounds in element count, one per
// supported transform block size (nT*nT for nT in {4,8,16,32}) — the
// coefficient scratch buffer SATDDCT/SATDHadamard form in internal/distortion.
var int32Sizes = [4]int{16, 64, 256, 1024}

var int32Pools [4]sync.Pool

func init() {
	for i := range int32Pools {
		sz := int32Sizes[i]
		int32Pools[i] = sync.Pool{
			New: func() any {
				b := make([]int32, sz)
				return &b
			},
		}
	}
}

func int32BucketIndex(length int) int {
	for i, sz := range int32Sizes {
		if length <= sz {
			return i
		}
	}
	return len(int32Sizes) - 1
}

// GetInt32 returns an int32 slice of at least the requested length from the
// pool. The returned slice has length == length and may have a larger
// capacity. The caller must call PutInt32 when done.
func GetInt32(length int) []int32 {
	idx := int32BucketIndex(length)
	bp := int32Pools[idx].Get().(*[]int32)
	b := *bp
	if cap(b) < length {
		b = make([]int32, length)
		*bp = b
		return b
	}
	return b[:length]
}

// PutInt32 returns an int32 slice to the pool. The slice must have been
// obtained from GetInt32.
func PutInt32(b []int32) {
	c := cap(b)
	if c == 0 {
		return
	}
	idx := int32BucketIndex(c)
	b = b[:c]
	int32Pools[idx].Put(&b)
}
