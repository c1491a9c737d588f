// Package hevcimage holds the image-plane, sequence/picture parameter, and
// per-block metadata model that the intra-prediction core reads from and
// writes into. It has no dependency on the prediction or search packages;
// they depend on it through the accessor methods on WorkingImage.
package hevcimage

// Plane is a raster of 8-bit samples with a stride. Reads and writes within
// [0,Width)x[0,Height) are always valid; Stride >= Width is an invariant
// callers must establish when constructing a Plane.
type Plane struct {
	Pix    []uint8
	Stride int
	Width  int
	Height int
}

// NewPlane allocates a Plane of the given dimensions with Stride == width.
func NewPlane(width, height int) *Plane {
	return &Plane{
		Pix:    make([]uint8, width*height),
		Stride: width,
		Width:  width,
		Height: height,
	}
}

// At returns the sample at (x,y). The caller must ensure the position is
// in-bounds; this is a hot-path accessor and performs no bounds checking
// beyond what the slice index itself enforces.
func (p *Plane) At(x, y int) uint8 {
	return p.Pix[y*p.Stride+x]
}

// Set writes the sample at (x,y).
func (p *Plane) Set(x, y int, v uint8) {
	p.Pix[y*p.Stride+x] = v
}

// PtrOffset returns the flat index of (x,y) within Pix, for callers that
// want to slice a sub-row directly (e.g. for SIMD-style bulk copies).
func (p *Plane) PtrOffset(x, y int) int {
	return y*p.Stride + x
}

// InBounds reports whether (x,y) lies within [0,Width)x[0,Height).
func (p *Plane) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < p.Width && y < p.Height
}
