package hevcimage

// Plane indices, matching spec.md's "three planes (Y, Cb, Cr)".
const (
	CIdxY  = 0
	CIdxCb = 1
	CIdxCr = 2
)

// WorkingImage is the mutable reconstructed picture the search and
// prediction packages operate on. It composes the three sample planes with
// the per-block metadata and the read-only sequence/picture parameters, and
// implements every accessor named in spec.md §6.
//
// Only the winning trial's reconstruction needs to survive a mode search;
// callers must not read a block's contents while a search over it is in
// progress, per spec.md §5.
type WorkingImage struct {
	SPS  *SequenceParams
	PPS  *PictureParams
	Meta *BlockMeta

	planes [3]*Plane
}

// NewWorkingImage builds a 4:2:0 working image: the chroma planes are
// allocated at half width/height, per spec.md §3.
func NewWorkingImage(sps *SequenceParams, pps *PictureParams, meta *BlockMeta) *WorkingImage {
	w, h := sps.PicWidthInLumaSamples, sps.PicHeightInLumaSamples
	return &WorkingImage{
		SPS:  sps,
		PPS:  pps,
		Meta: meta,
		planes: [3]*Plane{
			NewPlane(w, h),
			NewPlane((w+1)/2, (h+1)/2),
			NewPlane((w+1)/2, (h+1)/2),
		},
	}
}

// Plane returns the raw plane for cIdx (0=Y, 1=Cb, 2=Cr).
func (img *WorkingImage) Plane(cIdx int) *Plane { return img.planes[cIdx] }

// GetPlaneAtPos returns the sample at (x,y) in plane cIdx, or 0 if
// out-of-bounds. Matches spec.md §6's get_image_plane_at_pos.
func (img *WorkingImage) GetPlaneAtPos(cIdx, x, y int) uint8 {
	p := img.planes[cIdx]
	if !p.InBounds(x, y) {
		return 0
	}
	return p.At(x, y)
}

// SetPlaneAtPos writes the sample at (x,y) in plane cIdx.
func (img *WorkingImage) SetPlaneAtPos(cIdx, x, y int, v uint8) {
	img.planes[cIdx].Set(x, y, v)
}

// Stride returns the stride of plane cIdx, matching get_image_stride.
func (img *WorkingImage) Stride(cIdx int) int { return img.planes[cIdx].Stride }

// PredMode returns the prediction mode of the block at luma position (x,y).
func (img *WorkingImage) PredMode(x, y int) PredMode { return img.Meta.PredMode(x, y) }

// PCMFlag returns the PCM flag of the block at luma position (x,y).
func (img *WorkingImage) PCMFlag(x, y int) bool { return img.Meta.PCMFlag(x, y) }

// SliceAddrRS returns the slice address of CTB (ctbX, ctbY).
func (img *WorkingImage) SliceAddrRS(ctbX, ctbY int) int { return img.Meta.SliceAddrRS(ctbX, ctbY) }

// TileIDRS returns the tile id of CTB raster-scan address ctbRS, or -1 if
// out of range.
func (img *WorkingImage) TileIDRS(ctbRS int) int {
	if ctbRS < 0 || ctbRS >= len(img.PPS.TileIDRS) {
		return -1
	}
	return img.PPS.TileIDRS[ctbRS]
}

// MinTbAddrZS returns the z-scan address of the min-TB at raster index
// minTbRS, or -1 if out of range.
func (img *WorkingImage) MinTbAddrZS(minTbRS int) int {
	if minTbRS < 0 || minTbRS >= len(img.PPS.MinTbAddrZS) {
		return -1
	}
	return img.PPS.MinTbAddrZS[minTbRS]
}

// IntraPredModeAtIndex returns the stored intra mode for PU index puIdx.
func (img *WorkingImage) IntraPredModeAtIndex(puIdx int) IntraMode {
	return img.Meta.IntraPredModeAtIndex(puIdx)
}

// SetIntraPredMode stores mode into the per-min-PU grid for the block at
// (x,y) sized 1<<log2TbSize.
func (img *WorkingImage) SetIntraPredMode(x, y, log2TbSize int, mode IntraMode) {
	img.Meta.SetIntraPredMode(x, y, log2TbSize, mode)
}

// ChromaMode returns the stored chroma intra mode for the block at (x,y).
func (img *WorkingImage) ChromaMode(x, y int) IntraMode { return img.Meta.ChromaMode(x, y) }

// SetChromaMode stores mode into the per-min-PU chroma-mode grid for the
// block at (x,y) sized 1<<log2TbSize.
func (img *WorkingImage) SetChromaMode(x, y, log2TbSize int, mode IntraMode) {
	img.Meta.SetChromaMode(x, y, log2TbSize, mode)
}
