package hevcimage

// SequenceParams holds the read-only per-sequence parameters (SPS) that
// the availability and prediction logic needs. bit_depth_luma is assumed to
// be 8 throughout this core, matching spec.md's data model.
type SequenceParams struct {
	Log2CtbSizeY       int
	Log2MinTrafoSize   int
	PicWidthInCtbsY    int
	PicWidthInMinPUs   int
	PicWidthInTbsY     int
	PicWidthInLumaSamples  int
	PicHeightInLumaSamples int

	BitDepthLuma int // assumed 8

	StrongIntraSmoothingEnableFlag bool

	// ChromaFormatIDC is fixed to 1 (4:2:0), named explicitly rather than
	// implied by the data model's "chroma planes are half-size" assumption.
	ChromaFormatIDC int

	// Log2MaxIntraSize/Log2MinIntraSize bound the transform block sizes a
	// prediction call (intra.Predict) accepts (4..32
	// samples, i.e. log2 2..5, per spec.md §4's four supported block
	// sizes). Zero means "unset", in which case callers fall back to the
	// fixed {4,8,16,32} range.
	Log2MaxIntraSize int
	Log2MinIntraSize int
}

// IntraSizeBounds returns the (min, max) transform block size in samples
// this SPS permits, defaulting to HEVC's fixed {4..32} range when the SPS
// leaves the derived bounds unset.
func (s *SequenceParams) IntraSizeBounds() (minNT, maxNT int) {
	minNT, maxNT = 4, 32
	if s.Log2MinIntraSize != 0 {
		minNT = 1 << s.Log2MinIntraSize
	}
	if s.Log2MaxIntraSize != 0 {
		maxNT = 1 << s.Log2MaxIntraSize
	}
	return minNT, maxNT
}

// CtbSizeY returns 1<<Log2CtbSizeY.
func (s *SequenceParams) CtbSizeY() int { return 1 << s.Log2CtbSizeY }

// PictureParams holds the read-only per-picture parameters (PPS).
type PictureParams struct {
	ConstrainedIntraPredFlag bool

	// TileIDRS maps a CTB raster-scan address to its tile id.
	TileIDRS []int

	// MinTbAddrZS maps a min-TB raster index to its z-scan address.
	MinTbAddrZS []int

	// LoopFilterAcrossTilesEnabled is carried through from the PPS but has
	// no effect on availability in this core; see SPEC_FULL.md §3.
	LoopFilterAcrossTilesEnabled bool
}
