package hevcimage

// BlockMeta holds the per-block state that availability derivation and mode
// search read and write: prediction mode, PCM flag, slice/tile addressing,
// and the per-min-PU stored intra mode grid.
//
// IntraPredMode is indexed by PU index exactly as spec.md §4.4 describes:
// the left neighbour of a PU at index puIdx is puIdx-1, and the above
// neighbour is puIdx-PicWidthInMinPUs.
type BlockMeta struct {
	sps *SequenceParams

	// predMode/pcmFlag/chromaMode are addressed by minimum-PU grid position
	// (x,y in luma samples, quantised to the min-PU grid by the caller).
	predMode  []PredMode
	pcmFlag   []bool
	chromaMode []IntraMode
	gridW     int
	gridH     int
	minPUSize int

	// intraPredMode is addressed by PU index (spec.md §4.4 PUidx indexing).
	intraPredMode []IntraMode

	// sliceAddrRS is addressed by CTB raster-scan index.
	sliceAddrRS []int
}

// NewBlockMeta allocates per-block metadata for a picture of the given size
// (in luma samples), using minPUSize as the minimum PU grid spacing and
// ctbCount CTBs for slice addressing.
func NewBlockMeta(sps *SequenceParams, widthLuma, heightLuma, minPUSize, ctbCount int) *BlockMeta {
	gridW := (widthLuma + minPUSize - 1) / minPUSize
	gridH := (heightLuma + minPUSize - 1) / minPUSize
	return &BlockMeta{
		sps:           sps,
		gridW:         gridW,
		gridH:         gridH,
		minPUSize:     minPUSize,
		predMode:      make([]PredMode, gridW*gridH),
		pcmFlag:       make([]bool, gridW*gridH),
		chromaMode:    make([]IntraMode, gridW*gridH),
		intraPredMode: make([]IntraMode, gridW*gridH),
		sliceAddrRS:   make([]int, ctbCount),
	}
}

func (m *BlockMeta) gridIndex(x, y int) int {
	return (y/m.minPUSize)*m.gridW + (x / m.minPUSize)
}

// PredMode returns the prediction mode of the block covering luma position (x,y).
func (m *BlockMeta) PredMode(x, y int) PredMode {
	return m.predMode[m.gridIndex(x, y)]
}

// SetPredMode sets the prediction mode of the block covering (x,y).
func (m *BlockMeta) SetPredMode(x, y int, mode PredMode) {
	m.predMode[m.gridIndex(x, y)] = mode
}

// PCMFlag returns whether the block covering (x,y) is PCM-coded.
func (m *BlockMeta) PCMFlag(x, y int) bool {
	return m.pcmFlag[m.gridIndex(x, y)]
}

// SetPCMFlag sets the PCM flag of the block covering (x,y).
func (m *BlockMeta) SetPCMFlag(x, y int, v bool) {
	m.pcmFlag[m.gridIndex(x, y)] = v
}

// ChromaMode returns the chroma intra mode recorded for the block covering
// luma position (x,y).
func (m *BlockMeta) ChromaMode(x, y int) IntraMode {
	return m.chromaMode[m.gridIndex(x, y)]
}

// SetChromaMode stores the chroma intra mode for every min-PU covered by a
// log2TbSize block whose top-left luma sample is (x,y), per spec.md §4.6
// step (b): "if blkIdx==0 also set chroma_mode=m".
func (m *BlockMeta) SetChromaMode(x, y, log2TbSize int, mode IntraMode) {
	size := 1 << log2TbSize
	for dy := 0; dy < size; dy += m.minPUSize {
		for dx := 0; dx < size; dx += m.minPUSize {
			xi, yi := x+dx, y+dy
			if xi >= m.gridW*m.minPUSize || yi >= m.gridH*m.minPUSize {
				continue
			}
			m.chromaMode[m.gridIndex(xi, yi)] = mode
		}
	}
}

// PUIndex converts a luma (x,y) position into the PU index used by
// IntraPredModeAtIndex / SetIntraPredMode, matching spec.md §4.4.
func (m *BlockMeta) PUIndex(x, y int) int {
	return m.gridIndex(x, y)
}

// IntraPredModeAtIndex returns the stored intra mode for the PU at puIdx.
// puIdx values outside [0, len) (e.g. PUidx-1 on the picture's left edge)
// must be guarded by the caller via availability, not by this accessor.
func (m *BlockMeta) IntraPredModeAtIndex(puIdx int) IntraMode {
	return m.intraPredMode[puIdx]
}

// SetIntraPredMode stores mode for every min-PU covered by a log2TbSize
// block whose top-left luma sample is (x,y), matching spec.md §6's
// set_IntraPredMode(x,y,log2,mode).
func (m *BlockMeta) SetIntraPredMode(x, y, log2TbSize int, mode IntraMode) {
	size := 1 << log2TbSize
	for dy := 0; dy < size; dy += m.minPUSize {
		for dx := 0; dx < size; dx += m.minPUSize {
			xi, yi := x+dx, y+dy
			if xi >= m.gridW*m.minPUSize || yi >= m.gridH*m.minPUSize {
				continue
			}
			m.intraPredMode[m.gridIndex(xi, yi)] = mode
		}
	}
}

// SliceAddrRS returns the slice address of the CTB at raster-scan position
// (ctbX, ctbY).
func (m *BlockMeta) SliceAddrRS(ctbX, ctbY int) int {
	idx := ctbY*m.sps.PicWidthInCtbsY + ctbX
	if idx < 0 || idx >= len(m.sliceAddrRS) {
		return -1
	}
	return m.sliceAddrRS[idx]
}

// SetSliceAddrRS sets the slice address of the CTB at raster-scan position (ctbX, ctbY).
func (m *BlockMeta) SetSliceAddrRS(ctbX, ctbY, addr int) {
	idx := ctbY*m.sps.PicWidthInCtbsY + ctbX
	m.sliceAddrRS[idx] = addr
}
