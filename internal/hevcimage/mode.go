package hevcimage

// PredMode distinguishes intra- from inter-coded blocks.
type PredMode uint8

const (
	PredModeIntra PredMode = iota
	PredModeInter
)

// IntraMode is one of the 35 HEVC luma intra prediction modes.
type IntraMode int8

// Named modes from spec.md §3. All other values in [2,34] are angular.
const (
	IntraPlanar     IntraMode = 0
	IntraDC         IntraMode = 1
	IntraAngular10  IntraMode = 10
	IntraAngular26  IntraMode = 26
	IntraAngular34  IntraMode = 34
)

// NumIntraModes is the number of defined luma intra modes.
const NumIntraModes = 35

// IsAngular reports whether m is one of the directional modes 2..34.
func (m IntraMode) IsAngular() bool {
	return m >= 2 && m <= 34
}

// Valid reports whether m is a well-formed mode index.
func (m IntraMode) Valid() bool {
	return m >= 0 && m < NumIntraModes
}
