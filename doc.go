// Package intracore implements the HEVC/H.265 intra-prediction core and the
// encoder-side intra mode decision that selects, per luma transform block,
// one of the 35 directional/planar/DC prediction modes under a
// rate-distortion objective.
//
// The package is split into:
//
//   - internal/hevcimage: the plane/SPS/PPS/per-block data model.
//   - internal/intra: reference-sample availability and fill, smoothing,
//     and the planar/DC/angular prediction kernels (bit-exact).
//   - internal/distortion: SSD, SAD, and SATD distortion metrics.
//   - internal/search: the BruteForce, MinResidual, and FastBrute mode
//     search strategies built on top of the above.
//
// Bitstream parsing, inter prediction, the transform/quantisation path, and
// CABAC coding beyond a single RD-bits estimator are external collaborators
// and are not implemented here; see internal/search for the interfaces they
// must satisfy.
package intracore
