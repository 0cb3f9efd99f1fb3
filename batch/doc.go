// Package batch applies vector operations to whole slices of float64
// vectors at once.
//
// Each function splits its input into one contiguous plane per component
// (all x values, then all y values, ...) and runs the algo-vecmath block
// kernels over those planes, which use AVX2, SSE2 or NEON when available.
// Results are written back into a caller-provided destination slice, so in
// steady state the only allocations are pooled scratch planes.
//
// All slices passed to one call must have the same length. Mismatched
// lengths panic, as they do in the underlying kernels.
//
// Square roots go through the same backend as package vector, so building
// with -tags fastmath changes batch and scalar magnitudes alike.
//
// Normalizing a zero vector yields NaN components, the same as
// vector.Normalize2 and friends.
package batch
