// Package deepiv wires an optional deep-learning runtime into the deep
// instrumental-variable factory.
//
// The runtime is a capability resolved once at start-up. When no runtime is
// linked the capability records why, and constructing the deep-IV factory
// returns an *UnavailableError carrying that cause; the other factories are
// unaffected.
//
// Networks trained by the runtime work in single precision and answer with
// runtime tensors. Adapter hides both: float64 columns are narrowed to
// float32 before Fit and Estimate, and tensor results are returned as gonum
// matrices.
package deepiv
