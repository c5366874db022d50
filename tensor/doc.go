// Package tensor provides the batched dense float64 storage used by the
// permutation and partition search wrappers.
//
// A Dense holds a batch of src×frames signal matrices in one flat,
// row-major slice:
//
//	value(b, s, f) = data[((b*src)+s)*frames + f]
//
// The layout is deliberately minimal: the search core only needs
// bounds-checked access, source-axis gathers (permutation candidates),
// grouped source summation (partition candidates), and a zero-copy bridge
// into gonum's mat.Dense for the linear-algebra paths (Sinkhorn relaxation).
//
// All operations are pure and reentrant; no method mutates its receiver
// unless the name says so (Set, Fill, MixGroup writing into out).
//
// Use this package when you need the search wrappers' data substrate,
// not as a general linear-algebra library — gonum serves that role.
package tensor
