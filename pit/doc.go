// Package pit provides permutation-invariant training (PIT) loss search.
//
// Source-separation models emit their k sources in arbitrary order; PIT
// resolves the ambiguity by searching the k! output↔target bijections for
// the one minimizing a caller-supplied loss, independently per batch
// element. Four strategies are available on a distance-to-assignment
// trade-off:
//
//   - PairwiseMatrix — the loss supplies a [batch, k, k] pairwise table;
//     the search scans all k! matchings over it. Cheapest when the loss
//     decomposes pairwise. Exact.
//
//   - PairwisePoint — a single-source loss is lifted into the pairwise
//     table one (estimate, target) pair at a time, then searched as
//     above. Exact; for losses without a batched pairwise form.
//
//   - Direct — the full-batch loss is evaluated once per permutation of
//     the estimates. Required when the loss does not decompose pairwise.
//     Exact; k! loss evaluations.
//
//   - Relaxed — a Sinkhorn continuous relaxation over the pairwise table
//     for k too large to enumerate. Approximate by design; the returned
//     reordering hardens the soft assignment by greedy argmax.
//
// All exact strategies share the enumerate→evaluate→select→reconstruct
// pipeline: candidates come from comb.Permutations in a fixed order, the
// per-batch minimum is taken with first-occurrence tie-breaking, and the
// optional reordering re-derives exactly the tensor the evaluator scored
// for each element's winning permutation.
//
// Use this package for k up to the low teens; k! growth is the caller's
// scaling constraint, not a runtime safeguard.
package pit
