// Package mixit provides mixture-invariant training (MixIT) loss search.
//
// MixIT trains on mixtures instead of isolated sources: a model emits k
// estimated sources, the training targets are m reference mixtures, and
// the search finds the partition of the k estimate indices into m groups
// whose grouped-and-summed estimates best match the targets — resolved
// independently per batch element. Two modes are available:
//
//   - EqualGroups — the equal-split case: k must be divisible by m and every
//     group holds exactly k/m sources. Candidates come from
//     comb.EqualPartitions; for k=4, m=2 that is exactly the 3 partitions
//     {{0,1},{2,3}}, {{0,2},{1,3}}, {{0,3},{1,2}}.
//
//   - Generalized — the two-mixture case (m must be 2) with groups of any
//     size, including empty (a silent mixture is a valid candidate, not
//     an error). Candidates come from comb.TwoWayPartitions: all 2^k
//     ordered splits.
//
// Both modes share the enumerate→evaluate→select→remix pipeline: each
// candidate's synthesized mixtures are scored by a caller-supplied
// full-batch loss, the per-batch minimum is taken with first-occurrence
// tie-breaking, and the optional remix re-derives exactly the mixture
// tensor the evaluator scored for each element's winning partition.
//
// Generalized-mode candidate count grows as 2^k; callers bound k.
package mixit
