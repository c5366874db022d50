// Package comb enumerates the candidate assignments searched by the PIT
// and MixIT wrappers.
//
// It provides three enumerations over the source index set {0..k-1}:
//
//   - Permutations — all k! bijections, in lexicographic order.
//
//   - EqualPartitions — all partitions into m groups of size k/m, each
//     partition emitted once with groups ordered by smallest member.
//     Count: k! / ((k/m)!^m · m!).
//
//   - TwoWayPartitions — all 2^k ordered (subset, complement) splits,
//     enumerated by subset size then lexicographic subset order; empty
//     groups are included (the silent-mixture case).
//
// All enumerations are fully materialized (bounded k makes this cheap),
// deterministic and independent of any tensor data: the same k always
// yields the identical candidate list in the identical order. Downstream
// tie-breaking and reconstruction index into that order, so stability is
// a contract, not an implementation detail.
//
// Use this package for single-digit to low-teens k; the counts above grow
// factorially/exponentially and callers are expected to bound k.
package comb
