// Package permix is an in-memory toolkit for the combinatorial assignment
// searches behind permutation-invariant and mixture-invariant
// source-separation training.
//
// 🚀 What is permix?
//
//	A small, deterministic library that brings together:
//		• Candidate enumeration: permutations, equal-size set partitions,
//		  generalized two-way partitions
//		• PIT search: pairwise-matrix, per-point, direct and Sinkhorn-relaxed
//		  strategies over all k! output↔target bijections
//		• MixIT search: equal-group and generalized partition search over
//		  estimated sources vs. mixture targets
//		• Batched tensors: flat row-major [batch, src, frames] storage with a
//		  gonum bridge for the linear-algebra paths
//
// ✨ Why choose permix?
//
//   - Deterministic – stable enumeration order, first-minimum tie-breaking,
//     reproducible training losses across runs and platforms
//   - Batch-honest – every batch element picks its own winning assignment;
//     nothing is ever broadcast across the batch
//   - Strict sentinels – configuration and shape violations surface as
//     package-level errors, never as silent corrections
//
// Under the hood, everything is organized under five subpackages:
//
//	tensor/ — batched dense float64 tensors + gonum views
//	comb/   — candidate enumeration (pure combinatorics)
//	loss/   — loss-function contracts + reference MSE / neg-SI-SDR losses
//	pit/    — permutation-invariant search wrapper
//	mixit/  — mixture-invariant partition search wrapper
//
// Quick sketch: with 4 estimated sources and 2 target mixtures, equal-group
// MixIT scores exactly 3 partitions —
//
//	{{0,1},{2,3}}  {{0,2},{1,3}}  {{0,3},{1,2}}
//
// — and each batch element keeps the partition that minimizes its own loss.
//
// Scaling note: permutation search grows as k! and generalized partition
// search as 2^k; both are intended for single-digit to low-teens source
// counts, evaluated once per training step.
//
//	go get github.com/arvhn/permix
package permix
