// Package pit - unified dispatcher for permutation search strategies.
//
// This file provides the canonical entry points:
//
//   - New: bind a loss function and Options into a Wrapper, validating the
//     mode and the loss signature at construction.
//   - Compute: validate tensors, route to the requested strategy, take the
//     per-batch stable minimum and optionally reconstruct the reordered
//     estimates.
//
// Design principles:
//   - Deterministic: fixed candidate order; first-minimum tie-breaking.
//   - Strict sentinels: only errors from types.go; no fmt.Errorf where a
//     sentinel suffices.
//   - No cross-call state: each Compute call enumerates, scores and
//     discards its own candidate pool; calls are reentrant.
package pit

import (
	"runtime"

	"github.com/arvhn/permix/comb"
	"github.com/arvhn/permix/loss"
	"github.com/arvhn/permix/tensor"
)

// Wrapper binds one loss function and one strategy. Exactly one of the
// three loss fields is set, matching Options.Mode.
type Wrapper struct {
	pair   loss.PairFunc
	single loss.SingleFunc
	full   loss.Func
	opts   Options
}

// New validates opts and binds fn, which must be (assignable to) the loss
// flavor the mode consumes:
//
//	PairwiseMatrix, Relaxed → loss.PairFunc
//	PairwisePoint           → loss.SingleFunc
//	Direct                  → loss.Func
//
// Errors: ErrUnknownMode, ErrLossKind, ErrBadOption.
//
// Complexity: O(1).
func New(fn any, opts Options) (*Wrapper, error) {
	if opts.Parallel < 0 {
		return nil, ErrBadOption
	}

	w := &Wrapper{opts: opts}
	switch f := fn.(type) {
	case loss.PairFunc:
		w.pair = f
	case func(est, tgt *tensor.Dense, kw loss.Kwargs) (*tensor.Dense, error):
		w.pair = f
	case loss.SingleFunc:
		w.single = f
	case func(est, tgt [][]float64, kw loss.Kwargs) ([]float64, error):
		w.single = f
	case loss.Func:
		w.full = f
	case func(est, tgt *tensor.Dense, kw loss.Kwargs) ([]float64, error):
		w.full = f
	default:
		return nil, ErrLossKind
	}

	switch opts.Mode {
	case PairwiseMatrix:
		if w.pair == nil {
			return nil, ErrLossKind
		}
	case PairwisePoint:
		if w.single == nil {
			return nil, ErrLossKind
		}
	case Direct:
		if w.full == nil {
			return nil, ErrLossKind
		}
	case Relaxed:
		if w.pair == nil {
			return nil, ErrLossKind
		}
		if opts.Beta <= 0 || opts.Iterations < 1 {
			return nil, ErrBadOption
		}
	default:
		return nil, ErrUnknownMode
	}

	return w, nil
}

// Compute finds the loss-minimizing permutation per batch element and
// returns the batch-mean minimum loss. When Options.ReturnReorder is set,
// the second result holds the estimates reordered by each element's own
// winning permutation (shape identical to tgt); otherwise it is nil.
//
// Contracts:
//   - est and tgt share batch size, source count and frame count.
//   - kw is forwarded untouched to the loss function; nil is valid.
//
// Errors: shape sentinels from types.go, ErrLossShape on a loss contract
// violation, and any error returned by the loss itself.
//
// Complexity: per strategy — PairwiseMatrix/PairwisePoint O(k!·k·batch)
// scan over the table (plus one table build), Direct O(k!) loss calls,
// Relaxed O(Iterations·k²·batch).
func (w *Wrapper) Compute(est, tgt *tensor.Dense, kw loss.Kwargs) (float64, *tensor.Dense, error) {
	if err := validateInputs(est, tgt); err != nil {
		return 0, nil, err
	}

	var (
		minv     []float64
		winPerms [][]int
		err      error
	)

	switch w.opts.Mode {
	case PairwiseMatrix, PairwisePoint:
		minv, winPerms, err = w.bestPermPairwise(est, tgt, kw)
	case Direct:
		minv, winPerms, err = w.bestPermDirect(est, tgt, kw)
	case Relaxed:
		minv, winPerms, err = w.bestPermRelaxed(est, tgt, kw)
	default:
		return 0, nil, ErrUnknownMode
	}
	if err != nil {
		return 0, nil, err
	}

	meanLoss := meanOf(minv)
	if !w.opts.ReturnReorder {
		return meanLoss, nil, nil
	}

	reordered, err := reorderSources(est, winPerms)
	if err != nil {
		return 0, nil, err
	}

	return meanLoss, reordered, nil
}

// validateInputs enforces the shared tensor contract before any strategy
// runs: non-nil inputs, equal batch, equal source count (k == m for PIT)
// and equal frame count.
// Complexity: O(1).
func validateInputs(est, tgt *tensor.Dense) error {
	if est == nil || tgt == nil {
		return ErrNilInput
	}
	if est.Batch() != tgt.Batch() {
		return ErrBatchShape
	}
	if est.Sources() != tgt.Sources() {
		return ErrSourceShape
	}
	if est.Frames() != tgt.Frames() {
		return ErrFrameShape
	}
	return nil
}

// workers resolves the candidate-scoring concurrency cap.
func (w *Wrapper) workers() int {
	if w.opts.Parallel > 0 {
		return w.opts.Parallel
	}
	return runtime.GOMAXPROCS(0)
}

// selectMin reduces a [batch][candidates] loss table to the per-batch
// minimum value and winning candidate index. The scan keeps the first
// strictly smaller value, so ties resolve to the lowest candidate index —
// a hard reproducibility requirement, not an implementation detail.
// Complexity: O(batch·candidates).
func selectMin(table [][]float64) (minv []float64, argmin []int) {
	minv = make([]float64, len(table))
	argmin = make([]int, len(table))

	var (
		b, c int
		row  []float64
	)
	for b, row = range table {
		minv[b] = row[0]
		argmin[b] = 0
		for c = 1; c < len(row); c++ {
			if row[c] < minv[b] {
				minv[b] = row[c]
				argmin[b] = c
			}
		}
	}
	return minv, argmin
}

// pickPerms maps per-batch winning candidate indices back to the shared
// permutation pool.
func pickPerms(perms [][]int, argmin []int) [][]int {
	out := make([][]int, len(argmin))
	var b int
	for b = range argmin {
		out[b] = perms[argmin[b]]
	}
	return out
}

// reorderSources rebuilds the estimates with each batch element's own
// winning permutation: out(b, j, :) = est(b, perms[b][j], :). This is an
// index-driven per-element gather — never one shared permutation applied
// across the batch.
// Complexity: O(batch·k·frames).
func reorderSources(est *tensor.Dense, perms [][]int) (*tensor.Dense, error) {
	out := est.CloneShape()
	var b int
	for b = 0; b < est.Batch(); b++ {
		if err := est.GatherBatch(out, b, perms[b]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// meanOf returns the arithmetic mean of v; the scalar training loss is
// the batch mean of per-element minima.
func meanOf(v []float64) float64 {
	var (
		sum float64
		x   float64
	)
	for _, x = range v {
		sum += x
	}
	return sum / float64(len(v))
}

// permutations wraps comb.Permutations; k was validated upstream so the
// only possible error is a programmer one, surfaced as ErrBadOption.
func permutations(k int) ([][]int, error) {
	perms, err := comb.Permutations(k)
	if err != nil {
		return nil, ErrBadOption
	}
	return perms, nil
}
