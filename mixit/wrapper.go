// Package mixit - unified dispatcher for partition search.
//
// This file provides the canonical entry points:
//
//   - New: bind a full-batch loss and Options into a Wrapper, validating
//     the mode at construction.
//   - Compute: validate tensors, enumerate the mode's candidate
//     partitions, score them, take the per-batch stable minimum and
//     optionally reconstruct the estimated mixtures.
//
// Design principles:
//   - Deterministic: fixed candidate order; first-minimum tie-breaking.
//   - Strict sentinels: only errors from types.go; divisibility and
//     mixture-count violations surface on the first call, never silently
//     corrected.
//   - No cross-call state: the candidate pool is rebuilt from input
//     shapes on every call and discarded afterwards; calls are reentrant.
package mixit

import (
	"runtime"

	"github.com/arvhn/permix/comb"
	"github.com/arvhn/permix/loss"
	"github.com/arvhn/permix/tensor"
)

// Wrapper binds one full-batch loss function and one partition mode.
type Wrapper struct {
	fn   loss.Func
	opts Options
}

// New validates opts and binds fn.
// Errors: ErrNilLoss, ErrUnknownMode, ErrBadOption.
// Complexity: O(1).
func New(fn loss.Func, opts Options) (*Wrapper, error) {
	if fn == nil {
		return nil, ErrNilLoss
	}
	if opts.Parallel < 0 {
		return nil, ErrBadOption
	}
	switch opts.Mode {
	case EqualGroups, Generalized:
		// ok
	default:
		return nil, ErrUnknownMode
	}

	return &Wrapper{fn: fn, opts: opts}, nil
}

// Compute finds the loss-minimizing partition per batch element and
// returns the batch-mean minimum loss. When Options.ReturnRemix is set,
// the second result holds the estimated mixtures — sources summed by each
// element's own winning partition, shape identical to tgt; otherwise it
// is nil.
//
// Contracts:
//   - est is [batch, k, frames], tgt is [batch, m, frames] with the same
//     batch and frame counts.
//   - EqualGroups requires k divisible by m; Generalized requires m == 2.
//   - kw is forwarded untouched to the loss function; nil is valid.
//
// Errors: shape and configuration sentinels from types.go, ErrLossShape
// on a loss contract violation, and any error returned by the loss.
//
// Complexity: O(#candidates) loss evaluations; #candidates is
// k!/((k/m)!^m·m!) for EqualGroups and 2^k for Generalized.
func (w *Wrapper) Compute(est, tgt *tensor.Dense, kw loss.Kwargs) (float64, *tensor.Dense, error) {
	if err := validateInputs(est, tgt); err != nil {
		return 0, nil, err
	}

	parts, err := w.candidates(est.Sources(), tgt.Sources())
	if err != nil {
		return 0, nil, err
	}

	lossTab, err := w.evaluate(est, tgt, parts, kw)
	if err != nil {
		return 0, nil, err
	}

	minv, argmin := selectMin(lossTab)
	meanLoss := meanOf(minv)

	if !w.opts.ReturnRemix {
		return meanLoss, nil, nil
	}

	remixed, err := remixSources(est, tgt.Sources(), parts, argmin)
	if err != nil {
		return 0, nil, err
	}

	return meanLoss, remixed, nil
}

// candidates enumerates the mode's partition pool for k sources and m
// mixtures. The pool depends only on shapes, never on tensor values.
func (w *Wrapper) candidates(k, m int) ([][][]int, error) {
	switch w.opts.Mode {
	case EqualGroups:
		if k%m != 0 {
			return nil, ErrGroupCount
		}
		return comb.EqualPartitions(k, m)
	case Generalized:
		if m != 2 {
			return nil, ErrMixtureCount
		}
		return comb.TwoWayPartitions(k)
	default:
		return nil, ErrUnknownMode
	}
}

// validateInputs enforces the shared tensor contract: non-nil inputs,
// equal batch and equal frame counts. Source counts are mode-specific and
// checked in candidates.
// Complexity: O(1).
func validateInputs(est, tgt *tensor.Dense) error {
	if est == nil || tgt == nil {
		return ErrNilInput
	}
	if est.Batch() != tgt.Batch() {
		return ErrBatchShape
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
