package loss

import (
	"errors"

	"github.com/arvhn/permix/tensor"
)

// ErrShape indicates that estimate and target tensors disagree on a
// dimension a loss function requires to match.
var ErrShape = errors.New("loss: shape mismatch")

// Kwargs carries opaque per-call options through a wrapper to the loss
// function (e.g. "zero_mean" for the SI-SDR family). Wrappers forward it
// untouched; a nil map is always valid.
type Kwargs map[string]any

// Func is a full-batch loss: it scores est against tgt and returns one
// scalar per batch element, len == est.Batch(). Returning any other
// length is a caller contract violation surfaced by the wrappers.
type Func func(est, tgt *tensor.Dense, kw Kwargs) ([]float64, error)

// PairFunc is a pairwise loss: it returns a [batch, k, k] table where
// entry (b, i, j) scores estimate i of batch element b against target j.
type PairFunc func(est, tgt *tensor.Dense, kw Kwargs) (*tensor.Dense, error)

// SingleFunc is a single-source loss on batches of rows: est and tgt are
// [batch][frames] slices and the result is one scalar per batch element.
type SingleFunc func(est, tgt [][]float64, kw Kwargs) ([]float64, error)

// Bool reads a boolean kwarg, falling back to def when the key is absent
// or holds a non-bool value.
func (kw Kwargs) Bool(key string, def bool) bool {
	if kw == nil {
		return def
	}
	if v, ok := kw[key].(bool); ok {
		return v
	}
	return def
}

// checkPair validates the common preconditions of the reference losses:
// non-nil tensors, equal batch sizes and equal frame counts.
func checkPair(est, tgt *tensor.Dense) error {
	if est == nil || tgt == nil {
		return tensor.ErrNilTensor
	}
	if est.Batch() != tgt.Batch() || est.Frames() != tgt.Frames() {
		return ErrShape
	}
	return nil
}
