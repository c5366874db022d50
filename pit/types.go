// Package pit: sentinel error set, strategy modes and Options.
// All search paths MUST return these sentinels and tests MUST check them
// via errors.Is. No code path panics on user input.
package pit

import "errors"

var (
	// ErrUnknownMode is returned by New when Options.Mode is not one of
	// the declared Mode constants.
	ErrUnknownMode = errors.New("pit: unknown search mode")

	// ErrLossKind is returned by New when the supplied loss function's
	// signature does not match the selected mode (e.g. a full-batch loss
	// with PairwiseMatrix).
	ErrLossKind = errors.New("pit: loss function kind does not match mode")

	// ErrNilInput indicates a nil estimate or target tensor.
	ErrNilInput = errors.New("pit: nil input tensor")

	// ErrBatchShape indicates that estimates and targets disagree on the
	// batch dimension.
	ErrBatchShape = errors.New("pit: batch size mismatch")

	// ErrSourceShape indicates that the estimate and target source counts
	// differ; PIT requires exactly k estimates for k targets.
	ErrSourceShape = errors.New("pit: source count mismatch")

	// ErrFrameShape indicates differing signal lengths between estimates
	// and targets.
	ErrFrameShape = errors.New("pit: frame count mismatch")

	// ErrLossShape indicates that the loss function violated its contract
	// by returning a result of unexpected shape.
	ErrLossShape = errors.New("pit: loss returned unexpected shape")

	// ErrBadOption indicates an invalid Options field (negative Parallel,
	// non-positive Beta or Iterations for the relaxed mode).
	ErrBadOption = errors.New("pit: invalid option value")
)

// Mode selects the permutation-search strategy.
type Mode int

const (
	// PairwiseMatrix searches over a loss-supplied [batch, k, k] table.
	PairwiseMatrix Mode = iota

	// PairwisePoint lifts a single-source loss into the pairwise table,
	// then searches it like PairwiseMatrix.
	PairwisePoint

	// Direct evaluates the full-batch loss once per permutation.
	Direct

	// Relaxed runs a Sinkhorn soft-assignment over the pairwise table.
	Relaxed
)

// String returns the mode's canonical name.
func (m Mode) String() string {
	switch m {
	case PairwiseMatrix:
		return "pairwise_matrix"
	case PairwisePoint:
		return "pairwise_point"
	case Direct:
		return "direct"
	case Relaxed:
		return "relaxed"
	default:
		return "unknown"
	}
}

// Options configures a Wrapper.
//
// Fields:
//   - Mode          — search strategy; see the Mode constants.
//   - ReturnReorder — if true, Compute also returns the estimates
//     reordered by each batch element's winning permutation.
//   - Parallel      — cap on concurrent candidate evaluations in Direct
//     mode; 0 means GOMAXPROCS. Negative values are rejected.
//   - Beta          — Sinkhorn temperature (Relaxed only); smaller values
//     sharpen the soft assignment toward a hard permutation.
//   - Iterations    — Sinkhorn row/column normalization rounds (Relaxed
//     only).
type Options struct {
	Mode          Mode
	ReturnReorder bool
	Parallel      int
	Beta          float64
	Iterations    int
}

// DefaultOptions returns the canonical defaults: exact pairwise-matrix
// search, no reordering, GOMAXPROCS workers, and a Sinkhorn configuration
// sharp enough to recover clean permutations on well-separated inputs.
func DefaultOptions() Options {
	return Options{
		Mode:       PairwiseMatrix,
		Beta:       0.1,
		Iterations: 200,
	}
}
