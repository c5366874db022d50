// Package mixit: sentinel error set, modes and Options.
// All search paths MUST return these sentinels and tests MUST check them
// via errors.Is. No code path panics on user input.
package mixit

import "errors"

var (
	// ErrUnknownMode is returned by New when Options.Mode is not one of
	// the declared Mode constants.
	ErrUnknownMode = errors.New("mixit: unknown search mode")

	// ErrNilLoss indicates that New received a nil loss function.
	ErrNilLoss = errors.New("mixit: nil loss function")

	// ErrNilInput indicates a nil estimate or target tensor.
	ErrNilInput = errors.New("mixit: nil input tensor")

	// ErrBatchShape indicates that estimates and targets disagree on the
	// batch dimension.
	ErrBatchShape = errors.New("mixit: batch size mismatch")

	// ErrFrameShape indicates differing signal lengths between estimates
	// and targets.
	ErrFrameShape = errors.New("mixit: frame count mismatch")

	// ErrGroupCount is returned in EqualGroups mode when the estimated
	// source count is not divisible by the mixture count.
	ErrGroupCount = errors.New("mixit: source count not divisible by mixture count")

	// ErrMixtureCount is returned in Generalized mode when the target
	// holds a mixture count other than two.
	ErrMixtureCount = errors.New("mixit: generalized mode requires exactly two mixtures")

	// ErrLossShape indicates that the loss function violated its contract
	// by returning a result of unexpected length.
	ErrLossShape = errors.New("mixit: loss returned unexpected shape")

	// ErrBadOption indicates an invalid Options field (negative Parallel).
	ErrBadOption = errors.New("mixit: invalid option value")
)

// Mode selects the partition-search variant.
type Mode int

const (
	// EqualGroups partitions k sources into m groups of size k/m.
	EqualGroups Mode = iota

	// Generalized partitions k sources into two groups of any size,
	// silent mixtures included.
	Generalized
)

// String returns the mode's canonical name.
func (m Mode) String() string {
	switch m {
	case EqualGroups:
		return "equal_groups"
	case Generalized:
		return "generalized"
	default:
		return "unknown"
	}
}

// Options configures a Wrapper.
//
// Fields:
//   - Mode        — partition-search variant; see the Mode constants.
//   - ReturnRemix — if true, Compute also returns the estimated mixtures
//     (sources summed by each batch element's winning partition).
//   - Parallel    — cap on concurrent candidate evaluations; 0 means
//     GOMAXPROCS. Negative values are rejected.
type Options struct {
	Mode        Mode
	ReturnRemix bool
	Parallel    int
}

// DefaultOptions returns the canonical defaults: equal-group search, no
// remix, GOMAXPROCS workers.
func DefaultOptions() Options {
	return Options{Mode: EqualGroups}
}
