package pit_test

import (
	"math/rand"
	"testing"

	"github.com/arvhn/permix/loss"
	"github.com/arvhn/permix/pit"
	"github.com/arvhn/permix/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randTensor fills a batch×src×frames tensor from a fixed-seed stream;
// deterministic across runs and platforms by the same policy the library
// itself follows (seeded streams, no time-based randomness).
func randTensor(t *testing.T, rng *rand.Rand, batch, src, frames int) *tensor.Dense {
	t.Helper()
	d, err := tensor.NewDense(batch, src, frames)
	require.NoError(t, err)
	for b := 0; b < batch; b++ {
		for s := 0; s < src; s++ {
			for f := 0; f < frames; f++ {
				require.NoError(t, d.Set(b, s, f, rng.NormFloat64()))
			}
		}
	}
	return d
}

// assertTensorsEqual compares two tensors elementwise within tol.
func assertTensorsEqual(t *testing.T, want, got *tensor.Dense, tol float64) {
	t.Helper()
	require.Equal(t, want.Batch(), got.Batch())
	require.Equal(t, want.Sources(), got.Sources())
	require.Equal(t, want.Frames(), got.Frames())
	for b := 0; b < want.Batch(); b++ {
		for s := 0; s < want.Sources(); s++ {
			for f := 0; f < want.Frames(); f++ {
				wv, err := want.At(b, s, f)
				require.NoError(t, err)
				gv, err := got.At(b, s, f)
				require.NoError(t, err)
				require.InDelta(t, wv, gv, tol, "(%d,%d,%d)", b, s, f)
			}
		}
	}
}

// TestCompute_CrossStrategyEquivalence verifies that for a
// pairwise-decomposable loss the pairwise-matrix, pairwise-point and
// direct strategies produce identical scalar losses and reorderings.
func TestCompute_CrossStrategyEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, k := range []int{2, 3, 4} {
		est := randTensor(t, rng, 2, k, 16)
		tgt := randTensor(t, rng, 2, k, 16)

		opts := pit.DefaultOptions()
		opts.ReturnReorder = true

		opts.Mode = pit.PairwiseMatrix
		wMtx, err := pit.New(loss.PairwiseMSE, opts)
		require.NoError(t, err)

		opts.Mode = pit.PairwisePoint
		wPt, err := pit.New(loss.SingleSrcMSE, opts)
		require.NoError(t, err)

		opts.Mode = pit.Direct
		wDir, err := pit.New(loss.MultiSrcMSE, opts)
		require.NoError(t, err)

		lMtx, rMtx, err := wMtx.Compute(est, tgt, nil)
		require.NoError(t, err)
		lPt, rPt, err := wPt.Compute(est, tgt, nil)
		require.NoError(t, err)
		lDir, rDir, err := wDir.Compute(est, tgt, nil)
		require.NoError(t, err)

		assert.InDelta(t, lMtx, lPt, 1e-12, "k=%d", k)
		assert.InDelta(t, lPt, lDir, 1e-12, "k=%d", k)
		assertTensorsEqual(t, rMtx, rPt, 0)
		assertTensorsEqual(t, rPt, rDir, 0)
	}
}

// TestCompute_PerBatchWinners builds a batch of two where element 0 needs
// a swap and element 1 is already aligned: the winning permutation must
// differ per element and the reordering must fix only element 0.
func TestCompute_PerBatchWinners(t *testing.T) {
	tgt, err := tensor.NewDenseOf(2, 2, 3, []float64{
		// element 0 targets
		1, 1, 1, 2, 2, 2,
		// element 1 targets
		3, 3, 3, 4, 4, 4,
	})
	require.NoError(t, err)

	est, err := tensor.NewDenseOf(2, 2, 3, []float64{
		// element 0: swapped
		2, 2, 2, 1, 1, 1,
		// element 1: aligned
		3, 3, 3, 4, 4, 4,
	})
	require.NoError(t, err)

	opts := pit.DefaultOptions()
	opts.ReturnReorder = true
	w, err := pit.New(loss.PairwiseMSE, opts)
	require.NoError(t, err)

	lossVal, reordered, err := w.Compute(est, tgt, nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, lossVal, 1e-12)
	assertTensorsEqual(t, tgt, reordered, 0)
}

// TestCompute_TieBreakFirstCandidate feeds a constant loss so every
// permutation ties; the winner must be candidate 0 (identity), leaving
// the estimates unchanged.
func TestCompute_TieBreakFirstCandidate(t *testing.T) {
	constant := func(est, tgt *tensor.Dense, _ loss.Kwargs) ([]float64, error) {
		out := make([]float64, est.Batch())
		for i := range out {
			out[i] = 1.5
		}
		return out, nil
	}

	opts := pit.DefaultOptions()
	opts.Mode = pit.Direct
	opts.ReturnReorder = true
	opts.Parallel = 1
	w, err := pit.New(constant, opts)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(3))
	est := randTensor(t, rng, 2, 3, 4)
	tgt := randTensor(t, rng, 2, 3, 4)

	lossVal, reordered, err := w.Compute(est, tgt, nil)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, lossVal, 1e-12)
	// Identity permutation (candidate 0) must win every tie.
	assertTensorsEqual(t, est, reordered, 0)
}

// TestCompute_ReorderRoundTrip recomputes the loss on the returned
// reordering: its aligned loss must equal the reported minimum.
func TestCompute_ReorderRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	est := randTensor(t, rng, 3, 3, 8)
	tgt := randTensor(t, rng, 3, 3, 8)

	opts := pit.DefaultOptions()
	opts.Mode = pit.Direct
	opts.ReturnReorder = true
	w, err := pit.New(loss.MultiSrcMSE, opts)
	require.NoError(t, err)

	minLoss, reordered, err := w.Compute(est, tgt, nil)
	require.NoError(t, err)

	aligned, err := loss.MultiSrcMSE(reordered, tgt, nil)
	require.NoError(t, err)

	var mean float64
	for _, v := range aligned {
		mean += v
	}
	mean /= float64(len(aligned))
	assert.InDelta(t, minLoss, mean, 1e-12)
}

// TestCompute_KwargsForwarded verifies the opaque kwargs reach the loss.
func TestCompute_KwargsForwarded(t *testing.T) {
	var got any
	spy := func(est, tgt *tensor.Dense, kw loss.Kwargs) ([]float64, error) {
		got = kw["gain"]
		return make([]float64, est.Batch()), nil
	}

	opts := pit.DefaultOptions()
	opts.Mode = pit.Direct
	opts.Parallel = 1
	w, err := pit.New(spy, opts)
	require.NoError(t, err)

	est, err := tensor.NewDense(1, 2, 2)
	require.NoError(t, err)
	tgt, err := tensor.NewDense(1, 2, 2)
	require.NoError(t, err)

	_, _, err = w.Compute(est, tgt, loss.Kwargs{"gain": 0.5})
	require.NoError(t, err)
	assert.Equal(t, 0.5, got)
}

// TestNew_ConfigurationErrors covers mode/kind/option validation at
// construction.
func TestNew_ConfigurationErrors(t *testing.T) {
	opts := pit.DefaultOptions()
	opts.Mode = pit.Mode(99)
	_, err := pit.New(loss.PairwiseMSE, opts)
	assert.ErrorIs(t, err, pit.ErrUnknownMode)

	// Full-batch loss with a pairwise mode.
	opts = pit.DefaultOptions()
	_, err = pit.New(loss.MultiSrcMSE, opts)
	assert.ErrorIs(t, err, pit.ErrLossKind)

	// Pairwise loss with Direct mode.
	opts.Mode = pit.Direct
	_, err = pit.New(loss.PairwiseMSE, opts)
	assert.ErrorIs(t, err, pit.ErrLossKind)

	// Not a loss function at all.
	_, err = pit.New(42, opts)
	assert.ErrorIs(t, err, pit.ErrLossKind)

	// Negative parallelism.
	opts = pit.DefaultOptions()
	opts.Parallel = -1
	_, err = pit.New(loss.PairwiseMSE, opts)
	assert.ErrorIs(t, err, pit.ErrBadOption)

	// Relaxed mode needs a positive temperature and iterations.
	opts = pit.DefaultOptions()
	opts.Mode = pit.Relaxed
	opts.Beta = 0
	_, err = pit.New(loss.PairwiseMSE, opts)
	assert.ErrorIs(t, err, pit.ErrBadOption)

	opts = pit.DefaultOptions()
	opts.Mode = pit.Relaxed
	opts.Iterations = 0
	_, err = pit.New(loss.PairwiseMSE, opts)
	assert.ErrorIs(t, err, pit.ErrBadOption)
}

// TestCompute_ShapeErrors covers the tensor contract violations.
func TestCompute_ShapeErrors(t *testing.T) {
	w, err := pit.New(loss.PairwiseMSE, pit.DefaultOptions())
	require.NoError(t, err)

	a2x2, err := tensor.NewDense(2, 2, 4)
	require.NoError(t, err)
	a3x2, err := tensor.NewDense(3, 2, 4)
	require.NoError(t, err)
	a2x3, err := tensor.NewDense(2, 3, 4)
	require.NoError(t, err)
	short, err := tensor.NewDense(2, 2, 3)
	require.NoError(t, err)

	_, _, err = w.Compute(nil, a2x2, nil)
	assert.ErrorIs(t, err, pit.ErrNilInput)
	_, _, err = w.Compute(a2x2, a3x2, nil)
	assert.ErrorIs(t, err, pit.ErrBatchShape)
	_, _, err = w.Compute(a2x2, a2x3, nil)
	assert.ErrorIs(t, err, pit.ErrSourceShape)
	_, _, err = w.Compute(a2x2, short, nil)
	assert.ErrorIs(t, err, pit.ErrFrameShape)
}

// TestCompute_LossContractViolation ensures a loss returning the wrong
// batch length surfaces ErrLossShape.
func TestCompute_LossContractViolation(t *testing.T) {
	bad := func(est, tgt *tensor.Dense, _ loss.Kwargs) ([]float64, error) {
		return make([]float64, est.Batch()+1), nil
	}

	opts := pit.DefaultOptions()
	opts.Mode = pit.Direct
	opts.Parallel = 1
	w, err := pit.New(bad, opts)
	require.NoError(t, err)

	est, err := tensor.NewDense(2, 2, 2)
	require.NoError(t, err)
	tgt, err := tensor.NewDense(2, 2, 2)
	require.NoError(t, err)

	_, _, err = w.Compute(est, tgt, nil)
	assert.ErrorIs(t, err, pit.ErrLossShape)
}

// TestMode_String pins the canonical mode names.
func TestMode_String(t *testing.T) {
	assert.Equal(t, "pairwise_matrix", pit.PairwiseMatrix.String())
	assert.Equal(t, "pairwise_point", pit.PairwisePoint.String())
	assert.Equal(t, "direct", pit.Direct.String())
	assert.Equal(t, "relaxed", pit.Relaxed.String())
	assert.Equal(t, "unknown", pit.Mode(42).String())
}
