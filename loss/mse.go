// Package loss - mean squared error reference triplet.
//
// All three flavors share rowMSE so that pairwise, single and multi-source
// evaluations of the same pairing produce the identical float64, which the
// cross-strategy equivalence tests rely on.
package loss

import "github.com/arvhn/permix/tensor"

// rowMSE returns the mean over frames of the squared difference.
// Both rows must share length; the caller guarantees it.
func rowMSE(e, t []float64) float64 {
	var (
		sum float64
		i   int
		d   float64
	)
	for i = range e {
		d = e[i] - t[i]
		sum += d * d
	}
	return sum / float64(len(e))
}

// SingleSrcMSE scores one estimated source row against one target row per
// batch element. Rows of differing length yield ErrShape.
func SingleSrcMSE(est, tgt [][]float64, _ Kwargs) ([]float64, error) {
	if len(est) != len(tgt) {
		return nil, ErrShape
	}
	out := make([]float64, len(est))
	var b int
	for b = range est {
		if len(est[b]) != len(tgt[b]) {
			return nil, ErrShape
		}
		out[b] = rowMSE(est[b], tgt[b])
	}
	return out, nil
}

// MultiSrcMSE averages the per-source MSE over aligned source pairs,
// returning one scalar per batch element. Estimates and targets must
// share all three dimensions.
func MultiSrcMSE(est, tgt *tensor.Dense, _ Kwargs) ([]float64, error) {
	if err := checkPair(est, tgt); err != nil {
		return nil, err
	}
	if est.Sources() != tgt.Sources() {
		return nil, ErrShape
	}

	out := make([]float64, est.Batch())
	var (
		b, s   int
		er, tr []float64
		acc    float64
	)
	for b = 0; b < est.Batch(); b++ {
		acc = 0
		for s = 0; s < est.Sources(); s++ {
			er, _ = est.Row(b, s)
			tr, _ = tgt.Row(b, s)
			acc += rowMSE(er, tr)
		}
		out[b] = acc / float64(est.Sources())
	}
	return out, nil
}

// PairwiseMSE returns the [batch, k, k] table of MSEs between every
// (estimate, target) pair. Estimates and targets must share the source
// count (PIT requires k == m).
func PairwiseMSE(est, tgt *tensor.Dense, _ Kwargs) (*tensor.Dense, error) {
	if err := checkPair(est, tgt); err != nil {
		return nil, err
	}
	if est.Sources() != tgt.Sources() {
		return nil, ErrShape
	}

	k := est.Sources()
	table, err := tensor.NewDense(est.Batch(), k, k)
	if err != nil {
		return nil, err
	}

	var (
		b, i, j int
		er, tr  []float64
	)
	for b = 0; b < est.Batch(); b++ {
		for i = 0; i < k; i++ {
			er, _ = est.Row(b, i)
			for j = 0; j < k; j++ {
				tr, _ = tgt.Row(b, j)
				if err = table.Set(b, i, j, rowMSE(er, tr)); err != nil {
					return nil, err
				}
			}
		}
	}
	return table, nil
}
