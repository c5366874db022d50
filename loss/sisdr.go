// Package loss - negative scale-invariant SDR reference triplet.
//
// SI-SDR projects the estimate onto the target, splits it into a scaled
// target component and a residual, and scores the energy ratio in dB.
// The negative is returned so that minimization improves separation.
//
// The "zero_mean" kwarg (default true) removes per-row means before the
// projection, matching the conventional definition.
package loss

import (
	"math"

	"github.com/arvhn/permix/tensor"
)

// sisdrEps guards divisions and the log argument against zero energy.
const sisdrEps = 1e-8

// rowNegSISDR returns the negative SI-SDR of estimate row e against
// target row t. Rows must share length; the caller guarantees it.
func rowNegSISDR(e, t []float64, zeroMean bool) float64 {
	n := len(e)

	var (
		i          int
		ew, tw     float64
		emean      float64
		tmean      float64
		dot, tt    float64
		num, den   float64
		alpha, res float64
	)

	if zeroMean {
		for i = 0; i < n; i++ {
			emean += e[i]
			tmean += t[i]
		}
		emean /= float64(n)
		tmean /= float64(n)
	}

	for i = 0; i < n; i++ {
		ew = e[i] - emean
		tw = t[i] - tmean
		dot += ew * tw
		tt += tw * tw
	}
	alpha = dot / (tt + sisdrEps)

	for i = 0; i < n; i++ {
		ew = e[i] - emean
		tw = alpha * (t[i] - tmean)
		res = ew - tw
		num += tw * tw
		den += res * res
	}

	return -10 * math.Log10(num/(den+sisdrEps)+sisdrEps)
}

// SingleSrcNegSISDR scores one estimated source row against one target
// row per batch element.
func SingleSrcNegSISDR(est, tgt [][]float64, kw Kwargs) ([]float64, error) {
	if len(est) != len(tgt) {
		return nil, ErrShape
	}
	zm := kw.Bool("zero_mean", true)

	out := make([]float64, len(est))
	var b int
	for b = range est {
		if len(est[b]) != len(tgt[b]) {
			return nil, ErrShape
		}
		out[b] = rowNegSISDR(est[b], tgt[b], zm)
	}
	return out, nil
}

// MultiSrcNegSISDR averages the per-source negative SI-SDR over aligned
// source pairs, returning one scalar per batch element.
func MultiSrcNegSISDR(est, tgt *tensor.Dense, kw Kwargs) ([]float64, error) {
	if err := checkPair(est, tgt); err != nil {
		return nil, err
	}
	if est.Sources() != tgt.Sources() {
		return nil, ErrShape
	}
	zm := kw.Bool("zero_mean", true)

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
			acc += rowNegSISDR(er, tr, zm)
		}
		out[b] = acc / float64(est.Sources())
	}
	return out, nil
}

// PairwiseNegSISDR returns the [batch, k, k] table of negative SI-SDRs
// between every (estimate, target) pair.
func PairwiseNegSISDR(est, tgt *tensor.Dense, kw Kwargs) (*tensor.Dense, error) {
	if err := checkPair(est, tgt); err != nil {
		return nil, err
	}
	if est.Sources() != tgt.Sources() {
		return nil, ErrShape
	}
	zm := kw.Bool("zero_mean", true)

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
				if err = table.Set(b, i, j, rowNegSISDR(er, tr, zm)); err != nil {
					return nil, err
				}
			}
		}
	}
	return table, nil
}
