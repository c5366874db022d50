// Package pit - pairwise-table strategies.
//
// Both pairwise modes reduce to the same search: build a [batch, k, k]
// loss table C where C(b, i, j) scores estimate i against target j, then
// scan every permutation σ and score the candidate as the mean over
// matched pairs, (1/k)·Σⱼ C(b, σ[j], j). Exhaustive scan is exact and,
// for pairwise-decomposable losses, asymptotically cheaper than Direct:
// the loss runs k² times instead of k! times.
package pit

import (
	"github.com/arvhn/permix/loss"
	"github.com/arvhn/permix/tensor"
)

// bestPermPairwise builds the pairwise table (from the PairFunc, or by
// lifting the SingleFunc pair by pair) and scans all k! matchings.
// Returns per-batch minimum losses and winning permutations.
func (w *Wrapper) bestPermPairwise(est, tgt *tensor.Dense, kw loss.Kwargs) ([]float64, [][]int, error) {
	table, err := w.pairTable(est, tgt, kw)
	if err != nil {
		return nil, nil, err
	}

	perms, err := permutations(est.Sources())
	if err != nil {
		return nil, nil, err
	}

	lossTab, err := lossTableFromPairs(table, perms)
	if err != nil {
		return nil, nil, err
	}

	minv, argmin := selectMin(lossTab)

	return minv, pickPerms(perms, argmin), nil
}

// pairTable produces the [batch, k, k] pairwise loss table for the bound
// loss function, validating the loss's shape contract.
func (w *Wrapper) pairTable(est, tgt *tensor.Dense, kw loss.Kwargs) (*tensor.Dense, error) {
	if w.pair != nil {
		table, err := w.pair(est, tgt, kw)
		if err != nil {
			return nil, err
		}
		if table == nil ||
			table.Batch() != est.Batch() ||
			table.Sources() != est.Sources() ||
			table.Frames() != est.Sources() {
			return nil, ErrLossShape
		}
		return table, nil
	}

	return w.liftSingle(est, tgt, kw)
}

// liftSingle builds the pairwise table from a single-source loss, one
// (estimate, target) pair per call, batched across the batch dimension.
// This is the no-pairwise path for losses that only exist in single-source
// form.
// Complexity: k² loss calls.
func (w *Wrapper) liftSingle(est, tgt *tensor.Dense, kw loss.Kwargs) (*tensor.Dense, error) {
	var (
		batch = est.Batch()
		k     = est.Sources()
	)

	table, err := tensor.NewDense(batch, k, k)
	if err != nil {
		return nil, err
	}

	estRows := make([][]float64, batch)
	tgtRows := make([][]float64, batch)

	var (
		i, j, b int
		vals    []float64
	)
	for i = 0; i < k; i++ {
		for b = 0; b < batch; b++ {
			estRows[b], _ = est.Row(b, i)
		}
		for j = 0; j < k; j++ {
			for b = 0; b < batch; b++ {
				tgtRows[b], _ = tgt.Row(b, j)
			}
			vals, err = w.single(estRows, tgtRows, kw)
			if err != nil {
				return nil, err
			}
			if len(vals) != batch {
				return nil, ErrLossShape
			}
			for b = 0; b < batch; b++ {
				if err = table.Set(b, i, j, vals[b]); err != nil {
					return nil, err
				}
			}
		}
	}

	return table, nil
}

// lossTableFromPairs scores every permutation against the pairwise table:
// entry (b, c) is the mean matched-pair loss of permutation c for batch
// element b. Candidate order follows perms, preserving enumeration order
// for the stable tie-break.
// Complexity: O(batch·k!·k).
func lossTableFromPairs(table *tensor.Dense, perms [][]int) ([][]float64, error) {
	var (
		batch = table.Batch()
		k     = table.Sources()
	)

	out := make([][]float64, batch)

	var (
		b, c, j int
		acc     float64
		v       float64
		err     error
	)
	for b = 0; b < batch; b++ {
		out[b] = make([]float64, len(perms))
		for c = range perms {
			acc = 0
			for j = 0; j < k; j++ {
				v, err = table.At(b, perms[c][j], j)
				if err != nil {
					return nil, err
				}
				acc += v
			}
			out[b][c] = acc / float64(k)
		}
	}

	return out, nil
}
