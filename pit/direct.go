// Package pit - direct (non-pairwise) strategy.
//
// When the loss does not decompose into per-pair terms, the only exact
// option is to evaluate it once per full permutation. Candidate scoring
// is embarrassingly parallel: each candidate owns one column of the loss
// table, so workers write disjoint cells and the table's candidate axis
// still matches enumeration order regardless of completion order.
package pit

import (
	"golang.org/x/sync/errgroup"

	"github.com/arvhn/permix/loss"
	"github.com/arvhn/permix/tensor"
)

// bestPermDirect evaluates the full-batch loss for every permutation of
// the estimates and selects the per-batch stable minimum.
// Complexity: k! loss evaluations, fanned out across workers.
func (w *Wrapper) bestPermDirect(est, tgt *tensor.Dense, kw loss.Kwargs) ([]float64, [][]int, error) {
	perms, err := permutations(est.Sources())
	if err != nil {
		return nil, nil, err
	}

	lossTab, err := w.evaluateDirect(est, tgt, perms, kw)
	if err != nil {
		return nil, nil, err
	}

	minv, argmin := selectMin(lossTab)

	return minv, pickPerms(perms, argmin), nil
}

// evaluateDirect fills the [batch][candidates] loss table, one column per
// permutation. Writes are index-addressed, never appended, so concurrent
// workers cannot disturb candidate order.
func (w *Wrapper) evaluateDirect(est, tgt *tensor.Dense, perms [][]int, kw loss.Kwargs) ([][]float64, error) {
	batch := est.Batch()

	table := make([][]float64, batch)
	var b int
	for b = range table {
		table[b] = make([]float64, len(perms))
	}

	var g errgroup.Group
	g.SetLimit(w.workers())

	for ci, perm := range perms {
		ci, perm := ci, perm
		g.Go(func() error {
			gathered, err := est.Gather(perm)
			if err != nil {
				return err
			}

			vals, err := w.full(gathered, tgt, kw)
			if err != nil {
				return err
			}
			if len(vals) != batch {
				return ErrLossShape
			}

			var bb int
			for bb = range vals {
				table[bb][ci] = vals[bb]
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return table, nil
}
