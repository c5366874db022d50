// Package mixit - candidate evaluation and remix reconstruction.
//
// Evaluation synthesizes each candidate's mixtures (grouped source sums),
// scores them with the caller's loss, and accumulates a
// [batch][candidates] loss table in enumeration order. Candidate scoring
// is embarrassingly parallel: each candidate owns one column, workers
// write disjoint cells, and the candidate axis matches enumeration order
// regardless of completion order.
//
// Remix re-derives the grouped sums per batch element with that element's
// winning partition, using the same MixGroup summation order as
// evaluation, so the output matches the scored tensor bit-for-bit.
package mixit

import (
	"golang.org/x/sync/errgroup"

	"github.com/arvhn/permix/loss"
	"github.com/arvhn/permix/tensor"
)

// evaluate fills the [batch][candidates] loss table, one column per
// partition.
func (w *Wrapper) evaluate(est, tgt *tensor.Dense, parts [][][]int, kw loss.Kwargs) ([][]float64, error) {
	batch := est.Batch()

	table := make([][]float64, batch)
	var b int
	for b = range table {
		table[b] = make([]float64, len(parts))
	}

	var g errgroup.Group
	g.SetLimit(w.workers())

	for ci, part := range parts {
		ci, part := ci, part
		g.Go(func() error {
			mixes, err := synthesize(est, part, tgt.Sources())
			if err != nil {
				return err
			}

			vals, err := w.fn(mixes, tgt, kw)
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

// synthesize builds one candidate's estimated mixtures for the whole
// batch: out(b, g, :) = Σ_{i ∈ part[g]} est(b, i, :). Empty groups yield
// silent (all-zero) mixtures.
// Complexity: O(batch·k·frames).
func synthesize(est *tensor.Dense, part [][]int, m int) (*tensor.Dense, error) {
	out, err := tensor.NewDense(est.Batch(), m, est.Frames())
	if err != nil {
		return nil, err
	}

	var (
		b, g int
		row  []float64
	)
	for b = 0; b < est.Batch(); b++ {
		for g = 0; g < m; g++ {
			row, err = out.Row(b, g)
			if err != nil {
				return nil, err
			}
			if err = est.MixGroup(b, part[g], row); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// remixSources rebuilds the estimated mixtures with each batch element's
// own winning partition — an index-driven per-element lookup, never one
// shared partition applied across the batch.
// Complexity: O(batch·k·frames).
func remixSources(est *tensor.Dense, m int, parts [][][]int, argmin []int) (*tensor.Dense, error) {
	out, err := tensor.NewDense(est.Batch(), m, est.Frames())
	if err != nil {
		return nil, err
	}

	var (
		b, g int
		part [][]int
		row  []float64
	)
	for b = 0; b < est.Batch(); b++ {
		part = parts[argmin[b]]
		for g = 0; g < m; g++ {
			row, err = out.Row(b, g)
			if err != nil {
				return nil, err
			}
			if err = est.MixGroup(b, part[g], row); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
