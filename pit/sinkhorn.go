// Package pit - Sinkhorn continuous relaxation.
//
// For k beyond exhaustive reach, the assignment polytope is relaxed to
// doubly stochastic matrices: P = sinkhorn(exp(-C/β)) approximates the
// minimizing permutation, the reported loss is the soft matched cost
// (1/k)·Σ P∘C, and reconstruction hardens P by greedy argmax. The result
// is approximate, not exact — β and the iteration count trade sharpness
// for stability.
package pit

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/arvhn/permix/loss"
	"github.com/arvhn/permix/tensor"
)

// bestPermRelaxed runs the relaxation independently per batch element,
// reading each element's k×k slice of the pairwise table as a gonum view.
func (w *Wrapper) bestPermRelaxed(est, tgt *tensor.Dense, kw loss.Kwargs) ([]float64, [][]int, error) {
	table, err := w.pairTable(est, tgt, kw)
	if err != nil {
		return nil, nil, err
	}

	var (
		batch = est.Batch()
		minv  = make([]float64, batch)
		perms = make([][]int, batch)
	)

	var (
		b    int
		c    *mat.Dense
		plan *mat.Dense
	)
	for b = 0; b < batch; b++ {
		c, err = table.Matrix(b)
		if err != nil {
			return nil, nil, err
		}
		plan = sinkhornPlan(c, w.opts.Beta, w.opts.Iterations)
		minv[b] = softCost(plan, c)
		perms[b] = hardenPlan(plan)
	}

	return minv, perms, nil
}

// sinkhornPlan builds the doubly stochastic transport plan from cost
// matrix c: kernel exp(-(c-min(c))/beta), then alternating row/column
// normalization. The global min shift keeps the kernel finite for
// strongly negative costs (e.g. SI-SDR in dB) without changing the fixed
// point, since constant factors cancel in normalization.
// Complexity: O(iters·k²).
func sinkhornPlan(c *mat.Dense, beta float64, iters int) *mat.Dense {
	k, _ := c.Dims()

	shift := mat.Min(c)
	p := mat.NewDense(k, k, nil)
	p.Apply(func(_, _ int, v float64) float64 {
		return math.Exp(-(v - shift) / beta)
	}, c)

	var (
		it, i, j int
		sum      float64
	)
	for it = 0; it < iters; it++ {
		// Row normalization.
		for i = 0; i < k; i++ {
			sum = 0
			for j = 0; j < k; j++ {
				sum += p.At(i, j)
			}
			for j = 0; j < k; j++ {
				p.Set(i, j, p.At(i, j)/sum)
			}
		}
		// Column normalization.
		for j = 0; j < k; j++ {
			sum = 0
			for i = 0; i < k; i++ {
				sum += p.At(i, j)
			}
			for i = 0; i < k; i++ {
				p.Set(i, j, p.At(i, j)/sum)
			}
		}
	}

	return p
}

// softCost returns the soft matched loss (1/k)·Σᵢⱼ P(i,j)·C(i,j).
func softCost(p, c *mat.Dense) float64 {
	k, _ := c.Dims()

	var (
		i, j int
		sum  float64
	)
	for i = 0; i < k; i++ {
		for j = 0; j < k; j++ {
			sum += p.At(i, j) * c.At(i, j)
		}
	}

	return sum / float64(k)
}

// hardenPlan extracts a hard permutation from the soft plan by greedy
// argmax: repeatedly take the largest remaining entry and retire its row
// and column. Deterministic: ties resolve to the smallest (i, j) in
// row-major scan order. The output maps target position j to estimate
// index perm[j], matching the exact strategies' convention.
// Complexity: O(k³).
func hardenPlan(p *mat.Dense) []int {
	k, _ := p.Dims()

	var (
		perm    = make([]int, k)
		rowUsed = make([]bool, k)
		colUsed = make([]bool, k)
	)

	var (
		step, i, j   int
		bestI, bestJ int
		best, v      float64
	)
	for step = 0; step < k; step++ {
		best = math.Inf(-1)
		bestI, bestJ = -1, -1
		for i = 0; i < k; i++ {
			if rowUsed[i] {
				continue
			}
			for j = 0; j < k; j++ {
				if colUsed[j] {
					continue
				}
				v = p.At(i, j)
				if v > best {
					best = v
					bestI, bestJ = i, j
				}
			}
		}
		perm[bestJ] = bestI
		rowUsed[bestI] = true
		colUsed[bestJ] = true
	}

	return perm
}
