// Package loss defines the call contracts the search wrappers consume and
// ships reference implementations (MSE and negative SI-SDR) in the three
// flavors the PIT strategies expect.
//
// The wrappers never inspect a loss function's internals; they only rely
// on the documented shape contract:
//
//   - Func       — full-batch loss: (est, tgt, kwargs) → one scalar per
//     batch element. Used by the direct PIT mode and both MixIT modes.
//   - PairFunc   — pairwise loss table: (est, tgt, kwargs) → [batch, k, k]
//     where entry (i, j) scores estimate i against target j. Used by the
//     pairwise-matrix and relaxed PIT modes.
//   - SingleFunc — single-source loss on batches of rows; the wrappers
//     lift it into a pairwise table one (i, j) pair at a time.
//
// Each reference loss comes as a consistent triplet (single / pairwise /
// multi-source), so exhaustive search over any of the three flavors lands
// on the same optimum — the property the cross-strategy tests pin down.
package loss
