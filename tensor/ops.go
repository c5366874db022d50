// Package tensor: source-axis operations consumed by the search wrappers.
//
// This file provides the two structural operations candidate evaluation is
// built from:
//
//   - Gather     — reorder the source axis by a candidate permutation,
//   - MixGroup   — sum a candidate group of sources into one mixture row.
//
// Design:
//   - Deterministic, side-effect free (outputs are fresh or caller-supplied).
//   - Strict sentinels on any invalid index; no silent clamping.
//   - Summation order follows the group's slice order so reconstruction
//     reproduces evaluation bit-for-bit.
package tensor

import "errors"

// ErrBadIndexSet indicates a permutation or group referencing a source
// index outside [0, Sources()).
var ErrBadIndexSet = errors.New("tensor: source index set out of range")

// ErrShapeMismatch indicates that two tensors (or a tensor and an output
// row) disagree on a required dimension.
var ErrShapeMismatch = errors.New("tensor: shape mismatch")

// Gather returns a new tensor whose source axis is reordered so that
// out(b, j, f) = d(b, perm[j], f) for every batch element.
//
// Contracts:
//   - perm must be non-empty and every entry within [0, Sources()).
//   - perm need not be a bijection; duplicates are permitted (the search
//     wrappers only ever pass bijections, but Gather itself is generic).
//
// Complexity: O(batch*len(perm)*frames).
func (d *Dense) Gather(perm []int) (*Dense, error) {
	if d == nil {
		return nil, ErrNilTensor
	}
	if len(perm) == 0 {
		return nil, ErrBadIndexSet
	}
	var p int
	for _, p = range perm {
		if p < 0 || p >= d.src {
			return nil, ErrBadIndexSet
		}
	}

	out, err := NewDense(d.batch, len(perm), d.frames)
	if err != nil {
		return nil, err
	}

	var (
		b, j   int
		srcOff int
		dstOff int
	)
	for b = 0; b < d.batch; b++ {
		for j = 0; j < len(perm); j++ {
			srcOff = (b*d.src + perm[j]) * d.frames
			dstOff = (b*len(perm) + j) * d.frames
			copy(out.data[dstOff:dstOff+d.frames], d.data[srcOff:srcOff+d.frames])
		}
	}

	return out, nil
}

// GatherBatch copies d(b, perm[j], :) into dst(b, j, :) for one batch
// element only. Used by per-batch reconstruction, where different batch
// elements apply different winning permutations.
//
// Contracts:
//   - dst must have len(perm) sources and the same frame count as d.
//   - b must be a valid batch index in both tensors.
//
// Complexity: O(len(perm)*frames).
func (d *Dense) GatherBatch(dst *Dense, b int, perm []int) error {
	if d == nil || dst == nil {
		return ErrNilTensor
	}
	if dst.src != len(perm) || dst.frames != d.frames {
		return ErrShapeMismatch
	}
	if b < 0 || b >= d.batch || b >= dst.batch {
		return ErrOutOfRange
	}

	var (
		j      int
		srcOff int
		dstOff int
	)
	for j = 0; j < len(perm); j++ {
		if perm[j] < 0 || perm[j] >= d.src {
			return ErrBadIndexSet
		}
		srcOff = (b*d.src + perm[j]) * d.frames
		dstOff = (b*dst.src + j) * d.frames
		copy(dst.data[dstOff:dstOff+d.frames], d.data[srcOff:srcOff+d.frames])
	}

	return nil
}

// MixGroup sums the selected source rows of batch element b elementwise
// into out, overwriting it. An empty group yields an all-zero out (the
// silent-mixture case of generalized partition search).
//
// Contracts:
//   - len(out) == Frames().
//   - every group entry within [0, Sources()).
//   - summation proceeds in group order (stable across calls).
//
// Complexity: O(len(group)*frames).
func (d *Dense) MixGroup(b int, group []int, out []float64) error {
	if d == nil {
		return ErrNilTensor
	}
	if len(out) != d.frames {
		return ErrShapeMismatch
	}
	if b < 0 || b >= d.batch {
		return ErrOutOfRange
	}

	var f int
	for f = range out {
		out[f] = 0
	}

	var (
		s   int
		off int
	)
	for _, s = range group {
		if s < 0 || s >= d.src {
			return ErrBadIndexSet
		}
		off = (b*d.src + s) * d.frames
		for f = 0; f < d.frames; f++ {
			out[f] += d.data[off+f]
		}
	}

	return nil
}
