// Package tensor: zero-copy bridge into gonum's mat package.
//
// The Sinkhorn relaxation (and any caller-supplied loss that wants real
// linear algebra) operates on one batch element at a time; Matrix exposes
// that slice of the flat storage as a gonum *mat.Dense without copying.
package tensor

import "gonum.org/v1/gonum/mat"

// Matrix returns batch element b as a src×frames gonum matrix sharing the
// receiver's backing storage: writes through the returned matrix mutate
// the tensor.
//
// Complexity: O(1); no data is copied.
func (d *Dense) Matrix(b int) (*mat.Dense, error) {
	if d == nil {
		return nil, ErrNilTensor
	}
	if b < 0 || b >= d.batch {
		return nil, ErrOutOfRange
	}
	off := b * d.src * d.frames

	return mat.NewDense(d.src, d.frames, d.data[off:off+d.src*d.frames]), nil
}
