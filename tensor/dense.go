// Package tensor: Dense is the concrete batched tensor implementation,
// storing elements in a flat slice for performance and cache friendliness.
package tensor

import (
	"errors"
	"fmt"
)

// ErrBadShape indicates that requested tensor dimensions are non-positive.
var ErrBadShape = errors.New("tensor: dimensions must be > 0")

// ErrOutOfRange indicates that a batch, source or frame index is outside
// valid bounds. Public indexers must return this, not panic.
var ErrOutOfRange = errors.New("tensor: index out of range")

// ErrNilTensor indicates that a nil *Dense receiver or argument was used.
var ErrNilTensor = errors.New("tensor: nil tensor")

// ErrDataLength indicates that a backing slice does not match batch*src*frames.
var ErrDataLength = errors.New("tensor: data length does not match shape")

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, b, s, f int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d,%d): %w", method, b, s, f, err)
}

// Dense is a batch of src×frames float64 matrices in row-major order.
// batch, src and frames are the three axis lengths; data holds
// batch*src*frames elements.
type Dense struct {
	batch, src, frames int
	data               []float64 // flat backing storage, length == batch*src*frames
}

// NewDense creates a batch×src×frames Dense tensor initialized to zeros.
// Stage 1 (Validate): ensure every dimension > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrBadShape.
// Complexity: O(batch*src*frames) time and memory.
func NewDense(batch, src, frames int) (*Dense, error) {
	// Validate dimensions
	if batch <= 0 || src <= 0 || frames <= 0 {
		return nil, ErrBadShape
	}
	// Allocate flat slice
	data := make([]float64, batch*src*frames)

	// Return initialized Dense
	return &Dense{batch: batch, src: src, frames: frames, data: data}, nil
}

// NewDenseOf creates a Dense wrapping the provided backing slice.
// The slice is used directly (not copied); its length must equal
// batch*src*frames.
// Complexity: O(1).
func NewDenseOf(batch, src, frames int, data []float64) (*Dense, error) {
	if batch <= 0 || src <= 0 || frames <= 0 {
		return nil, ErrBadShape
	}
	if len(data) != batch*src*frames {
		return nil, ErrDataLength
	}
	return &Dense{batch: batch, src: src, frames: frames, data: data}, nil
}

// Batch returns the number of batch elements.
// Complexity: O(1).
func (d *Dense) Batch() int { return d.batch }

// Sources returns the number of sources (the middle axis length).
// Complexity: O(1).
func (d *Dense) Sources() int { return d.src }

// Frames returns the per-source signal length.
// Complexity: O(1).
func (d *Dense) Frames() int { return d.frames }

// indexOf computes the flat index for (b, s, f) or returns ErrOutOfRange.
// Complexity: O(1).
func (d *Dense) indexOf(method string, b, s, f int) (int, error) {
	if b < 0 || b >= d.batch {
		return 0, denseErrorf(method, b, s, f, ErrOutOfRange)
	}
	if s < 0 || s >= d.src {
		return 0, denseErrorf(method, b, s, f, ErrOutOfRange)
	}
	if f < 0 || f >= d.frames {
		return 0, denseErrorf(method, b, s, f, ErrOutOfRange)
	}
	return (b*d.src+s)*d.frames + f, nil
}

// At retrieves the element at (b, s, f).
// Complexity: O(1).
func (d *Dense) At(b, s, f int) (float64, error) {
	idx, err := d.indexOf("At", b, s, f)
	if err != nil {
		return 0, err
	}
	return d.data[idx], nil
}

// Set assigns value v at (b, s, f).
// Complexity: O(1).
func (d *Dense) Set(b, s, f int, v float64) error {
	idx, err := d.indexOf("Set", b, s, f)
	if err != nil {
		return err
	}
	d.data[idx] = v
	return nil
}

// Row returns the frames-long slice backing source s of batch element b.
// The returned slice is a live view: writes through it mutate the tensor.
// Complexity: O(1).
func (d *Dense) Row(b, s int) ([]float64, error) {
	if d == nil {
		return nil, ErrNilTensor
	}
	off, err := d.indexOf("Row", b, s, 0)
	if err != nil {
		return nil, err
	}
	return d.data[off : off+d.frames : off+d.frames], nil
}

// CloneShape returns a zero-filled Dense with the receiver's shape.
// Complexity: O(batch*src*frames).
func (d *Dense) CloneShape() *Dense {
	out, _ := NewDense(d.batch, d.src, d.frames)
	return out
}

// Clone returns a deep copy of the receiver.
// Complexity: O(batch*src*frames).
func (d *Dense) Clone() *Dense {
	out := d.CloneShape()
	copy(out.data, d.data)
	return out
}

// Fill sets every element to v.
// Complexity: O(batch*src*frames).
func (d *Dense) Fill(v float64) {
	var i int
	for i = range d.data {
		d.data[i] = v
	}
}
