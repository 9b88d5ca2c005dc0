package core

import "fmt"

// Field stores a 2D grid of height values in row-major order, triple-buffered
// so a step can read the current and previous states while writing the next
// one. The buffers rotate by slice-header swap; cell data is never copied.
type Field struct {
	W, H int

	curr []float32
	prev []float32
	next []float32
}

// NewField allocates a zero-filled field with the given dimensions.
func NewField(w, h int) (*Field, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, w, h)
	}
	total := w * h
	return &Field{
		W:    w,
		H:    h,
		curr: make([]float32, total),
		prev: make([]float32, total),
		next: make([]float32, total),
	}, nil
}

// Curr exposes the current buffer so steppers can read values directly.
func (f *Field) Curr() []float32 { return f.curr }

// Prev exposes the previous buffer.
func (f *Field) Prev() []float32 { return f.prev }

// Next exposes the write target for the step in progress.
func (f *Field) Next() []float32 { return f.next }

// Index returns the linear slice index for coordinates (x, y).
func (f *Field) Index(x, y int) int { return y*f.W + x }

// Contains reports whether (x, y) addresses a cell inside the field.
func (f *Field) Contains(x, y int) bool {
	return x >= 0 && x < f.W && y >= 0 && y < f.H
}

// At reads the current height at (x, y).
func (f *Field) At(x, y int) (float32, error) {
	if !f.Contains(x, y) {
		return 0, fmt.Errorf("%w: (%d,%d) on %dx%d", ErrOutOfBounds, x, y, f.W, f.H)
	}
	return f.curr[y*f.W+x], nil
}

// Rotate advances the buffer roles: the freshly written next buffer becomes
// current, current becomes previous, and the old previous is recycled as the
// next write target. O(1).
func (f *Field) Rotate() {
	f.prev, f.curr, f.next = f.curr, f.next, f.prev
}

// Reset zero-fills all three buffers in place without changing dimensions.
func (f *Field) Reset() {
	for i := range f.curr {
		f.curr[i] = 0
	}
	for i := range f.prev {
		f.prev[i] = 0
	}
	for i := range f.next {
		f.next[i] = 0
	}
}
