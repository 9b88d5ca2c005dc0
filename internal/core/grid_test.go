package core

import (
	"errors"
	"testing"
)

func TestNewFieldRejectsBadDimensions(t *testing.T) {
	cases := []struct{ w, h int }{
		{0, 10}, {10, 0}, {-1, 10}, {10, -1}, {0, 0}, {-3, -3},
	}
	for _, tc := range cases {
		if _, err := NewField(tc.w, tc.h); !errors.Is(err, ErrInvalidDimensions) {
			t.Fatalf("NewField(%d,%d): want ErrInvalidDimensions, got %v", tc.w, tc.h, err)
		}
	}
}

func TestNewFieldZeroFilled(t *testing.T) {
	f, err := NewField(7, 5)
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}
	if f.W != 7 || f.H != 5 {
		t.Fatalf("dimensions %dx%d, want 7x5", f.W, f.H)
	}
	if len(f.Curr()) != 35 || len(f.Prev()) != 35 || len(f.Next()) != 35 {
		t.Fatalf("buffer lengths %d/%d/%d, want 35", len(f.Curr()), len(f.Prev()), len(f.Next()))
	}
	for i, v := range f.Curr() {
		if v != 0 {
			t.Fatalf("curr[%d] = %f, want 0", i, v)
		}
	}
}

func TestFieldResetZeroesAllBuffers(t *testing.T) {
	f, err := NewField(4, 4)
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}
	f.Curr()[3] = 1.5
	f.Prev()[7] = -2
	f.Next()[11] = 0.25

	f.Reset()

	for i := 0; i < 16; i++ {
		if f.Curr()[i] != 0 || f.Prev()[i] != 0 || f.Next()[i] != 0 {
			t.Fatalf("cell %d not zeroed after Reset: %f/%f/%f", i, f.Curr()[i], f.Prev()[i], f.Next()[i])
		}
	}
}

func TestFieldAtBounds(t *testing.T) {
	f, err := NewField(8, 6)
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}
	f.Curr()[f.Index(3, 2)] = 0.5

	got, err := f.At(3, 2)
	if err != nil {
		t.Fatalf("At(3,2): %v", err)
	}
	if got != 0.5 {
		t.Fatalf("At(3,2) = %f, want 0.5", got)
	}

	for _, tc := range []struct{ x, y int }{
		{-1, 2}, {8, 2}, {3, -1}, {3, 6}, {-1, -1}, {8, 6},
	} {
		if _, err := f.At(tc.x, tc.y); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("At(%d,%d): want ErrOutOfBounds, got %v", tc.x, tc.y, err)
		}
	}
}

func TestFieldRotateSwapsRoles(t *testing.T) {
	f, err := NewField(2, 2)
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}
	f.Curr()[0] = 1
	f.Next()[0] = 2

	f.Rotate()

	if f.Curr()[0] != 2 {
		t.Fatalf("after Rotate curr[0] = %f, want the written next value 2", f.Curr()[0])
	}
	if f.Prev()[0] != 1 {
		t.Fatalf("after Rotate prev[0] = %f, want the old curr value 1", f.Prev()[0])
	}

	// Three rotations cycle the buffers back to their original roles.
	f.Rotate()
	f.Rotate()
	if f.Curr()[0] != 1 || f.Next()[0] != 2 {
		t.Fatalf("triple Rotate is not an identity: curr=%f next=%f", f.Curr()[0], f.Next()[0])
	}
}
