package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 100; i++ {
		if av, bv := a.Float64(), b.Float64(); av != bv {
			t.Fatalf("draw %d diverged: %v vs %v", i, av, bv)
		}
	}

	c := NewRNG(43)
	same := true
	a = NewRNG(42)
	for i := 0; i < 10; i++ {
		if a.Float64() != c.Float64() {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical streams")
	}
}

func TestPoissonZeroMean(t *testing.T) {
	r := NewRNG(1)
	for i := 0; i < 50; i++ {
		if n := r.Poisson(0); n != 0 {
			t.Fatalf("Poisson(0) = %d, want 0", n)
		}
	}
	if n := r.Poisson(-2); n != 0 {
		t.Fatalf("Poisson(-2) = %d, want 0", n)
	}
}

func TestPoissonMeanConverges(t *testing.T) {
	r := NewRNG(1234)
	const mean = 3.0
	const trials = 20000
	total := 0
	for i := 0; i < trials; i++ {
		total += r.Poisson(mean)
	}
	got := float64(total) / trials
	if got < mean*0.95 || got > mean*1.05 {
		t.Fatalf("empirical mean %.3f too far from %.1f", got, mean)
	}
}

func TestRangeBounds(t *testing.T) {
	r := NewRNG(7)
	for i := 0; i < 1000; i++ {
		v := r.Range(2, 5)
		if v < 2 || v >= 5 {
			t.Fatalf("Range(2,5) = %f out of bounds", v)
		}
	}
	if v := r.Range(3, 3); v != 3 {
		t.Fatalf("degenerate Range(3,3) = %f, want 3", v)
	}
}
