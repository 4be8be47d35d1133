package core

import (
	"math"
	"testing"
)

func TestRand_Deterministic(t *testing.T) {
	a := NewRand(123)
	b := NewRand(123)

	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatal("Same seed should produce the same stream")
		}
	}

	c := NewRand(456)
	same := true
	a = NewRand(123)
	for i := 0; i < 10; i++ {
		if a.Float64() != c.Float64() {
			same = false
		}
	}
	if same {
		t.Error("Different seeds should produce different streams")
	}
}

func TestRand_Ranges(t *testing.T) {
	rng := NewRand(42)

	for i := 0; i < 1000; i++ {
		if x := rng.Float64(); x < 0 || x >= 1 {
			t.Fatalf("Float64 out of [0,1): %f", x)
		}
		if x := rng.Float64Range(-0.5, 0.5); x < -0.5 || x >= 0.5 {
			t.Fatalf("Float64Range out of [-0.5,0.5): %f", x)
		}
	}
}

func TestRand_Normal(t *testing.T) {
	rng := NewRand(42)

	const n = 10000
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += rng.Normal(5, 2)
	}
	mean := sum / n

	// Sample mean of n draws has stddev 2/sqrt(n) = 0.02; 5 sigma margin.
	if math.Abs(mean-5) > 0.1 {
		t.Errorf("Sample mean %f too far from 5", mean)
	}
}

func TestRand_UnitVector(t *testing.T) {
	rng := NewRand(42)

	for i := 0; i < 1000; i++ {
		v := rng.UnitVector()
		if math.Abs(v.Length()-1.0) > 1e-12 {
			t.Fatalf("Expected unit length, got %v with length %f", v, v.Length())
		}
	}
}

func TestRand_InHemisphere(t *testing.T) {
	rng := NewRand(42)
	normal := NewVec3(0, 1, 0)

	for i := 0; i < 1000; i++ {
		v := rng.InHemisphere(normal)
		if v.Dot(normal) < 0 {
			t.Fatalf("Vector %v is below the hemisphere about %v", v, normal)
		}
		if math.Abs(v.Length()-1.0) > 1e-12 {
			t.Fatalf("Expected unit length, got %f", v.Length())
		}
	}
}
