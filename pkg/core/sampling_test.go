package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestRandomRange_Bounds(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		v := RandomRange(random, -2, 3)
		for axis := 0; axis < 3; axis++ {
			c := v.Index(axis)
			if c < -2 || c >= 3 {
				t.Fatalf("Component %d = %f outside [-2, 3)", axis, c)
			}
		}
	}
}

func TestRandomInUnitSphere(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	var mean Vec3
	const n = 10000
	for i := 0; i < n; i++ {
		p := RandomInUnitSphere(random)
		if p.LengthSquared() >= 1 {
			t.Fatalf("Point %v is not strictly inside the unit sphere", p)
		}
		mean = mean.Add(p)
	}
	mean = mean.Multiply(1.0 / n)

	// Symmetric distribution, the mean should be close to the origin
	if mean.Length() > 0.05 {
		t.Errorf("Mean of unit sphere samples too far from origin: %v", mean)
	}
}

func TestRandomUnitVector(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	var mean Vec3
	const n = 10000
	upper := 0
	for i := 0; i < n; i++ {
		v := RandomUnitVector(random)
		if math.Abs(v.Length()-1) > 1e-9 {
			t.Fatalf("Expected unit length, got %f for %v", v.Length(), v)
		}
		if v.Z > 0 {
			upper++
		}
		mean = mean.Add(v)
	}
	mean = mean.Multiply(1.0 / n)

	if mean.Length() > 0.05 {
		t.Errorf("Unit vectors should be uniform on the sphere, mean was %v", mean)
	}

	fraction := float64(upper) / n
	if math.Abs(fraction-0.5) > 0.03 {
		t.Errorf("Expected about half the samples in the upper hemisphere, got %f", fraction)
	}
}
