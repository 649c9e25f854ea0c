package core

import (
	"math"
	"math/rand"
)

// RandomRange returns a vector whose components are drawn independently from [min, max)
func RandomRange(random *rand.Rand, min, max float64) Vec3 {
	span := max - min
	return Vec3{
		X: min + span*random.Float64(),
		Y: min + span*random.Float64(),
		Z: min + span*random.Float64(),
	}
}

// RandomInUnitSphere rejection-samples a point strictly inside the unit ball
func RandomInUnitSphere(random *rand.Rand) Vec3 {
	for {
		p := RandomRange(random, -1, 1)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomUnitVector returns a uniformly distributed point on the unit sphere.
// It uses the azimuth/height parametrization, so it never rejects.
func RandomUnitVector(random *rand.Rand) Vec3 {
	a := 2 * math.Pi * random.Float64()
	z := 2*random.Float64() - 1
	r := math.Sqrt(1 - z*z)
	return Vec3{X: r * math.Cos(a), Y: r * math.Sin(a), Z: z}
}
