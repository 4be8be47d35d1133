package core

import (
	"math"
	"math/rand"
)

// Rand is a seedable random source owned by a single execution context.
// Each render worker holds its own instance, so concurrent sampling never
// contends on shared generator state and a fixed seed reproduces the same
// stream within a context.
type Rand struct {
	src *rand.Rand
}

// NewRand creates a random source seeded with the given value
func NewRand(seed int64) *Rand {
	return &Rand{src: rand.New(rand.NewSource(seed))}
}

// Float64 returns a uniform random real in [0, 1)
func (r *Rand) Float64() float64 {
	return r.src.Float64()
}

// Float64Range returns a uniform random real in [min, max)
func (r *Rand) Float64Range(min, max float64) float64 {
	return min + (max-min)*r.src.Float64()
}

// NormFloat64 returns a random real from the standard normal distribution
func (r *Rand) NormFloat64() float64 {
	return r.src.NormFloat64()
}

// Normal returns a random real from a normal distribution with the given
// mean and standard deviation
func (r *Rand) Normal(mean, stddev float64) float64 {
	return mean + stddev*r.src.NormFloat64()
}

// UnitVector returns a uniformly distributed random unit vector. Three
// normal deviates give a spherically symmetric direction once normalized;
// the loop rejects the rare draw too small to normalize safely.
func (r *Rand) UnitVector() Vec3 {
	for {
		v := Vec3{X: r.NormFloat64(), Y: r.NormFloat64(), Z: r.NormFloat64()}
		lensq := v.LengthSquared()
		if lensq > 1e-160 {
			return v.Multiply(1 / math.Sqrt(lensq))
		}
	}
}

// InHemisphere returns a random unit vector in the hemisphere about normal
func (r *Rand) InHemisphere(normal Vec3) Vec3 {
	v := r.UnitVector()
	if v.Dot(normal) < 0 {
		return v.Negate()
	}
	return v
}
