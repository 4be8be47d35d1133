package geometry

import (
	"math"

	"github.com/spectralpath/raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Point3
	Radius   float64
	Material core.Material
}

// NewSphere creates a new sphere. A negative radius is floored at zero.
func NewSphere(center core.Point3, radius float64, material core.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   math.Max(0, radius),
		Material: material,
	}
}

// Hit tests if a ray intersects the sphere within the interval t.
//
// Substituting the ray equation into the implicit sphere equation gives a
// quadratic in the ray parameter. The half-angle form a·t² − 2h·t + c = 0
// with h = d·(center−origin) avoids the factor-of-2 cancellation of the
// naive quadratic formula.
func (s *Sphere) Hit(ray core.Ray, t core.Interval) (*core.HitRecord, bool) {
	oc := s.Center.Subtract(ray.Origin)
	a := ray.Direction.LengthSquared()
	h := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Prefer the nearer root; fall back to the farther one, which is the
	// exit point when the ray starts inside the sphere.
	root := (h - sqrtD) / a
	if !t.Surrounds(root) {
		root = (h + sqrtD) / a
		if !t.Surrounds(root) {
			return nil, false
		}
	}

	rec := &core.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}
	outwardNormal := rec.Point.Subtract(s.Center).Multiply(1 / s.Radius)
	rec.SetFaceNormal(ray, outwardNormal)

	return rec, true
}
