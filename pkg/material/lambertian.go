package material

import (
	"github.com/spectralpath/raytracer/pkg/core"
)

// Lambertian represents a diffuse material. Scattered rays leave along the
// surface normal plus a random unit vector in the hemisphere about it.
type Lambertian struct {
	Albedo core.Vec3
}

// NewLambertian creates a new lambertian material with the given albedo
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements the Material interface for lambertian scattering
func (m *Lambertian) Scatter(rayIn core.Ray, hit *core.HitRecord, rng *core.Rand) core.ScatterResult {
	direction := scatterDirection(hit.Normal, rng.InHemisphere(hit.Normal))
	return core.ScatterResult{
		Attenuation: m.Albedo,
		Scattered:   core.NewRay(hit.Point, direction),
		Continues:   true,
	}
}

// scatterDirection substitutes the normal itself when the normal and the
// random term nearly cancel, so a zero-length direction never enters the
// recursion.
func scatterDirection(normal, random core.Vec3) core.Vec3 {
	direction := normal.Add(random)
	if direction.NearZero() {
		return normal
	}
	return direction
}
