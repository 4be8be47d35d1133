package core

// ScatterResult contains the result of material scattering. When Continues
// is false the surface has absorbed the ray and Attenuation is the final
// color contribution; Scattered is only meaningful when Continues is true.
type ScatterResult struct {
	Attenuation Vec3 // Color attenuation applied at this bounce
	Scattered   Ray  // The scattered ray, if any
	Continues   bool // Whether tracing continues along Scattered
}

// Material decides how light interacts with a surface hit. Implementations
// are immutable after construction and safely shared by many primitives.
type Material interface {
	Scatter(rayIn Ray, hit *HitRecord, rng *Rand) ScatterResult
}
