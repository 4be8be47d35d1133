package core

// HitRecord contains information about a ray-object intersection. Records
// are stack-scoped: rebuilt for every intersection test, never persisted.
type HitRecord struct {
	Point     Point3   // Point of intersection
	Normal    Vec3     // Surface normal at intersection, always opposing the ray
	T         float64  // Parameter t along the ray
	FrontFace bool     // Whether the ray hit the front face
	Material  Material // Material of the hit object, shared across primitives
}

// SetFaceNormal orients the normal against the incoming ray and records
// which face was hit. The outward normal must be unit length.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Hittable is anything a ray can intersect. Hit returns the nearest
// intersection with a parameter inside t, or ok=false when there is none.
type Hittable interface {
	Hit(ray Ray, t Interval) (rec *HitRecord, ok bool)
}
