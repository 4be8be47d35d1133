package material

import (
	"github.com/spectralpath/raytracer/pkg/core"
)

// Constant is a flat unshaded material: every ray that hits it is absorbed
// and the surface contributes its color directly. Useful for light-source
// style surfaces.
type Constant struct {
	Color core.Vec3
}

// NewConstant creates a new constant-color material
func NewConstant(color core.Vec3) *Constant {
	return &Constant{Color: color}
}

// Scatter implements the Material interface. The ray never continues.
func (m *Constant) Scatter(rayIn core.Ray, hit *core.HitRecord, rng *core.Rand) core.ScatterResult {
	return core.ScatterResult{Attenuation: m.Color}
}
