package material

import (
	"github.com/spectralpath/raytracer/pkg/core"
)

// ShowNormals is a debugging material that encodes the surface normal as a
// color, mapping components from [-1,1] to [0,1]. Not physically meaningful.
type ShowNormals struct{}

// NewShowNormals creates a new normal-visualization material
func NewShowNormals() *ShowNormals {
	return &ShowNormals{}
}

// Scatter implements the Material interface. The ray never continues.
func (m *ShowNormals) Scatter(rayIn core.Ray, hit *core.HitRecord, rng *core.Rand) core.ScatterResult {
	return core.ScatterResult{
		Attenuation: hit.Normal.Add(core.NewVec3(1, 1, 1)).Multiply(0.5),
	}
}
