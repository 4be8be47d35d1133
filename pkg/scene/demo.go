// Package scene builds the worlds handed to the renderer. The renderer only
// consumes the Hittable capability; everything about scene content lives
// here.
package scene

import (
	"github.com/spectralpath/raytracer/pkg/core"
	"github.com/spectralpath/raytracer/pkg/geometry"
	"github.com/spectralpath/raytracer/pkg/material"
)

// Demo returns the standard demonstration scene: a huge diffuse ground
// sphere, a few colored spheres, and a row of small normal-shaded spheres
// along the bottom. Materials are shared across the spheres that use them.
func Demo() *geometry.List {
	gray := material.NewLambertian(core.NewVec3(0.7, 0.7, 0.7))
	red := material.NewConstant(core.NewVec3(1, 0, 0))
	blue := material.NewConstant(core.NewVec3(0, 0, 1))
	normals := material.NewShowNormals()

	world := geometry.NewList(
		geometry.NewSphere(core.NewVec3(0, -950.5, -1), 950, gray), // ground
		geometry.NewSphere(core.NewVec3(-3.5, 0.45, -1.8), 0.8, red),
		geometry.NewSphere(core.NewVec3(-1.3, 0.18, -5), 0.7, blue),
		geometry.NewSphere(core.NewVec3(-0.7, 0.2, -0.3), 0.6, gray),
		geometry.NewSphere(core.NewVec3(1.2, 0, -2), 0.5, gray),
	)

	// Small spheres along the bottom edge.
	for i := 0; i < 5; i++ {
		world.Add(geometry.NewSphere(core.NewVec3(-3.5+0.5*float64(i), -0.3, 1.2), 0.2, normals))
	}

	return world
}
