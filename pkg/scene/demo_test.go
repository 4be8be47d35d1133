package scene

import (
	"math"
	"testing"

	"github.com/spectralpath/raytracer/pkg/core"
)

func TestDemo(t *testing.T) {
	world := Demo()

	if len(world.Objects) != 10 {
		t.Fatalf("Expected 10 spheres, got %d", len(world.Objects))
	}

	// Looking straight down from above the scene must hit the ground.
	ray := core.NewRay(core.NewVec3(0, 10, -1), core.NewVec3(0, -1, 0))
	rec, ok := world.Hit(ray, core.NewInterval(1e-4, math.Inf(1)))
	if !ok {
		t.Fatal("Expected a ground hit from above")
	}
	if rec.Material == nil {
		t.Error("Hit record should carry the sphere's material")
	}
	if ray.Direction.Dot(rec.Normal) > 0 {
		t.Error("Normal should oppose the incoming ray")
	}
}
