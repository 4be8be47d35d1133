package material

import (
	"math"
	"testing"

	"github.com/spectralpath/raytracer/pkg/core"
)

func testHit(normal core.Vec3) *core.HitRecord {
	return &core.HitRecord{
		Point:     core.NewVec3(0, 0, -1),
		Normal:    normal,
		T:         1.0,
		FrontFace: true,
	}
}

func TestConstant_Scatter(t *testing.T) {
	red := NewConstant(core.NewVec3(1, 0, 0))
	rayIn := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	result := red.Scatter(rayIn, testHit(core.NewVec3(0, 0, 1)), core.NewRand(42))

	if result.Continues {
		t.Error("Constant material should absorb the ray")
	}
	if result.Attenuation != core.NewVec3(1, 0, 0) {
		t.Errorf("Expected attenuation (1,0,0), got %v", result.Attenuation)
	}
}

func TestShowNormals_Scatter(t *testing.T) {
	m := NewShowNormals()
	rayIn := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	tests := []struct {
		name   string
		normal core.Vec3
		want   core.Vec3
	}{
		{"+z normal", core.NewVec3(0, 0, 1), core.NewVec3(0.5, 0.5, 1)},
		{"-x normal", core.NewVec3(-1, 0, 0), core.NewVec3(0, 0.5, 0.5)},
		{"diagonal", core.NewVec3(1, 1, 1), core.NewVec3(1, 1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := m.Scatter(rayIn, testHit(tt.normal), core.NewRand(42))
			if result.Continues {
				t.Error("ShowNormals should not continue the ray")
			}
			if result.Attenuation.Subtract(tt.want).Length() > 1e-12 {
				t.Errorf("Expected %v, got %v", tt.want, result.Attenuation)
			}
		})
	}
}

func TestLambertian_Scatter(t *testing.T) {
	m := NewLambertian(core.NewVec3(0.7, 0.7, 0.7))
	rayIn := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, -1, 0))
	hit := testHit(core.NewVec3(0, 1, 0))
	rng := core.NewRand(42)

	for i := 0; i < 1000; i++ {
		result := m.Scatter(rayIn, hit, rng)

		if !result.Continues {
			t.Fatal("Lambertian should always continue")
		}
		if result.Attenuation != m.Albedo {
			t.Fatalf("Expected attenuation %v, got %v", m.Albedo, result.Attenuation)
		}
		if result.Scattered.Origin != hit.Point {
			t.Fatalf("Scattered ray should start at the hit point, got %v", result.Scattered.Origin)
		}
		if result.Scattered.Direction.NearZero() {
			t.Fatal("Scattered direction must never be near zero")
		}
		// Normal plus a hemisphere unit vector always points off the surface.
		if result.Scattered.Direction.Dot(hit.Normal) < 0 {
			t.Fatalf("Scattered direction %v points into the surface", result.Scattered.Direction)
		}
	}
}

func TestScatterDirection_Degenerate(t *testing.T) {
	normal := core.NewVec3(0, 1, 0)

	// A random term that exactly cancels the normal must be replaced by the
	// normal itself.
	if got := scatterDirection(normal, normal.Negate()); got != normal {
		t.Errorf("Expected degenerate direction replaced by normal, got %v", got)
	}

	// Near-cancellation counts as degenerate too.
	almost := core.NewVec3(1e-9, -1, 1e-9)
	if got := scatterDirection(normal, almost); got != normal {
		t.Errorf("Expected near-degenerate direction replaced by normal, got %v", got)
	}

	// A healthy direction passes through unchanged.
	random := core.NewVec3(0, 0, 1)
	want := normal.Add(random)
	if got := scatterDirection(normal, random); got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestLambertian_DirectionDistribution(t *testing.T) {
	// Directions should not collapse onto the normal: check that the mean
	// deviation from the normal is substantial over many samples.
	m := NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	rayIn := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, -1, 0))
	hit := testHit(core.NewVec3(0, 1, 0))
	rng := core.NewRand(7)

	sum := 0.0
	const n = 2000
	for i := 0; i < n; i++ {
		d := m.Scatter(rayIn, hit, rng).Scattered.Direction.Normalize()
		sum += math.Acos(math.Min(1, d.Dot(hit.Normal)))
	}
	meanAngle := sum / n

	if meanAngle < 0.1 {
		t.Errorf("Scatter directions collapse onto the normal, mean angle %f", meanAngle)
	}
}
