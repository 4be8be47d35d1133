package geometry

import (
	"math"
	"testing"

	"github.com/spectralpath/raytracer/pkg/core"
)

func TestList_Hit_Closest(t *testing.T) {
	near := NewSphere(core.NewVec3(0, 0, -3), 1.0, nil)
	far := NewSphere(core.NewVec3(0, 0, -10), 1.0, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	// The closest hit wins regardless of insertion order.
	orders := map[string]*List{
		"near first": NewList(near, far),
		"far first":  NewList(far, near),
	}

	for name, list := range orders {
		t.Run(name, func(t *testing.T) {
			rec, ok := list.Hit(ray, shadingInterval)
			if !ok {
				t.Fatal("Expected hit, got miss")
			}
			if math.Abs(rec.T-2.0) > 1e-12 {
				t.Errorf("Expected closest hit at t=2, got t=%f", rec.T)
			}
		})
	}
}

func TestList_Hit_Empty(t *testing.T) {
	list := NewList()
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if rec, ok := list.Hit(ray, shadingInterval); ok {
		t.Errorf("Empty list should never hit, got t=%f", rec.T)
	}
}

func TestList_Hit_RespectsInterval(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1.0, nil)
	list := NewList(sphere)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if _, ok := list.Hit(ray, core.NewInterval(1e-4, 2)); ok {
		t.Error("Hit beyond the interval's upper bound should be rejected")
	}
}

func TestList_AddAndClear(t *testing.T) {
	list := NewList()
	list.Add(NewSphere(core.NewVec3(0, 0, -3), 1.0, nil))
	list.Add(NewSphere(core.NewVec3(0, 0, -6), 1.0, nil))

	if len(list.Objects) != 2 {
		t.Fatalf("Expected 2 objects, got %d", len(list.Objects))
	}

	list.Clear()
	if len(list.Objects) != 0 {
		t.Errorf("Expected empty list after Clear, got %d objects", len(list.Objects))
	}
}
