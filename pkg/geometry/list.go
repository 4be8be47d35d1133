package geometry

import (
	"github.com/spectralpath/raytracer/pkg/core"
)

// List is a composite Hittable holding many primitives. A hit query scans
// every member and reports the globally closest hit; insertion order never
// changes the result.
type List struct {
	Objects []core.Hittable
}

// NewList creates a list from the given objects
func NewList(objects ...core.Hittable) *List {
	return &List{Objects: objects}
}

// Add appends an object to the list
func (l *List) Add(object core.Hittable) {
	l.Objects = append(l.Objects, object)
}

// Clear removes all objects from the list
func (l *List) Clear() {
	l.Objects = nil
}

// Hit returns the closest intersection across all members. The interval's
// upper bound narrows to the closest hit found so far, which both rejects
// farther hits early and guarantees nearest-hit-wins.
func (l *List) Hit(ray core.Ray, t core.Interval) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	closestSoFar := t.Max

	for _, object := range l.Objects {
		if rec, ok := object.Hit(ray, core.NewInterval(t.Min, closestSoFar)); ok {
			closest = rec
			closestSoFar = rec.T
		}
	}

	return closest, closest != nil
}
