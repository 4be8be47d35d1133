package core

import "testing"

func TestHitRecord_SetFaceNormal(t *testing.T) {
	tests := []struct {
		name          string
		rayDirection  Vec3
		outwardNormal Vec3
		wantFront     bool
		wantNormal    Vec3
	}{
		{
			name:          "ray opposes outward normal",
			rayDirection:  NewVec3(0, 0, -1),
			outwardNormal: NewVec3(0, 0, 1),
			wantFront:     true,
			wantNormal:    NewVec3(0, 0, 1),
		},
		{
			name:          "ray from inside the surface",
			rayDirection:  NewVec3(0, 0, 1),
			outwardNormal: NewVec3(0, 0, 1),
			wantFront:     false,
			wantNormal:    NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := NewRay(NewVec3(0, 0, 0), tt.rayDirection)
			rec := &HitRecord{}
			rec.SetFaceNormal(ray, tt.outwardNormal)

			if rec.FrontFace != tt.wantFront {
				t.Errorf("FrontFace = %t, want %t", rec.FrontFace, tt.wantFront)
			}
			if rec.Normal != tt.wantNormal {
				t.Errorf("Normal = %v, want %v", rec.Normal, tt.wantNormal)
			}
			// The reported normal must always oppose the incoming ray.
			if ray.Direction.Dot(rec.Normal) > 0 {
				t.Errorf("Normal %v does not oppose ray %v", rec.Normal, ray.Direction)
			}
		})
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, -2))

	if got := ray.At(0); got != NewVec3(1, 2, 3) {
		t.Errorf("At(0) = %v, want origin", got)
	}
	if got := ray.At(2); got != NewVec3(1, 2, -1) {
		t.Errorf("At(2) = %v, want (1,2,-1)", got)
	}
}
