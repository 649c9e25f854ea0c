package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

func TestCamera_GetRay(t *testing.T) {
	aspectRatio := 16.0 / 9.0
	camera := NewCamera(core.NewVec3(0, 0, 0), aspectRatio)

	tests := []struct {
		name      string
		u, v      float64
		direction core.Vec3
	}{
		{"center", 0.5, 0.5, core.NewVec3(0, 0, -1)},
		{"lower left", 0, 0, core.NewVec3(-aspectRatio, -1, -1)},
		{"upper right", 1, 1, core.NewVec3(aspectRatio, 1, -1)},
		{"upper left", 0, 1, core.NewVec3(-aspectRatio, 1, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GetRay(tt.u, tt.v)
			if !ray.Origin.Equals(camera.Origin()) {
				t.Errorf("Ray should start at camera origin, got %v", ray.Origin)
			}
			if ray.Direction.Subtract(tt.direction).Length() > 1e-12 {
				t.Errorf("Expected direction %v, got %v", tt.direction, ray.Direction)
			}
		})
	}
}

func TestCamera_OffsetOrigin(t *testing.T) {
	origin := core.NewVec3(3, -2, 5)
	camera := NewCamera(origin, 1.0)

	ray := camera.GetRay(0.5, 0.5)
	if !ray.Origin.Equals(origin) {
		t.Errorf("Expected origin %v, got %v", origin, ray.Origin)
	}

	// Direction does not depend on where the camera sits
	expected := core.NewVec3(0, 0, -1)
	if ray.Direction.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected direction %v, got %v", expected, ray.Direction)
	}
}

func TestCamera_ViewportSpan(t *testing.T) {
	camera := NewCamera(core.NewVec3(0, 0, 0), 2.0)

	left := camera.GetRay(0, 0.5).Direction
	right := camera.GetRay(1, 0.5).Direction
	bottom := camera.GetRay(0.5, 0).Direction
	top := camera.GetRay(0.5, 1).Direction

	if width := right.X - left.X; math.Abs(width-4.0) > 1e-12 {
		t.Errorf("Expected viewport width 4, got %f", width)
	}
	if height := top.Y - bottom.Y; math.Abs(height-2.0) > 1e-12 {
		t.Errorf("Expected viewport height 2, got %f", height)
	}
}
