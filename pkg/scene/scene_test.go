package scene

import (
	"math"
	"testing"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

func TestBuiltinScenes(t *testing.T) {
	tests := []struct {
		name       string
		primitives int
	}{
		{"default", 2},
		{"materials", 4},
		{"glass", 5},
		{"empty", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Create(tt.name)
			if err != nil {
				t.Fatalf("Create(%q) failed: %v", tt.name, err)
			}
			if s.Name != tt.name {
				t.Errorf("Expected name %q, got %q", tt.name, s.Name)
			}
			if got := s.GetPrimitiveCount(); got != tt.primitives {
				t.Errorf("Expected %d primitives, got %d", tt.primitives, got)
			}

			top, bottom := s.GetBackgroundColors()
			if !top.Equals(DefaultTopColor) || !bottom.Equals(DefaultBottomColor) {
				t.Errorf("Expected default sky, got top %v bottom %v", top, bottom)
			}
			if !s.GetCameraOrigin().Equals(core.Vec3{}) {
				t.Errorf("Expected camera at origin, got %v", s.GetCameraOrigin())
			}
		})
	}
}

func TestCreate_UnknownScene(t *testing.T) {
	if _, err := Create("no-such-scene"); err == nil {
		t.Error("Expected error for unknown scene")
	}
}

func TestDefaultScene_Geometry(t *testing.T) {
	s := NewDefaultScene()

	// Looking straight ahead hits the small sphere's front at z = -0.5
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))
	hit, ok := s.GetWorld().Hit(ray, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("Expected the forward ray to hit the center sphere")
	}
	if math.Abs(hit.T-0.5) > 1e-9 {
		t.Errorf("Expected hit at t=0.5, got %f", hit.T)
	}

	// Looking straight down beside the sphere lands on the curved ground just below y = -0.5
	ray = core.NewRay(core.NewVec3(2, 0, -1), core.NewVec3(0, -1, 0))
	hit, ok = s.GetWorld().Hit(ray, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("Expected the downward ray to hit the ground")
	}
	expectedY := -100.5 + math.Sqrt(100*100-2*2)
	if math.Abs(hit.Point.Y-expectedY) > 1e-6 {
		t.Errorf("Expected ground at y=%f, got %f", expectedY, hit.Point.Y)
	}
	if _, isLambertian := hit.Material.(*material.Lambertian); !isLambertian {
		t.Errorf("Expected lambertian ground, got %T", hit.Material)
	}
}

func TestGlassScene_HollowShellNormalsPointInward(t *testing.T) {
	s := NewGlassScene()

	var inner *geometry.Sphere
	for _, shape := range s.World.Shapes {
		if sphere, ok := shape.(*geometry.Sphere); ok && sphere.Radius < 0 {
			inner = sphere
		}
	}
	if inner == nil {
		t.Fatal("Expected a negative-radius inner sphere")
	}

	// A ray from the bubble's center outward hits the inner surface from the inside
	ray := core.NewRay(inner.Center, core.NewVec3(1, 0, 0))
	hit, ok := inner.Hit(ray, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("Expected to hit the inner shell")
	}
	if !hit.FrontFace {
		t.Error("The inward-facing shell should be a front face for rays from its center")
	}
}
