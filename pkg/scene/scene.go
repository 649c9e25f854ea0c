package scene

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

// Default sky colors used when a scene does not set its own
var (
	DefaultTopColor    = core.NewVec3(0.5, 0.7, 1.0) // blue sky
	DefaultBottomColor = core.NewVec3(1.0, 1.0, 1.0) // white horizon
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	World        *geometry.HittableList // Objects in the scene
	TopColor     core.Vec3              // Sky color for rays pointing straight up
	BottomColor  core.Vec3              // Sky color for rays pointing straight down
	CameraOrigin core.Vec3
}

// New creates an empty scene with the default sky and a camera at the origin
func New(name string) *Scene {
	return &Scene{
		Name:        name,
		World:       geometry.NewHittableList(),
		TopColor:    DefaultTopColor,
		BottomColor: DefaultBottomColor,
	}
}

// GetWorld returns the hit-list the renderer queries
func (s *Scene) GetWorld() geometry.Shape {
	return s.World
}

// GetBackgroundColors returns the sky gradient endpoints
func (s *Scene) GetBackgroundColors() (topColor, bottomColor core.Vec3) {
	return s.TopColor, s.BottomColor
}

// GetCameraOrigin returns where primary rays start
func (s *Scene) GetCameraOrigin() core.Vec3 {
	return s.CameraOrigin
}

// AddSphere adds a sphere to the scene
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat material.Material) {
	s.World.Add(geometry.NewSphere(center, radius, mat))
}

// GetPrimitiveCount returns the number of objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return s.World.Len()
}
