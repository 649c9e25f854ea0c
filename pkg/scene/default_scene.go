package scene

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

// groundCenter and groundRadius describe a huge sphere whose top reads as a floor at y = -0.5
var (
	groundCenter = core.NewVec3(0, -100.5, -1)
	groundRadius = 100.0
)

// NewDefaultScene creates the classic two-sphere scene: a matte sphere resting on a matte ground
func NewDefaultScene() *Scene {
	s := New("default")

	gray := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

	s.AddSphere(core.NewVec3(0, 0, -1), 0.5, gray)
	s.AddSphere(groundCenter, groundRadius, gray)

	return s
}

// NewMaterialsScene creates a row of three spheres showing diffuse and metal surfaces
func NewMaterialsScene() *Scene {
	s := New("materials")

	// Create materials
	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3))
	metalSilver := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.3)
	metalGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0)

	s.AddSphere(groundCenter, groundRadius, ground)
	s.AddSphere(core.NewVec3(0, 0, -1), 0.5, center)
	s.AddSphere(core.NewVec3(-1, 0, -1), 0.5, metalSilver)
	s.AddSphere(core.NewVec3(1, 0, -1), 0.5, metalGold)

	return s
}

// NewGlassScene creates a scene with a solid glass sphere and a hollow glass bubble
func NewGlassScene() *Scene {
	s := New("glass")

	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	lambertianBlue := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	metalGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.0)
	glass := material.NewDielectric(1.5)

	s.AddSphere(groundCenter, groundRadius, ground)
	s.AddSphere(core.NewVec3(0, 0, -1), 0.5, lambertianBlue)
	s.AddSphere(core.NewVec3(-1, 0, -1), 0.5, glass)
	// Negative radius flips the normal inward, turning the pair into a thin shell
	s.AddSphere(core.NewVec3(-1, 0, -1), -0.4, glass)
	s.AddSphere(core.NewVec3(1, 0, -1), 0.5, metalGold)

	return s
}

// NewEmptyScene creates a scene with nothing but sky
func NewEmptyScene() *Scene {
	return New("empty")
}
