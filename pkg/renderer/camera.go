package renderer

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
)

const (
	viewportHeight = 2.0
	focalLength    = 1.0
)

// Camera generates rays for rendering. It looks down -Z with +Y up.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewCamera creates a camera at origin whose viewport matches aspectRatio (width/height)
func NewCamera(origin core.Vec3, aspectRatio float64) *Camera {
	viewportWidth := aspectRatio * viewportHeight

	horizontal := core.NewVec3(viewportWidth, 0, 0)
	vertical := core.NewVec3(0, viewportHeight, 0)
	lowerLeftCorner := origin.Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(core.NewVec3(0, 0, focalLength))

	return &Camera{
		origin:          origin,
		horizontal:      horizontal,
		vertical:        vertical,
		lowerLeftCorner: lowerLeftCorner,
	}
}

// Origin returns the camera position
func (c *Camera) Origin() core.Vec3 {
	return c.origin
}

// GetRay generates a ray for screen coordinates (u, v) where 0 <= u,v <= 1.
// (0, 0) is the lower-left corner of the viewport.
func (c *Camera) GetRay(u, v float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(u)).
		Add(c.vertical.Multiply(v)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction)
}
