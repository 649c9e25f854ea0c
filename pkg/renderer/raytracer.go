package renderer

import (
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
)

// ShadowAcneEpsilon is the tMin used for every scene query so a bounce cannot re-hit its own surface
const ShadowAcneEpsilon = 0.001

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int // Image width in pixels
	Height          int // Image height in pixels
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           1280,
		Height:          720,
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	GetWorld() geometry.Shape
	GetBackgroundColors() (topColor, bottomColor core.Vec3)
	GetCameraOrigin() core.Vec3
}

// RGB is a quantized 8-bit pixel
type RGB struct {
	R, G, B uint8
}

// Raytracer resolves pixel colors for a scene. It holds no mutable state,
// so one Raytracer can be shared by any number of goroutines as long as each
// passes its own *rand.Rand.
type Raytracer struct {
	scene  Scene
	world  geometry.Shape
	camera *Camera
	config SamplingConfig
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, config SamplingConfig) *Raytracer {
	aspectRatio := float64(config.Width) / float64(config.Height)
	return &Raytracer{
		scene:  scene,
		world:  scene.GetWorld(),
		camera: NewCamera(scene.GetCameraOrigin(), aspectRatio),
		config: config,
	}
}

// Config returns the sampling configuration
func (rt *Raytracer) Config() SamplingConfig {
	return rt.config
}

// Camera returns the camera derived from the scene and image aspect ratio
func (rt *Raytracer) Camera() *Camera {
	return rt.camera
}

// backgroundGradient returns a gradient color based on ray direction
func (rt *Raytracer) backgroundGradient(r core.Ray) core.Vec3 {
	topColor, bottomColor := rt.scene.GetBackgroundColors()

	unitDirection := r.Direction.Normalize()

	// Map y from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	return bottomColor.Lerp(topColor, t)
}

// RayColor returns the color carried back along r with at most depth bounces
func (rt *Raytracer) RayColor(r core.Ray, depth int, random *rand.Rand) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	hit, isHit := rt.world.Hit(r, ShadowAcneEpsilon, math.Inf(1))
	if !isHit {
		return rt.backgroundGradient(r)
	}

	scatter, didScatter := hit.Material.Scatter(r, *hit, random)
	if !didScatter {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	return scatter.Attenuation.MultiplyVec(rt.RayColor(scatter.Scattered, depth-1, random))
}

// SamplePixel traces SamplesPerPixel jittered rays through pixel (i, j) and
// returns the sum of their colors. j counts up from the bottom row.
func (rt *Raytracer) SamplePixel(i, j int, random *rand.Rand) core.Vec3 {
	// A single-pixel axis would otherwise divide by zero
	uScale := float64(max(rt.config.Width-1, 1))
	vScale := float64(max(rt.config.Height-1, 1))

	colorAccum := core.Vec3{X: 0, Y: 0, Z: 0}
	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		u := (float64(i) + random.Float64()) / uScale
		v := (float64(j) + random.Float64()) / vScale

		ray := rt.camera.GetRay(u, v)
		colorAccum = colorAccum.Add(rt.RayColor(ray, rt.config.MaxDepth, random))
	}

	return colorAccum
}

// ToRGB converts a sum of samplesPerPixel linear colors into gamma-2 corrected bytes
func ToRGB(colorSum core.Vec3, samplesPerPixel int) RGB {
	mean := colorSum.Multiply(1.0 / float64(samplesPerPixel))
	return RGB{
		R: quantize(mean.X),
		G: quantize(mean.Y),
		B: quantize(mean.Z),
	}
}

// quantize maps a linear channel to a byte: 256*sqrt(c), clamped to [0, 255]
func quantize(c float64) uint8 {
	if math.IsNaN(c) || c <= 0 {
		return 0
	}
	return uint8(math.Min(255, 256*math.Sqrt(c)))
}

// RenderBounds renders pixels within bounds (image coordinates, row 0 at the top) into img
func (rt *Raytracer) RenderBounds(bounds image.Rectangle, img *image.RGBA, random *rand.Rand) RenderStats {
	stats := RenderStats{}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		// Camera v grows upward while image rows grow downward
		j := rt.config.Height - 1 - y
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			rgb := ToRGB(rt.SamplePixel(i, j, random), rt.config.SamplesPerPixel)
			img.SetRGBA(i, y, color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255})

			stats.TotalPixels++
			stats.TotalSamples += rt.config.SamplesPerPixel
		}
	}

	return stats
}
