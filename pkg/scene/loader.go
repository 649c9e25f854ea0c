package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

// Vec3Cfg is a vector written as a JSON array [x, y, z]
type Vec3Cfg [3]float64

func (v Vec3Cfg) Vec3() core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

type BackgroundCfg struct {
	Top    *Vec3Cfg `json:"top,omitempty"`
	Bottom *Vec3Cfg `json:"bottom,omitempty"`
}

type MaterialCfg struct {
	Type            string  `json:"type"` // lambertian, metal or dielectric
	Albedo          Vec3Cfg `json:"albedo"`
	Fuzz            float64 `json:"fuzz,omitempty"`
	RefractiveIndex float64 `json:"refractiveIndex,omitempty"`
}

type SphereCfg struct {
	Center   Vec3Cfg `json:"center"`
	Radius   float64 `json:"radius"`
	Material string  `json:"material"` // key into Config.Materials
}

type CameraCfg struct {
	Origin Vec3Cfg `json:"origin"`
}

// Config is the on-disk scene description
type Config struct {
	Name       string                 `json:"name"`
	Background BackgroundCfg          `json:"background"`
	Materials  map[string]MaterialCfg `json:"materials"`
	Spheres    []SphereCfg            `json:"spheres"`
	Camera     CameraCfg              `json:"camera"`
}

// Build validates and constructs the runtime material
func (mc MaterialCfg) Build() (material.Material, error) {
	switch mc.Type {
	case "lambertian":
		return material.NewLambertian(mc.Albedo.Vec3()), nil
	case "metal":
		return material.NewMetal(mc.Albedo.Vec3(), mc.Fuzz), nil
	case "dielectric":
		if mc.RefractiveIndex <= 0 {
			return nil, fmt.Errorf("dielectric refractive index must be > 0, got %g", mc.RefractiveIndex)
		}
		return material.NewDielectric(mc.RefractiveIndex), nil
	default:
		return nil, fmt.Errorf("unknown material type %q", mc.Type)
	}
}

// Build validates the description and constructs the scene.
// Spheres that name the same material share one instance.
func (c *Config) Build() (*Scene, error) {
	s := New(c.Name)
	if c.Background.Top != nil {
		s.TopColor = c.Background.Top.Vec3()
	}
	if c.Background.Bottom != nil {
		s.BottomColor = c.Background.Bottom.Vec3()
	}
	s.CameraOrigin = c.Camera.Origin.Vec3()

	// Build in sorted order so the first reported error is stable
	names := make([]string, 0, len(c.Materials))
	for name := range c.Materials {
		names = append(names, name)
	}
	sort.Strings(names)

	materials := make(map[string]material.Material, len(names))
	for _, name := range names {
		mat, err := c.Materials[name].Build()
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", name, err)
		}
		materials[name] = mat
	}

	for i, sc := range c.Spheres {
		mat, ok := materials[sc.Material]
		if !ok {
			return nil, fmt.Errorf("sphere %d: unknown material %q", i, sc.Material)
		}
		// Negative radii (inward normals) are only valid for hollow dielectric shells
		if _, glass := mat.(*material.Dielectric); sc.Radius == 0 || (sc.Radius < 0 && !glass) {
			return nil, fmt.Errorf("sphere %d: radius must be > 0 (or < 0 for a dielectric shell), got %g", i, sc.Radius)
		}
		s.AddSphere(sc.Center.Vec3(), sc.Radius, mat)
	}

	return s, nil
}

// Parse decodes a JSON scene description
func Parse(data []byte) (*Scene, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode scene: %w", err)
	}
	return cfg.Build()
}

// LoadFile reads and builds a JSON scene description from path
func LoadFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = sceneIDFromPath(path)
	}
	return s, nil
}
