package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/rtview/go-interactive-raytracer/pkg/core"
	"github.com/rtview/go-interactive-raytracer/pkg/material"
	"github.com/rtview/go-interactive-raytracer/pkg/renderer"
	"github.com/rtview/go-interactive-raytracer/pkg/scene"
)

// Config represents the main configuration
type Config struct {
	Render RenderConfig `yaml:"render"`
	Camera CameraConfig `yaml:"camera"`
	Scene  SceneConfig  `yaml:"scene"`
}

// RenderConfig contains render loop configuration
type RenderConfig struct {
	Width           int  `yaml:"width"`
	SamplesPerPixel int  `yaml:"samples_per_pixel"`
	MaxDepth        int  `yaml:"max_depth"`
	Antialiasing    bool `yaml:"antialiasing"`
	Shadows         bool `yaml:"shadows"`
	Reflections     bool `yaml:"reflections"`
	Refractions     bool `yaml:"refractions"`
}

// CameraConfig contains camera placement configuration
type CameraConfig struct {
	LookFrom      [3]float64 `yaml:"look_from"`
	LookAt        [3]float64 `yaml:"look_at"`
	VUp           [3]float64 `yaml:"vup"`
	VFov          float64    `yaml:"vfov"`
	AspectRatio   float64    `yaml:"aspect_ratio"`
	DefocusAngle  float64    `yaml:"defocus_angle"`
	FocusDistance float64    `yaml:"focus_distance"`
}

// SceneConfig selects a built-in scene by name or describes the scene
// as an explicit list of spheres
type SceneConfig struct {
	Name    string         `yaml:"name"`
	Spheres []SphereConfig `yaml:"spheres"`
}

// SphereConfig describes a single sphere and its material
type SphereConfig struct {
	Center   [3]float64     `yaml:"center"`
	Radius   float64        `yaml:"radius"`
	Material MaterialConfig `yaml:"material"`
}

// MaterialConfig describes a surface material
type MaterialConfig struct {
	Type            string     `yaml:"type"` // lambertian, metal, dielectric
	Albedo          [3]float64 `yaml:"albedo"`
	Fuzz            float64    `yaml:"fuzz"`
	RefractionIndex float64    `yaml:"refraction_index"`
}

// maxDepthLimit bounds the recursive shading depth so the bounce chain
// stays well within safe stack limits
const maxDepthLimit = 64

// Default returns the configuration matching the built-in defaults
func Default() Config {
	cam := renderer.DefaultCameraConfig()
	return Config{
		Render: RenderConfig{
			Width:           cam.Width,
			SamplesPerPixel: cam.SamplesPerPixel,
			MaxDepth:        cam.MaxDepth,
			Antialiasing:    true,
			Shadows:         true,
			Reflections:     true,
			Refractions:     true,
		},
		Camera: CameraConfig{
			LookFrom:      [3]float64{cam.LookFrom.X, cam.LookFrom.Y, cam.LookFrom.Z},
			LookAt:        [3]float64{cam.LookAt.X, cam.LookAt.Y, cam.LookAt.Z},
			VUp:           [3]float64{cam.VUp.X, cam.VUp.Y, cam.VUp.Z},
			VFov:          cam.VFov,
			AspectRatio:   cam.AspectRatio,
			DefocusAngle:  cam.DefocusAngle,
			FocusDistance: cam.FocusDistance,
		},
		Scene: SceneConfig{Name: "default"},
	}
}

// Load reads and parses a configuration file
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse parses YAML configuration data, starting from the defaults so
// omitted sections keep their built-in values
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.clampValues()
	return cfg, nil
}

// clampValues saturates out-of-range numeric settings instead of
// rejecting them
func (c *Config) clampValues() {
	if c.Render.Width < 1 {
		c.Render.Width = 1
	}
	if c.Render.SamplesPerPixel < 1 {
		c.Render.SamplesPerPixel = 1
	}
	if c.Render.MaxDepth < 0 {
		c.Render.MaxDepth = 0
	}
	if c.Render.MaxDepth > maxDepthLimit {
		c.Render.MaxDepth = maxDepthLimit
	}
	if c.Camera.AspectRatio <= 0 {
		c.Camera.AspectRatio = 1.0
	}
}

// CameraConfig converts the configuration into the renderer's camera
// configuration
func (c Config) CameraConfig() renderer.CameraConfig {
	return renderer.CameraConfig{
		AspectRatio:     c.Camera.AspectRatio,
		Width:           c.Render.Width,
		VFov:            c.Camera.VFov,
		LookFrom:        vec3(c.Camera.LookFrom),
		LookAt:          vec3(c.Camera.LookAt),
		VUp:             vec3(c.Camera.VUp),
		SamplesPerPixel: c.Render.SamplesPerPixel,
		MaxDepth:        c.Render.MaxDepth,
		DefocusAngle:    c.Camera.DefocusAngle,
		FocusDistance:   c.Camera.FocusDistance,
		Antialiasing:    c.Render.Antialiasing,
		Shadows:         c.Render.Shadows,
		Reflections:     c.Render.Reflections,
		Refractions:     c.Render.Refractions,
	}
}

// BuildScene constructs the scene the configuration describes: the
// explicit sphere list when present, otherwise the named built-in
func (c Config) BuildScene() (*scene.Scene, error) {
	if len(c.Scene.Spheres) > 0 {
		s := scene.NewScene()
		for i, sc := range c.Scene.Spheres {
			mat, err := sc.Material.build()
			if err != nil {
				return nil, fmt.Errorf("sphere %d: %w", i, err)
			}
			s.AddSphere(vec3(sc.Center), sc.Radius, mat)
		}
		return s, nil
	}

	switch c.Scene.Name {
	case "", "default":
		return scene.NewDefaultScene(), nil
	case "three-spheres":
		return scene.NewThreeSphereScene(), nil
	default:
		return nil, fmt.Errorf("unknown scene %q", c.Scene.Name)
	}
}

// build constructs the material a MaterialConfig describes
func (m MaterialConfig) build() (material.Material, error) {
	switch m.Type {
	case "lambertian":
		return material.NewLambertian(vec3(m.Albedo)), nil
	case "metal":
		return material.NewMetal(vec3(m.Albedo), m.Fuzz), nil
	case "dielectric":
		return material.NewDielectric(m.RefractionIndex), nil
	default:
		return nil, fmt.Errorf("unknown material type %q", m.Type)
	}
}

func vec3(v [3]float64) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}
