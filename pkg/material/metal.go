package material

import (
	"math/rand"

	"github.com/rtview/go-interactive-raytracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo core.Vec3 // Metal color
	Fuzz   float64   // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material with fuzz clamped to [0, 1]
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	if fuzz > 1.0 {
		fuzz = 1.0
	}
	if fuzz < 0.0 {
		fuzz = 0.0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter implements the Material interface for metal scattering
func (m *Metal) Scatter(rayIn core.Ray, rec HitRecord, random *rand.Rand) (ScatterResult, bool) {
	reflected := reflect(rayIn.Direction.Normalize(), rec.Normal)

	// Perturb the reflection direction by the fuzz factor
	if m.Fuzz > 0 {
		reflected = reflected.Add(core.RandomUnitVector(random).Multiply(m.Fuzz))
	}

	scattered := core.NewRay(rec.Point, reflected)

	// Rays scattered below the surface are absorbed
	scatters := scattered.Direction.Dot(rec.Normal) > 0

	return ScatterResult{
		Scattered:   scattered,
		Attenuation: m.Albedo,
	}, scatters
}
