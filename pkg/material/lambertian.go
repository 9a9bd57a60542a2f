package material

import (
	"math/rand"

	"github.com/rtview/go-interactive-raytracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Vec3 // Base color/reflectance
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements the Material interface for lambertian scattering.
// The scatter direction is the surface normal perturbed by a random
// unit vector, which approximates a cosine-weighted distribution.
func (l *Lambertian) Scatter(rayIn core.Ray, rec HitRecord, random *rand.Rand) (ScatterResult, bool) {
	scatterDirection := rec.Normal.Add(core.RandomUnitVector(random))

	// Catch degenerate scatter direction
	if scatterDirection.NearZero() {
		scatterDirection = rec.Normal
	}

	return ScatterResult{
		Scattered:   core.NewRay(rec.Point, scatterDirection),
		Attenuation: l.Albedo,
	}, true
}
