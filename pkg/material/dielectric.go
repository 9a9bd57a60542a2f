package material

import (
	"math"
	"math/rand"

	"github.com/rtview/go-interactive-raytracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can
// both reflect and refract
type Dielectric struct {
	RefractiveIndex float64 // Index of refraction (e.g. 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter implements the Material interface for dielectric scattering
func (d *Dielectric) Scatter(rayIn core.Ray, rec HitRecord, random *rand.Rand) (ScatterResult, bool) {
	// Clear glass absorbs nothing
	attenuation := core.NewVec3(1.0, 1.0, 1.0)

	// Entering the material crosses from air into glass, exiting the
	// other way around
	var refractionRatio float64
	if rec.FrontFace {
		refractionRatio = 1.0 / d.RefractiveIndex
	} else {
		refractionRatio = d.RefractiveIndex
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(-unitDirection.Dot(rec.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	// Total internal reflection: Snell's law has no solution
	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || Reflectance(cosTheta, refractionRatio) > random.Float64() {
		direction = reflect(unitDirection, rec.Normal)
	} else {
		direction = refract(unitDirection, rec.Normal, refractionRatio)
	}

	return ScatterResult{
		Scattered:   core.NewRay(rec.Point, direction),
		Attenuation: attenuation,
	}, true
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
