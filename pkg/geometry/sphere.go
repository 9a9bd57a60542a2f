package geometry

import (
	"math"

	"github.com/rtview/go-interactive-raytracer/pkg/core"
	"github.com/rtview/go-interactive-raytracer/pkg/material"
)

// Sphere represents a sphere shape with an attached material
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Hit tests if a ray intersects with the sphere within rayT
func (s *Sphere) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	// Vector from ray origin to sphere center
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + 2bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer root first, then the farther one
	root := (-halfB - sqrtD) / a
	if !rayT.Surrounds(root) {
		root = (-halfB + sqrtD) / a
		if !rayT.Surrounds(root) {
			return nil, false
		}
	}

	rec := &material.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	// Outward normal points from center to hit point. Dividing by the
	// radius also handles negative radii used for hollow spheres.
	outwardNormal := rec.Point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	rec.SetFaceNormal(ray, outwardNormal)

	return rec, true
}
