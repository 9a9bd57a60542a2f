package scene

import (
	"github.com/rtview/go-interactive-raytracer/pkg/core"
	"github.com/rtview/go-interactive-raytracer/pkg/geometry"
	"github.com/rtview/go-interactive-raytracer/pkg/material"
)

// Scene contains all the elements needed for rendering. Objects are
// kept in a flat unsorted list; intersection cost is linear in the
// object count, which is fine for the scene sizes this renderer
// targets (tens of objects).
type Scene struct {
	Objects []geometry.Hittable

	// Background gradient colors. Rays that miss every object blend
	// from BackgroundBottom at the horizon to BackgroundTop at the
	// zenith based on the ray direction's vertical component.
	BackgroundTop    core.Vec3
	BackgroundBottom core.Vec3
}

// NewScene creates an empty scene with the default sky gradient
func NewScene() *Scene {
	return &Scene{
		Objects:          make([]geometry.Hittable, 0),
		BackgroundTop:    core.NewVec3(0.5, 0.7, 1.0),
		BackgroundBottom: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// Add appends objects to the scene
func (s *Scene) Add(objects ...geometry.Hittable) {
	s.Objects = append(s.Objects, objects...)
}

// AddSphere adds a sphere with the given material to the scene
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat material.Material) {
	s.Add(geometry.NewSphere(center, radius, mat))
}

// Hit finds the nearest intersection across all objects within rayT.
// The interval's upper bound shrinks to the closest hit found so far,
// so each object is only asked for hits nearer than the current best.
func (s *Scene) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closest := rayT

	for _, object := range s.Objects {
		if rec, ok := object.Hit(ray, closest); ok {
			closestHit = rec
			closest.Max = rec.T
		}
	}

	return closestHit, closestHit != nil
}

// Background returns the sky color for a ray that hit nothing
func (s *Scene) Background(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()

	// Map the y-component from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return s.BackgroundBottom.Multiply(1.0 - t).Add(s.BackgroundTop.Multiply(t))
}
