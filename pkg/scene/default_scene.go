package scene

import (
	"github.com/rtview/go-interactive-raytracer/pkg/core"
	"github.com/rtview/go-interactive-raytracer/pkg/material"
)

// NewDefaultScene creates the showcase scene: a large ground sphere, a
// central glass sphere, a ring of diffuse spheres, metal spheres on the
// diagonals, and smaller spheres at varying heights and distances.
func NewDefaultScene() *Scene {
	s := NewScene()

	// Ground
	s.AddSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))

	// Central large glass sphere
	s.AddSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5))

	// Surrounding diffuse spheres in a circle pattern
	s.AddSphere(core.NewVec3(-5, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.7, 0.2, 0.2)))
	s.AddSphere(core.NewVec3(5, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.2, 0.2, 0.7)))
	s.AddSphere(core.NewVec3(0, 1, -5), 1.0, material.NewLambertian(core.NewVec3(0.2, 0.7, 0.2)))
	s.AddSphere(core.NewVec3(0, 1, 5), 1.0, material.NewLambertian(core.NewVec3(0.7, 0.7, 0.2)))

	// Metal spheres at diagonal positions
	s.AddSphere(core.NewVec3(-3.5, 1, -3.5), 1.0, material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.0))
	s.AddSphere(core.NewVec3(3.5, 1, 3.5), 1.0, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 0.1))
	s.AddSphere(core.NewVec3(-3.5, 1, 3.5), 1.0, material.NewMetal(core.NewVec3(0.7, 0.4, 0.3), 0.2))
	s.AddSphere(core.NewVec3(3.5, 1, -3.5), 1.0, material.NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0.0))

	// Smaller spheres at different heights
	s.AddSphere(core.NewVec3(-2, 0.5, -2), 0.5, material.NewLambertian(core.NewVec3(0.6, 0.2, 0.6)))
	s.AddSphere(core.NewVec3(2, 0.5, 2), 0.5, material.NewLambertian(core.NewVec3(0.8, 0.4, 0.1)))
	s.AddSphere(core.NewVec3(-2, 0.5, 2), 0.5, material.NewLambertian(core.NewVec3(0.2, 0.6, 0.6)))
	s.AddSphere(core.NewVec3(2, 0.5, -2), 0.5, material.NewLambertian(core.NewVec3(0.8, 0.4, 0.6)))

	// Elevated spheres for depth
	s.AddSphere(core.NewVec3(-1, 2, -1), 0.3, material.NewLambertian(core.NewVec3(0.9, 0.9, 0.9)))
	s.AddSphere(core.NewVec3(1, 2, 1), 0.3, material.NewLambertian(core.NewVec3(0.1, 0.1, 0.1)))

	// Glass spheres with different refractive indices
	s.AddSphere(core.NewVec3(-6, 0.7, -2), 0.7, material.NewDielectric(1.3))
	s.AddSphere(core.NewVec3(6, 0.7, 2), 0.7, material.NewDielectric(1.8))

	// Far background spheres
	s.AddSphere(core.NewVec3(-10, 1.5, -8), 1.5, material.NewMetal(core.NewVec3(0.5, 0.5, 0.7), 0.3))
	s.AddSphere(core.NewVec3(8, 1.2, -10), 1.2, material.NewLambertian(core.NewVec3(0.4, 0.6, 0.4)))

	return s
}

// NewThreeSphereScene creates a minimal scene with one sphere of each
// material type, useful for quick renders and tests
func NewThreeSphereScene() *Scene {
	s := NewScene()

	s.AddSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0)))
	s.AddSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5)))
	s.AddSphere(core.NewVec3(-1, 0, -1), 0.5, material.NewDielectric(1.5))
	s.AddSphere(core.NewVec3(1, 0, -1), 0.5, material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.0))

	return s
}
