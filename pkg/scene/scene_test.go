package scene

import (
	"math"
	"testing"

	"github.com/rtview/go-interactive-raytracer/pkg/core"
	"github.com/rtview/go-interactive-raytracer/pkg/material"
)

func TestSceneHitReturnsClosest(t *testing.T) {
	s := NewScene()
	near := material.NewLambertian(core.NewVec3(1, 0, 0))
	far := material.NewLambertian(core.NewVec3(0, 1, 0))

	// Deliberately add the far sphere first so closest-hit selection
	// has to shrink the interval past it
	s.AddSphere(core.NewVec3(0, 0, -10), 1.0, far)
	s.AddSphere(core.NewVec3(0, 0, -5), 1.0, near)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	rec, ok := s.Hit(ray, core.NewInterval(core.HitEpsilon, math.Inf(1)))
	if !ok {
		t.Fatal("Expected a hit")
	}

	if math.Abs(rec.T-4.0) > 1e-9 {
		t.Errorf("Expected nearest hit at t = 4, got %f", rec.T)
	}
	if rec.Material != near {
		t.Error("Expected the hit record to carry the near sphere's material")
	}
}

func TestSceneHitEmpty(t *testing.T) {
	s := NewScene()
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if _, ok := s.Hit(ray, core.NewInterval(core.HitEpsilon, math.Inf(1))); ok {
		t.Error("Empty scene should never report a hit")
	}
}

func TestSceneBackgroundGradient(t *testing.T) {
	s := NewScene()

	// Straight up blends fully to the top color, straight down fully
	// to the bottom color
	up := s.Background(core.NewRay(core.Vec3{}, core.NewVec3(0, 1, 0)))
	if up.Subtract(s.BackgroundTop).Length() > 1e-9 {
		t.Errorf("Expected top color %v at zenith, got %v", s.BackgroundTop, up)
	}

	down := s.Background(core.NewRay(core.Vec3{}, core.NewVec3(0, -1, 0)))
	if down.Subtract(s.BackgroundBottom).Length() > 1e-9 {
		t.Errorf("Expected bottom color %v at nadir, got %v", s.BackgroundBottom, down)
	}

	// Horizontal rays land halfway between the two
	mid := s.Background(core.NewRay(core.Vec3{}, core.NewVec3(1, 0, 0)))
	want := s.BackgroundTop.Add(s.BackgroundBottom).Multiply(0.5)
	if mid.Subtract(want).Length() > 1e-9 {
		t.Errorf("Expected midpoint color %v at horizon, got %v", want, mid)
	}
}

func TestDefaultSceneComposition(t *testing.T) {
	s := NewDefaultScene()
	if len(s.Objects) != 20 {
		t.Errorf("Expected 20 objects in the default scene, got %d", len(s.Objects))
	}
}

func TestThreeSphereSceneComposition(t *testing.T) {
	s := NewThreeSphereScene()
	if len(s.Objects) != 4 {
		t.Errorf("Expected 4 objects (ground plus three spheres), got %d", len(s.Objects))
	}
}
