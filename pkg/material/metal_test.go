package material

import (
	"math/rand"
	"testing"

	"github.com/rtview/go-interactive-raytracer/pkg/core"
)

func TestMetalMirrorReflection(t *testing.T) {
	mat := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0)
	random := rand.New(rand.NewSource(42))

	// 45° incidence onto a surface with normal +z
	rec := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 0, 1),
		FrontFace: true,
		Material:  mat,
	}
	rayIn := core.NewRay(core.NewVec3(-1, 0, 1), core.NewVec3(1, 0, -1))

	scatter, ok := mat.Scatter(rayIn, rec, random)
	if !ok {
		t.Fatal("Expected reflection to scatter")
	}

	got := scatter.Scattered.Direction.Normalize()
	want := core.NewVec3(1, 0, 1).Normalize()
	if got.Subtract(want).Length() > 1e-12 {
		t.Errorf("Expected mirror reflection %v, got %v", want, got)
	}
	if scatter.Attenuation != mat.Albedo {
		t.Errorf("Expected attenuation %v, got %v", mat.Albedo, scatter.Attenuation)
	}
}

func TestMetalAbsorbsBelowSurface(t *testing.T) {
	mat := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0)
	random := rand.New(rand.NewSource(42))

	// A ray leaving along the normal reflects through the surface and
	// must be absorbed
	rec := HitRecord{
		Point:    core.NewVec3(0, 0, 0),
		Normal:   core.NewVec3(0, 0, 1),
		Material: mat,
	}
	rayIn := core.NewRay(core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 1))

	if _, ok := mat.Scatter(rayIn, rec, random); ok {
		t.Error("Expected ray reflected into the surface to be absorbed")
	}
}

func TestMetalFuzzPerturbsReflection(t *testing.T) {
	mat := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.5)
	random := rand.New(rand.NewSource(42))

	rec := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 0, 1),
		FrontFace: true,
		Material:  mat,
	}
	rayIn := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0.2, 0, -1))
	mirror := core.NewVec3(0.2, 0, 1).Normalize()

	sawPerturbation := false
	for i := 0; i < 50; i++ {
		scatter, ok := mat.Scatter(rayIn, rec, random)
		if !ok {
			continue
		}
		offset := scatter.Scattered.Direction.Subtract(mirror).Length()
		if offset > 1e-9 {
			sawPerturbation = true
		}
		if offset > mat.Fuzz+1e-9 {
			t.Errorf("Perturbation %f exceeds fuzz radius %f", offset, mat.Fuzz)
		}
	}
	if !sawPerturbation {
		t.Error("Fuzzy metal never perturbed the mirror direction")
	}
}

func TestNewMetalClampsFuzz(t *testing.T) {
	if m := NewMetal(core.NewVec3(1, 1, 1), 2.5); m.Fuzz != 1.0 {
		t.Errorf("Expected fuzz clamped to 1.0, got %f", m.Fuzz)
	}
	if m := NewMetal(core.NewVec3(1, 1, 1), -0.5); m.Fuzz != 0.0 {
		t.Errorf("Expected fuzz clamped to 0.0, got %f", m.Fuzz)
	}
	if m := NewMetal(core.NewVec3(1, 1, 1), 0.3); m.Fuzz != 0.3 {
		t.Errorf("Expected in-range fuzz to pass through, got %f", m.Fuzz)
	}
}
