package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestVec3Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	sum := a.Add(b)
	if sum != NewVec3(5, 7, 9) {
		t.Errorf("Add: expected (5,7,9), got %v", sum)
	}

	diff := b.Subtract(a)
	if diff != NewVec3(3, 3, 3) {
		t.Errorf("Subtract: expected (3,3,3), got %v", diff)
	}

	scaled := a.Multiply(2)
	if scaled != NewVec3(2, 4, 6) {
		t.Errorf("Multiply: expected (2,4,6), got %v", scaled)
	}

	prod := a.MultiplyVec(b)
	if prod != NewVec3(4, 10, 18) {
		t.Errorf("MultiplyVec: expected (4,10,18), got %v", prod)
	}

	neg := a.Negate()
	if neg != NewVec3(-1, -2, -3) {
		t.Errorf("Negate: expected (-1,-2,-3), got %v", neg)
	}
}

func TestVec3DotCross(t *testing.T) {
	a := NewVec3(1, 0, 0)
	b := NewVec3(0, 1, 0)

	if dot := a.Dot(b); dot != 0 {
		t.Errorf("Dot of orthogonal vectors should be 0, got %f", dot)
	}
	if dot := a.Dot(a); dot != 1 {
		t.Errorf("Dot of unit vector with itself should be 1, got %f", dot)
	}

	cross := a.Cross(b)
	if cross != NewVec3(0, 0, 1) {
		t.Errorf("Cross of x and y should be z, got %v", cross)
	}
}

func TestVec3LengthAndNormalize(t *testing.T) {
	v := NewVec3(3, 4, 0)

	if length := v.Length(); math.Abs(length-5) > 1e-12 {
		t.Errorf("Length: expected 5, got %f", length)
	}
	if lsq := v.LengthSquared(); math.Abs(lsq-25) > 1e-12 {
		t.Errorf("LengthSquared: expected 25, got %f", lsq)
	}

	unit := v.Normalize()
	if math.Abs(unit.Length()-1) > 1e-12 {
		t.Errorf("Normalized vector should have unit length, got %f", unit.Length())
	}

	// Length-zero normalize has a safe fallback
	zero := Vec3{}.Normalize()
	if zero != (Vec3{}) {
		t.Errorf("Normalizing the zero vector should return zero, got %v", zero)
	}
}

func TestVec3NearZero(t *testing.T) {
	if !NewVec3(1e-9, -1e-9, 0).NearZero() {
		t.Error("Expected tiny vector to be near zero")
	}
	if NewVec3(1e-7, 0, 0).NearZero() {
		t.Error("Expected vector above epsilon not to be near zero")
	}
}

func TestRandomVec3Bounds(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		v := RandomVec3(random)
		if v.X < 0 || v.X >= 1 || v.Y < 0 || v.Y >= 1 || v.Z < 0 || v.Z >= 1 {
			t.Fatalf("RandomVec3 out of [0,1): %v", v)
		}

		r := RandomVec3Range(-1, 1, random)
		if r.X < -1 || r.X >= 1 || r.Y < -1 || r.Y >= 1 || r.Z < -1 || r.Z >= 1 {
			t.Fatalf("RandomVec3Range out of [-1,1): %v", r)
		}
	}
}

func TestRandomInUnitSphere(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		p := RandomInUnitSphere(random)
		if p.LengthSquared() >= 1 {
			t.Fatalf("Point outside unit sphere: %v (length %f)", p, p.Length())
		}
	}
}

func TestRandomUnitVector(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		v := RandomUnitVector(random)
		if math.Abs(v.Length()-1) > 1e-9 {
			t.Fatalf("Expected unit length, got %f for %v", v.Length(), v)
		}
	}
}

func TestRandomInUnitDisk(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		p := RandomInUnitDisk(random)
		if p.Z != 0 {
			t.Fatalf("Disk sample should lie in the z=0 plane, got %v", p)
		}
		if p.LengthSquared() >= 1 {
			t.Fatalf("Point outside unit disk: %v", p)
		}
	}
}
