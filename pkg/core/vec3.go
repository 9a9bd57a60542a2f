package core

import (
	"math"
	"math/rand"
)

// Vec3 represents a 3D vector, used for points, directions and colors
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// MultiplyVec returns component-wise multiplication of two vectors
func (v Vec3) MultiplyVec(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Normalize returns a unit vector in the same direction
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return Vec3{0, 0, 0}
	}
	return Vec3{v.X / length, v.Y / length, v.Z / length}
}

// NearZero reports whether all components are close to zero.
// Scatter directions this small would produce degenerate rays.
func (v Vec3) NearZero() bool {
	const epsilon = 1e-8
	return math.Abs(v.X) < epsilon && math.Abs(v.Y) < epsilon && math.Abs(v.Z) < epsilon
}

// RandomVec3 returns a vector with components uniformly in [0,1)
func RandomVec3(random *rand.Rand) Vec3 {
	return Vec3{random.Float64(), random.Float64(), random.Float64()}
}

// RandomVec3Range returns a vector with components uniformly in [min,max)
func RandomVec3Range(min, max float64, random *rand.Rand) Vec3 {
	span := max - min
	return Vec3{
		X: min + span*random.Float64(),
		Y: min + span*random.Float64(),
		Z: min + span*random.Float64(),
	}
}

// RandomInUnitSphere generates a random point inside the unit sphere
// using rejection sampling
func RandomInUnitSphere(random *rand.Rand) Vec3 {
	for {
		p := RandomVec3Range(-1, 1, random)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomUnitVector generates a uniformly distributed unit-length vector
func RandomUnitVector(random *rand.Rand) Vec3 {
	return RandomInUnitSphere(random).Normalize()
}

// RandomInUnitDisk generates a random point in the unit disk on the
// z=0 plane using rejection sampling
func RandomInUnitDisk(random *rand.Rand) Vec3 {
	for {
		p := Vec3{X: 2*random.Float64() - 1, Y: 2*random.Float64() - 1}
		if p.LengthSquared() < 1 {
			return p
		}
	}
}
