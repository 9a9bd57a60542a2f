package renderer

import (
	"math"
	"math/rand"
	"testing"

	"github.com/rtview/go-interactive-raytracer/pkg/core"
)

func TestCameraDerivesHeight(t *testing.T) {
	config := DefaultCameraConfig()
	config.Width = 400
	config.AspectRatio = 16.0 / 9.0

	camera := NewCamera(config)
	if camera.Width() != 400 {
		t.Errorf("Expected width 400, got %d", camera.Width())
	}
	if camera.Height() != 225 {
		t.Errorf("Expected height 225 for 16:9, got %d", camera.Height())
	}
}

func TestCameraClampsDegenerateDimensions(t *testing.T) {
	config := DefaultCameraConfig()
	config.Width = 0
	camera := NewCamera(config)
	if camera.Width() != 1 {
		t.Errorf("Expected zero width clamped to 1, got %d", camera.Width())
	}

	config = DefaultCameraConfig()
	config.Width = 2
	config.AspectRatio = 100.0 // height would round to 0
	camera = NewCamera(config)
	if camera.Height() != 1 {
		t.Errorf("Expected degenerate height clamped to 1, got %d", camera.Height())
	}

	config = DefaultCameraConfig()
	config.AspectRatio = -1
	camera = NewCamera(config)
	if camera.Height() < 1 {
		t.Errorf("Expected invalid aspect ratio to fall back, got height %d", camera.Height())
	}
}

func TestCameraDeterministicRayWithoutAntialiasing(t *testing.T) {
	config := DefaultCameraConfig()
	config.Antialiasing = false
	config.DefocusAngle = 0
	camera := NewCamera(config)

	r1 := camera.GetRay(10, 20, rand.New(rand.NewSource(1)))
	r2 := camera.GetRay(10, 20, rand.New(rand.NewSource(99)))

	if r1 != r2 {
		t.Errorf("Expected identical rays regardless of RNG, got %v and %v", r1, r2)
	}
	if r1.Origin != config.LookFrom {
		t.Errorf("Expected ray origin at the camera center %v, got %v", config.LookFrom, r1.Origin)
	}
}

func TestCameraRayThroughImageCenter(t *testing.T) {
	config := CameraConfig{
		AspectRatio:   1.0,
		Width:         101, // odd so a pixel sits exactly on the axis
		VFov:          90,
		LookFrom:      core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		VUp:           core.NewVec3(0, 1, 0),
		FocusDistance: 1.0,
		DefocusAngle:  0,
		Antialiasing:  false,
	}
	camera := NewCamera(config)

	ray := camera.GetRay(50, 50, rand.New(rand.NewSource(1)))
	direction := ray.Direction.Normalize()
	want := core.NewVec3(0, 0, -1)
	if direction.Subtract(want).Length() > 1e-9 {
		t.Errorf("Expected center ray along %v, got %v", want, direction)
	}
}

func TestCameraAntialiasingJitterStaysInsidePixel(t *testing.T) {
	config := DefaultCameraConfig()
	config.Antialiasing = true
	config.DefocusAngle = 0
	camera := NewCamera(config)
	random := rand.New(rand.NewSource(42))

	plain := config
	plain.Antialiasing = false
	center := NewCamera(plain).GetRay(10, 20, random)
	maxOffset := camera.pixelDeltaU.Length()/2 + camera.pixelDeltaV.Length()/2

	for i := 0; i < 100; i++ {
		ray := camera.GetRay(10, 20, random)
		offset := ray.Direction.Subtract(center.Direction).Length()
		if offset > maxOffset+1e-9 {
			t.Fatalf("Jittered ray strayed %f beyond its pixel (max %f)", offset, maxOffset)
		}
	}
}

func TestCameraDefocusSamplesDisk(t *testing.T) {
	config := DefaultCameraConfig()
	config.DefocusAngle = 2.0
	config.Antialiasing = false
	camera := NewCamera(config)
	random := rand.New(rand.NewSource(42))

	defocusRadius := config.FocusDistance * math.Tan(degreesToRadians(config.DefocusAngle/2))

	sawOffCenter := false
	for i := 0; i < 50; i++ {
		ray := camera.GetRay(0, 0, random)
		offset := ray.Origin.Subtract(config.LookFrom).Length()
		if offset > defocusRadius+1e-9 {
			t.Fatalf("Ray origin %f outside the defocus disk radius %f", offset, defocusRadius)
		}
		if offset > 1e-12 {
			sawOffCenter = true
		}
	}
	if !sawOffCenter {
		t.Error("Defocus sampling never left the camera center")
	}
}
