package renderer

import (
	"math"
	"math/rand"

	"github.com/rtview/go-interactive-raytracer/pkg/core"
)

// CameraConfig holds the user-facing camera and rendering parameters.
// A Camera is rebuilt from the current config at the start of every
// render invocation.
type CameraConfig struct {
	AspectRatio     float64   // Width / height
	Width           int       // Image width in pixels (height is derived)
	VFov            float64   // Vertical field of view in degrees
	LookFrom        core.Vec3 // Camera position
	LookAt          core.Vec3 // Point the camera looks at
	VUp             core.Vec3 // Camera-relative up direction
	SamplesPerPixel int       // Rays per pixel when antialiasing is on
	MaxDepth        int       // Maximum ray bounce depth
	DefocusAngle    float64   // Variation angle of rays through each pixel, in degrees
	FocusDistance   float64   // Distance from camera to the plane of perfect focus

	// Feature toggles. Antialiasing controls pixel jitter and
	// multi-sampling; Shadows controls whether materials interact with
	// light at all; Reflections/Refractions control whether scattered
	// rays are traced recursively.
	Antialiasing bool
	Shadows      bool
	Reflections  bool
	Refractions  bool
}

// DefaultCameraConfig returns the default camera setup for the
// showcase scene
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		AspectRatio:     16.0 / 9.0,
		Width:           400,
		VFov:            20.0,
		LookFrom:        core.NewVec3(13, 2, 3),
		LookAt:          core.NewVec3(0, 0, 0),
		VUp:             core.NewVec3(0, 1, 0),
		SamplesPerPixel: 10,
		MaxDepth:        10,
		DefocusAngle:    0.6,
		FocusDistance:   10.0,
		Antialiasing:    true,
		Shadows:         true,
		Reflections:     true,
		Refractions:     true,
	}
}

// Camera generates rays for rendering. All derived quantities are
// computed once in NewCamera and are immutable during a render pass.
type Camera struct {
	config        CameraConfig
	width, height int

	center       core.Vec3 // Camera position
	pixel00      core.Vec3 // World position of the upper-left pixel center
	pixelDeltaU  core.Vec3 // Offset between horizontally adjacent pixels
	pixelDeltaV  core.Vec3 // Offset between vertically adjacent pixels
	u, v, w      core.Vec3 // Orthonormal camera basis
	defocusDiskU core.Vec3 // Defocus disk horizontal radius vector
	defocusDiskV core.Vec3 // Defocus disk vertical radius vector
}

// NewCamera builds a camera from the given configuration, deriving the
// image height, viewport geometry and defocus disk
func NewCamera(config CameraConfig) *Camera {
	if config.Width < 1 {
		config.Width = 1
	}
	if config.AspectRatio <= 0 {
		config.AspectRatio = 1.0
	}

	height := int(float64(config.Width) / config.AspectRatio)
	if height < 1 {
		height = 1
	}

	center := config.LookFrom

	theta := degreesToRadians(config.VFov)
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * config.FocusDistance
	viewportWidth := viewportHeight * float64(config.Width) / float64(height)

	// Orthonormal basis: w points away from the view direction
	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.VUp.Cross(w).Normalize()
	v := w.Cross(u)

	// Viewport edge vectors; v points down the image
	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)

	pixelDeltaU := viewportU.Multiply(1.0 / float64(config.Width))
	pixelDeltaV := viewportV.Multiply(1.0 / float64(height))

	viewportUpperLeft := center.
		Subtract(w.Multiply(config.FocusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	pixel00 := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	defocusRadius := config.FocusDistance * math.Tan(degreesToRadians(config.DefocusAngle/2))

	return &Camera{
		config:       config,
		width:        config.Width,
		height:       height,
		center:       center,
		pixel00:      pixel00,
		pixelDeltaU:  pixelDeltaU,
		pixelDeltaV:  pixelDeltaV,
		u:            u,
		v:            v,
		w:            w,
		defocusDiskU: u.Multiply(defocusRadius),
		defocusDiskV: v.Multiply(defocusRadius),
	}
}

// Width returns the image width in pixels
func (c *Camera) Width() int { return c.width }

// Height returns the derived image height in pixels
func (c *Camera) Height() int { return c.height }

// GetRay generates a ray for pixel (i, j). With antialiasing enabled
// the sample position is jittered within the pixel; with a positive
// defocus angle the origin is sampled from the defocus disk.
func (c *Camera) GetRay(i, j int, random *rand.Rand) core.Ray {
	var offsetX, offsetY float64
	if c.config.Antialiasing {
		offsetX = random.Float64() - 0.5
		offsetY = random.Float64() - 0.5
	}

	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i) + offsetX)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offsetY))

	origin := c.center
	if c.config.DefocusAngle > 0 {
		origin = c.defocusDiskSample(random)
	}

	return core.NewRay(origin, pixelSample.Subtract(origin))
}

// defocusDiskSample returns a random origin on the camera defocus disk
func (c *Camera) defocusDiskSample(random *rand.Rand) core.Vec3 {
	p := core.RandomInUnitDisk(random)
	return c.center.
		Add(c.defocusDiskU.Multiply(p.X)).
		Add(c.defocusDiskV.Multiply(p.Y))
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
