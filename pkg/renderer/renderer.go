package renderer

import (
	"math"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rtview/go-interactive-raytracer/pkg/core"
	"github.com/rtview/go-interactive-raytracer/pkg/scene"
)

const (
	// dirtyInterval is the minimum wall-clock spacing between dirty
	// signals driven by time alone
	dirtyInterval = 100 * time.Millisecond

	// dirtyPixelFraction signals the consumer after this fraction of
	// the total pixels has been committed since the last signal
	dirtyPixelFraction = 0.01
)

// Renderer runs the render loop on a background goroutine and exposes
// the progress/cancel/dirty signals a display consumer polls. At most
// one render is in flight at a time; BeginRender cancels and joins any
// predecessor before starting.
type Renderer struct {
	mu     sync.Mutex   // Guards config and done
	config CameraConfig // Applied at the next render start
	done   chan struct{}

	// startMu serializes the cancel/wait/launch sequence in
	// BeginRender. Without it two concurrent callers could both
	// observe no render in flight and launch two goroutines writing
	// the same framebuffer.
	startMu sync.Mutex

	progressBits    atomic.Uint64 // math.Float64bits of the progress fraction
	cancelRequested atomic.Bool
	dirty           atomic.Bool
	active          atomic.Bool

	completedPixels atomic.Int64
	totalPixels     atomic.Int64
	totalSamples    atomic.Int64
	samplesPerPixel atomic.Int64
	startNanos      atomic.Int64
	elapsedNanos    atomic.Int64

	logger core.Logger
}

// NewRenderer creates a renderer with the given configuration. A nil
// logger falls back to stdout.
func NewRenderer(config CameraConfig, logger core.Logger) *Renderer {
	if logger == nil {
		logger = core.NewDefaultLogger()
	}
	return &Renderer{
		config: config,
		logger: logger,
	}
}

// Configure replaces the camera configuration. The change takes effect
// on the next render start; an in-flight render is not affected.
func (r *Renderer) Configure(config CameraConfig) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.config = config
}

// Config returns the configuration the next render will use
func (r *Renderer) Config() CameraConfig {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.config
}

// BeginRender starts rendering the scene into the framebuffer on a
// background goroutine and returns immediately. Any render already in
// flight is cancelled and waited out first. The framebuffer is resized
// to the derived image dimensions and zero-filled.
func (r *Renderer) BeginRender(s *scene.Scene, fb *Framebuffer) {
	r.startMu.Lock()
	defer r.startMu.Unlock()

	r.RequestCancel()
	r.Wait()

	r.mu.Lock()
	config := r.config
	camera := NewCamera(config)
	fb.Resize(camera.Width(), camera.Height())

	samples := 1
	if config.Antialiasing {
		samples = config.SamplesPerPixel
		if samples < 1 {
			samples = 1
		}
	}

	r.cancelRequested.Store(false)
	r.dirty.Store(false)
	r.setProgress(0)
	r.completedPixels.Store(0)
	r.totalPixels.Store(int64(camera.Width() * camera.Height()))
	r.totalSamples.Store(0)
	r.samplesPerPixel.Store(int64(samples))
	r.startNanos.Store(time.Now().UnixNano())
	r.elapsedNanos.Store(0)
	r.active.Store(true)

	done := make(chan struct{})
	r.done = done
	r.mu.Unlock()

	r.logger.Printf("Starting render: %dx%d with %d samples per pixel\n",
		camera.Width(), camera.Height(), samples)

	go func() {
		defer close(done)
		defer r.active.Store(false)
		defer func() {
			r.elapsedNanos.Store(time.Now().UnixNano() - r.startNanos.Load())
		}()
		defer func() {
			// The render loop does no I/O and should never panic, but
			// an escaped panic must not leave the renderer stuck in
			// the active state.
			if p := recover(); p != nil {
				r.logger.Printf("Render failed: %v\n", p)
			}
		}()

		random := rand.New(rand.NewSource(42))
		r.renderLoop(camera, s, fb, config, samples, random)
	}()
}

// RequestCancel asks the render loop to stop. The caller must still
// Wait before reusing the framebuffer or scene.
func (r *Renderer) RequestCancel() {
	r.cancelRequested.Store(true)
}

// Wait blocks until the background render goroutine has exited. It
// returns immediately when no render has been started.
func (r *Renderer) Wait() {
	r.mu.Lock()
	done := r.done
	r.mu.Unlock()
	if done != nil {
		<-done
	}
}

// Rendering reports whether a render is currently in flight
func (r *Renderer) Rendering() bool {
	return r.active.Load()
}

// Progress returns the fraction of pixels completed, in [0, 1]. It is
// monotonically non-decreasing over the course of a single render.
func (r *Renderer) Progress() float64 {
	return math.Float64frombits(r.progressBits.Load())
}

// Dirty reports whether the framebuffer has changes the consumer has
// not read yet, without consuming the flag
func (r *Renderer) Dirty() bool {
	return r.dirty.Load()
}

// TakeDirty consumes the dirty flag, reporting whether the framebuffer
// has unread changes since the last call
func (r *Renderer) TakeDirty() bool {
	return r.dirty.Swap(false)
}

// Stats returns a snapshot of the current render statistics
func (r *Renderer) Stats() RenderStats {
	elapsed := r.elapsedNanos.Load()
	if r.active.Load() {
		elapsed = time.Now().UnixNano() - r.startNanos.Load()
	}
	return RenderStats{
		TotalPixels:     int(r.totalPixels.Load()),
		CompletedPixels: int(r.completedPixels.Load()),
		TotalSamples:    r.totalSamples.Load(),
		SamplesPerPixel: int(r.samplesPerPixel.Load()),
		Elapsed:         time.Duration(elapsed),
	}
}

func (r *Renderer) setProgress(fraction float64) {
	r.progressBits.Store(math.Float64bits(fraction))
}

// renderLoop walks the image in scan order, accumulating samples per
// pixel and committing bytes to the framebuffer. Cancellation is
// polled before each row, each pixel and each sample, bounding the
// cancellation latency by a single sample's cost.
func (r *Renderer) renderLoop(camera *Camera, s *scene.Scene, fb *Framebuffer, config CameraConfig, samples int, random *rand.Rand) {
	width, height := camera.Width(), camera.Height()
	totalPixels := width * height

	pixelsPerDirty := int(float64(totalPixels) * dirtyPixelFraction)
	if pixelsPerDirty < 1 {
		pixelsPerDirty = 1
	}

	completed := 0
	pixelsSinceDirty := 0
	lastDirty := time.Now()
	lastReportedPercent := -1

	for j := 0; j < height; j++ {
		if r.cancelRequested.Load() {
			break
		}
		for i := 0; i < width; i++ {
			if r.cancelRequested.Load() {
				r.finishCancelled(completed, totalPixels)
				return
			}

			accum := core.Vec3{}
			for sample := 0; sample < samples; sample++ {
				if r.cancelRequested.Load() {
					// Exit without committing the partial pixel
					r.finishCancelled(completed, totalPixels)
					return
				}
				ray := camera.GetRay(i, j, random)
				accum = accum.Add(r.rayColor(ray, s, config, config.MaxDepth, random))
				r.totalSamples.Add(1)
			}

			rb, gb, bb := colorToBytes(accum.Multiply(1.0 / float64(samples)))
			fb.SetPixel(i, j, rb, gb, bb)

			completed++
			r.completedPixels.Store(int64(completed))
			r.setProgress(float64(completed) / float64(totalPixels))

			pixelsSinceDirty++
			now := time.Now()
			if now.Sub(lastDirty) >= dirtyInterval ||
				pixelsSinceDirty >= pixelsPerDirty ||
				completed == totalPixels {
				r.dirty.Store(true)
				pixelsSinceDirty = 0
				lastDirty = now

				percent := completed * 100 / totalPixels
				if percent >= lastReportedPercent+10 {
					r.logger.Printf("Progress: %d%%\n", percent)
					lastReportedPercent = percent
				}
			}
		}
	}

	if r.cancelRequested.Load() {
		r.finishCancelled(completed, totalPixels)
		return
	}

	r.setProgress(1.0)
	r.dirty.Store(true)
	r.logger.Printf("Render completed: %d pixels\n", completed)
}

func (r *Renderer) finishCancelled(completed, totalPixels int) {
	r.dirty.Store(true)
	r.logger.Printf("Render stopped at %d/%d pixels\n", completed, totalPixels)
}

// rayColor computes the color seen along a ray by recursive scattering.
// Depth exhaustion terminates the bounce chain at black; a miss returns
// the scene background gradient.
func (r *Renderer) rayColor(ray core.Ray, s *scene.Scene, config CameraConfig, depth int, random *rand.Rand) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	rec, ok := s.Hit(ray, core.NewInterval(core.HitEpsilon, math.Inf(1)))
	if !ok {
		return s.Background(ray)
	}

	if !config.Shadows {
		return core.Vec3{}
	}

	scatter, didScatter := rec.Material.Scatter(ray, *rec, random)
	if !didScatter {
		return core.Vec3{} // Material absorbed the ray
	}

	if config.Reflections || config.Refractions {
		return scatter.Attenuation.MultiplyVec(
			r.rayColor(scatter.Scattered, s, config, depth-1, random))
	}

	// Non-recursive local shading used when light transport is turned
	// off: a fixed ambient term plus diffuse falloff toward a fixed
	// light direction. Intentionally not physical; it only keeps the
	// image visible.
	lightDir := core.NewVec3(1, 1, 1).Normalize()
	intensity := math.Max(0, rec.Normal.Dot(lightDir))
	return scatter.Attenuation.Multiply(0.3 + 0.7*intensity)
}

// linearToGamma applies gamma-2 correction to a linear color component
func linearToGamma(linear float64) float64 {
	if linear > 0 {
		return math.Sqrt(linear)
	}
	return 0
}

// colorToBytes converts an averaged linear color to display bytes:
// gamma correction, clamp to the intensity interval, scale to [0, 255]
func colorToBytes(c core.Vec3) (r, g, b byte) {
	r = byte(256 * core.Intensity.Clamp(linearToGamma(c.X)))
	g = byte(256 * core.Intensity.Clamp(linearToGamma(c.Y)))
	b = byte(256 * core.Intensity.Clamp(linearToGamma(c.Z)))
	return r, g, b
}
