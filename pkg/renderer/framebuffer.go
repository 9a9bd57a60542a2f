package renderer

import (
	"image"
	"sync"
)

// Framebuffer is the pixel buffer shared between the render goroutine
// (sole writer) and a display or export consumer (readers). Pixels are
// stored row-major, top row first, 3 bytes per pixel (R, G, B).
//
// Every access goes through the internal mutex, so a reader never
// observes a torn pixel. There is no ordering guarantee between
// adjacent pixels; consumers of a mid-render snapshot are expected to
// tolerate a visually partial frame.
type Framebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	pix    []byte
}

// NewFramebuffer creates an empty framebuffer. Resize must be called
// before pixels can be written.
func NewFramebuffer() *Framebuffer {
	return &Framebuffer{}
}

// Resize sizes the buffer to width*height*3 bytes and zero-fills it.
// Dimensions below 1 are clamped to 1.
func (f *Framebuffer) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.width = width
	f.height = height
	f.pix = make([]byte, width*height*3)
}

// Size returns the current buffer dimensions
func (f *Framebuffer) Size() (width, height int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.width, f.height
}

// SetPixel writes one pixel at (x, y). Writes outside the buffer are
// ignored.
func (f *Framebuffer) SetPixel(x, y int, r, g, b byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return
	}
	idx := (y*f.width + x) * 3
	f.pix[idx] = r
	f.pix[idx+1] = g
	f.pix[idx+2] = b
}

// Snapshot copies the buffer contents out under the lock and returns
// the copy together with the dimensions it was taken at
func (f *Framebuffer) Snapshot() (pix []byte, width, height int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]byte, len(f.pix))
	copy(out, f.pix)
	return out, f.width, f.height
}

// Image converts a snapshot of the buffer into an RGBA image for
// encoding or display
func (f *Framebuffer) Image() *image.RGBA {
	pix, width, height := f.Snapshot()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			src := (y*width + x) * 3
			dst := img.PixOffset(x, y)
			img.Pix[dst] = pix[src]
			img.Pix[dst+1] = pix[src+1]
			img.Pix[dst+2] = pix[src+2]
			img.Pix[dst+3] = 255
		}
	}
	return img
}
