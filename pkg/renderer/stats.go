package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels     int           // Total number of pixels in the image
	CompletedPixels int           // Pixels committed to the framebuffer so far
	TotalSamples    int64         // Total number of samples taken
	SamplesPerPixel int           // Effective samples per pixel this render
	Elapsed         time.Duration // Time spent rendering so far
}

// Complete reports whether every pixel has been rendered
func (s RenderStats) Complete() bool {
	return s.TotalPixels > 0 && s.CompletedPixels == s.TotalPixels
}
