// Package export writes framebuffer snapshots to disk. Exporters are
// collaborators outside the render core: they read the shared buffer
// through Snapshot, under the same mutual-exclusion discipline as the
// display consumer.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// WritePPM writes a framebuffer snapshot as plain-text PPM (P3):
// a header with the format tag, dimensions and max channel value,
// followed by one pixel per line in row-major order.
func WritePPM(w io.Writer, pix []byte, width, height int) error {
	if len(pix) < width*height*3 {
		return fmt.Errorf("pixel buffer too small: have %d bytes, need %d", len(pix), width*height*3)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", width, height)

	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			idx := (j*width + i) * 3
			fmt.Fprintf(bw, "%d %d %d\n", pix[idx], pix[idx+1], pix[idx+2])
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write PPM data: %w", err)
	}
	return nil
}

// SavePPM writes a framebuffer snapshot to a PPM file
func SavePPM(path string, pix []byte, width, height int) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	return WritePPM(file, pix, width, height)
}
