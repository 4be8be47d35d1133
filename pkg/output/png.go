// Package output persists rendered pixel buffers to image files.
package output

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
)

// WritePNG encodes a flat row-major RGB buffer as a PNG file, creating the
// parent directory if needed. The buffer layout is width*height pixels of
// `channels` 8-bit values in R, G, B order.
func WritePNG(path string, pix []byte, width, height, channels int) error {
	if channels < 3 {
		return fmt.Errorf("write png: need at least 3 channels, got %d", channels)
	}
	if len(pix) != width*height*channels {
		return fmt.Errorf("write png: buffer is %d bytes, want %d", len(pix), width*height*channels)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := (y*width + x) * channels
			img.SetRGBA(x, y, color.RGBA{R: pix[i], G: pix[i+1], B: pix[i+2], A: 255})
		}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("write png: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}
