package renderer

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/spectralpath/raytracer/pkg/accel"
	"github.com/spectralpath/raytracer/pkg/core"
)

// renderRow computes one row of pixels into buf using the worker's own
// random source.
func (c *Camera) renderRow(world core.Hittable, buf []byte, y int, rng *core.Rand) {
	for x := 0; x < c.cfg.Width; x++ {
		c.setPixel(buf, x, y, c.pixelColor(world, x, y, rng))
	}
	if c.cfg.OnRow != nil {
		stride := c.cfg.Width * c.cfg.Channels
		c.cfg.OnRow(y, buf[y*stride:(y+1)*stride])
	}
}

// RenderSequential renders the image row-major on the calling goroutine.
// Deterministic for a fixed seed.
func (c *Camera) RenderSequential(world core.Hittable, buf []byte) {
	start := time.Now()
	rng := core.NewRand(c.cfg.Seed)
	progress := newProgress(c.logger, c.cfg.Height)

	for y := 0; y < c.cfg.Height; y++ {
		c.renderRow(world, buf, y, rng)
		progress.rowDone()
	}

	c.logger.Printf("\nSequential rendering completed in %s\n", formatDuration(time.Since(start)))
}

// RenderParallel partitions rows into contiguous bands, one per available
// CPU; the last band absorbs the remainder rows. Workers write disjoint
// buffer regions, so the only shared mutable state is the atomic ray tally
// and the mutex-guarded progress counter.
func (c *Camera) RenderParallel(world core.Hittable, buf []byte) {
	start := time.Now()
	workers := runtime.NumCPU()
	if workers > c.cfg.Height {
		workers = c.cfg.Height
	}
	progress := newProgress(c.logger, c.cfg.Height)

	var wg sync.WaitGroup
	bandSize := c.cfg.Height / workers
	for i := 0; i < workers; i++ {
		startY := i * bandSize
		endY := startY + bandSize
		if i == workers-1 {
			endY = c.cfg.Height
		}

		wg.Add(1)
		go func(worker, startY, endY int) {
			defer wg.Done()
			rng := core.NewRand(c.cfg.Seed + int64(worker))
			for y := startY; y < endY; y++ {
				c.renderRow(world, buf, y, rng)
				progress.rowDone()
			}
		}(i, startY, endY)
	}
	wg.Wait()

	c.logger.Printf("\nParallel rendering (%d workers) completed in %s\n",
		workers, formatDuration(time.Since(start)))
}

// RenderAccelerated hands the camera's derived geometry to the device and
// copies the returned image into buf. The device call is one opaque
// blocking unit of work; its ray count is folded into the host counter
// after it returns. The device carries its own scene, so only camera
// geometry and sampling parameters cross the boundary.
func (c *Camera) RenderAccelerated(dev accel.Device, buf []byte) error {
	start := time.Now()

	params := accel.Params{
		Width:           c.cfg.Width,
		Height:          c.cfg.Height,
		Center:          c.center,
		Pixel00:         c.pixel00,
		DeltaU:          c.deltaU,
		DeltaV:          c.deltaV,
		SamplesPerPixel: c.cfg.SamplesPerPixel,
		MaxDepth:        c.cfg.MaxDepth,
	}

	pix, rays, err := dev.Render(params)
	if err != nil {
		return fmt.Errorf("accelerated render: %w", err)
	}
	if len(pix) != len(buf) {
		return fmt.Errorf("accelerated render: device returned %d bytes, want %d", len(pix), len(buf))
	}
	copy(buf, pix)
	c.raysTraced.Add(int64(rays))

	if c.cfg.OnRow != nil {
		stride := c.cfg.Width * c.cfg.Channels
		for y := 0; y < c.cfg.Height; y++ {
			c.cfg.OnRow(y, buf[y*stride:(y+1)*stride])
		}
	}

	c.logger.Printf("Accelerated rendering completed in %s\n", formatDuration(time.Since(start)))
	return nil
}

// formatDuration reports a duration at human scale.
func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%d minutes and %d seconds", int(d.Minutes()), int(d.Seconds())%60)
	case d >= time.Second:
		return fmt.Sprintf("%.1f seconds", d.Seconds())
	default:
		return fmt.Sprintf("%d milliseconds", d.Milliseconds())
	}
}
