package renderer

import (
	"math"
	"sync/atomic"

	"github.com/spectralpath/raytracer/pkg/core"
)

// Config holds the image, view and sampling parameters for a render.
type Config struct {
	Width    int // image width in pixels
	Height   int // image height in pixels
	Channels int // color channels per pixel

	VFov     float64     // vertical field of view in degrees
	LookFrom core.Point3 // point the camera looks from
	LookAt   core.Point3 // point the camera looks at
	VUp      core.Vec3   // camera-relative up direction

	SamplesPerPixel int   // jittered samples averaged per pixel
	MaxDepth        int   // maximum ray bounce depth
	Seed            int64 // base seed; workers derive their own streams

	// OnRow, if set, is called with each completed row of the pixel buffer.
	// The slice aliases the output buffer; callers must copy what they keep.
	OnRow func(y int, row []byte)
}

// DefaultConfig returns the standard demo render parameters.
func DefaultConfig() Config {
	return Config{
		Width:           640,
		Height:          360,
		Channels:        3,
		VFov:            35.0,
		LookFrom:        core.NewVec3(-2, 2, 5),
		LookAt:          core.NewVec3(-2, -0.5, -1),
		VUp:             core.NewVec3(0, 1, 0),
		SamplesPerPixel: 16,
		MaxDepth:        16,
		Seed:            123,
	}
}

// Camera owns the viewport geometry derived from the view parameters and
// drives the render strategies. The derived fields are immutable after
// construction and shared read-only by all workers; the only mutable state
// is the atomic traced-ray counter.
type Camera struct {
	cfg    Config
	logger core.Logger

	center  core.Point3 // camera center (equals cfg.LookFrom)
	pixel00 core.Point3 // world-space center of pixel (0,0)
	deltaU  core.Vec3   // step to the pixel to the right
	deltaV  core.Vec3   // step to the pixel below
	u, v, w core.Vec3   // camera frame basis vectors

	raysTraced atomic.Int64
}

// NewCamera creates a camera and derives its viewport geometry.
func NewCamera(cfg Config, logger core.Logger) *Camera {
	if cfg.Channels <= 0 {
		cfg.Channels = 3
	}
	if cfg.SamplesPerPixel < 1 {
		cfg.SamplesPerPixel = 1
	}
	if cfg.MaxDepth < 1 {
		cfg.MaxDepth = 1
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}

	c := &Camera{cfg: cfg, logger: logger}
	c.initialize()
	return c
}

func (c *Camera) initialize() {
	cfg := c.cfg
	c.center = cfg.LookFrom

	// Viewport sized by the vertical field of view at the focal distance.
	focalLength := cfg.LookFrom.Subtract(cfg.LookAt).Length()
	theta := cfg.VFov * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * focalLength
	viewportWidth := viewportHeight * float64(cfg.Width) / float64(cfg.Height)

	// Orthonormal camera basis.
	c.w = cfg.LookFrom.Subtract(cfg.LookAt).Normalize()
	c.u = cfg.VUp.Cross(c.w).Normalize()
	c.v = c.w.Cross(c.u)

	// Viewport edge vectors and per-pixel deltas. V runs down the image.
	viewportU := c.u.Multiply(viewportWidth)
	viewportV := c.v.Negate().Multiply(viewportHeight)
	c.deltaU = viewportU.Multiply(1 / float64(cfg.Width))
	c.deltaV = viewportV.Multiply(1 / float64(cfg.Height))

	upperLeft := c.center.
		Subtract(c.w.Multiply(focalLength)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	c.pixel00 = upperLeft.Add(c.deltaU.Add(c.deltaV).Multiply(0.5))
}

// Config returns the configuration the camera was built with.
func (c *Camera) Config() Config {
	return c.cfg
}

// RaysTraced returns the number of rays evaluated so far.
func (c *Camera) RaysTraced() int64 {
	return c.raysTraced.Load()
}

// rayColor traces a ray through the world, accumulating attenuation over at
// most depth bounces. Every evaluated ray bumps the shared counter exactly
// once, hit or miss.
func (c *Camera) rayColor(r core.Ray, world core.Hittable, depth int, rng *core.Rand) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{} // no more light is gathered
	}

	c.raysTraced.Add(1)

	if hit, ok := world.Hit(r, core.NewInterval(1e-4, math.Inf(1))); ok {
		scatter := hit.Material.Scatter(r, hit, rng)
		if !scatter.Continues {
			return scatter.Attenuation
		}
		return scatter.Attenuation.MultiplyVec(c.rayColor(scatter.Scattered, world, depth-1, rng))
	}

	// A blue to white sky gradient blended by the ray's vertical component.
	unitDirection := r.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	white := core.NewVec3(1, 1, 1)
	blue := core.NewVec3(0.5, 0.7, 1.0)
	return white.Multiply(1 - t).Add(blue.Multiply(t))
}

// sampleRay builds a primary ray through pixel (x, y), jittered uniformly
// within the pixel in both image axes.
func (c *Camera) sampleRay(x, y int, rng *core.Rand) core.Ray {
	offsetX := rng.Float64() - 0.5
	offsetY := rng.Float64() - 0.5
	pixel := c.pixel00.
		Add(c.deltaU.Multiply(float64(x) + offsetX)).
		Add(c.deltaV.Multiply(float64(y) + offsetY))
	return core.NewRay(c.center, pixel.Subtract(c.center).Normalize())
}

// pixelColor averages SamplesPerPixel jittered samples through pixel (x, y).
func (c *Camera) pixelColor(world core.Hittable, x, y int, rng *core.Rand) core.Vec3 {
	var color core.Vec3
	for s := 0; s < c.cfg.SamplesPerPixel; s++ {
		color = color.Add(c.rayColor(c.sampleRay(x, y, rng), world, c.cfg.MaxDepth, rng))
	}
	return color.Multiply(1 / float64(c.cfg.SamplesPerPixel))
}

var intensity = core.NewInterval(0, 0.999)

// setPixel clamps and quantizes a color into the row-major pixel buffer.
func (c *Camera) setPixel(buf []byte, x, y int, color core.Vec3) {
	i := (y*c.cfg.Width + x) * c.cfg.Channels
	buf[i+0] = byte(intensity.Clamp(color.X) * 256)
	buf[i+1] = byte(intensity.Clamp(color.Y) * 256)
	buf[i+2] = byte(intensity.Clamp(color.Z) * 256)
}
