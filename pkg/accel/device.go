// Package accel defines the narrow host interface to an offload device.
// The device is an opaque, blocking, non-cancellable unit of work: the host
// hands over the camera's derived geometry by value and receives a complete
// image back.
package accel

import (
	"github.com/spectralpath/raytracer/pkg/core"
)

// Params is everything that crosses the host/device boundary.
type Params struct {
	Width, Height   int         // image dimensions in pixels
	Center          core.Point3 // camera center
	Pixel00         core.Point3 // world-space center of pixel (0,0)
	DeltaU          core.Vec3   // world-space step to the next pixel right
	DeltaV          core.Vec3   // world-space step to the next pixel down
	SamplesPerPixel int
	MaxDepth        int
}

// Channels is the number of 8-bit channels per pixel in a device buffer.
const Channels = 3

// BufferSize returns the expected pixel buffer length for the parameters.
func (p Params) BufferSize() int {
	return p.Width * p.Height * Channels
}

// Device renders an entire image in one blocking call. It returns the
// row-major RGB buffer and the total number of rays the device traced, to
// be folded into the host-side counter.
type Device interface {
	Render(p Params) (pix []byte, rays uint64, err error)
}
