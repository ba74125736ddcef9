// Package camera provides the viewer used to look at the photo ring.
package camera

import (
	gomath "math"

	"github.com/Faultbox/photo-carousel/pkg/math"
)

// PerspectiveCamera looks down -Z at a stage centered on the origin, the way a
// CSS perspective container does: at z=0 one world unit is one screen pixel.
// World coordinates are screen-like: +X right, +Y down, +Z toward the viewer.
type PerspectiveCamera struct {
	Width, Height float64 // viewport in pixels
	Distance      float64 // viewer distance from the z=0 plane

	Near, Far float32
}

// NewPerspectiveCamera creates a camera for a viewport and viewer distance.
func NewPerspectiveCamera(width, height int, distance float64) *PerspectiveCamera {
	c := &PerspectiveCamera{Near: 1}
	c.Resize(width, height)
	c.SetDistance(distance)
	return c
}

// Resize updates the viewport size.
func (c *PerspectiveCamera) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	c.Width = float64(width)
	c.Height = float64(height)
}

// SetDistance updates the viewer distance; the far plane follows it.
func (c *PerspectiveCamera) SetDistance(distance float64) {
	c.Distance = distance
	c.Far = float32(distance * 20)
}

// ViewMatrix moves the viewer back by Distance and flips Y to GL's up axis.
func (c *PerspectiveCamera) ViewMatrix() math.Mat4 {
	return math.Scale(1, -1, 1).Mul(math.Translate(0, 0, -float32(c.Distance)))
}

// ProjectionMatrix returns a projection whose field of view maps the z=0
// plane onto the viewport pixel for pixel.
func (c *PerspectiveCamera) ProjectionMatrix() math.Mat4 {
	fovY := 2 * gomath.Atan(c.Height/2/c.Distance)
	return math.Perspective(float32(fovY), float32(c.Width/c.Height), c.Near, c.Far)
}

// ViewProjection returns projection * view.
func (c *PerspectiveCamera) ViewProjection() math.Mat4 {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}

// Project maps a world point to viewport pixels (origin top-left).
// visible is false for points at or behind the viewer.
func (c *PerspectiveCamera) Project(p math.Vec3) (x, y float64, visible bool) {
	depth := c.Distance - float64(p.Z)
	if depth <= 0 {
		return 0, 0, false
	}
	s := c.Distance / depth
	return c.Width/2 + float64(p.X)*s, c.Height/2 + float64(p.Y)*s, true
}

// Scale returns the on-screen magnification at depth z.
func (c *PerspectiveCamera) Scale(z float32) float64 {
	depth := c.Distance - float64(z)
	if depth <= 0 {
		return 0
	}
	return c.Distance / depth
}
