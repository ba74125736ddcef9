package term

import (
	"image"
	"image/color"
)

// Point is a position in canvas pixels.
type Point struct {
	X, Y float64
}

// Canvas is a small RGB framebuffer. Each terminal cell shows two canvas
// pixels stacked vertically.
type Canvas struct {
	W, H int
	Pix  []color.RGBA
}

// NewCanvas allocates a w x h canvas.
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{}
	c.Resize(w, h)
	return c
}

// Resize reallocates the canvas when the size changes.
func (c *Canvas) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if w == c.W && h == c.H {
		return
	}
	c.W, c.H = w, h
	c.Pix = make([]color.RGBA, w*h)
}

// At returns the pixel at (x, y), black outside the canvas.
func (c *Canvas) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= c.W || y >= c.H {
		return color.RGBA{A: 0xff}
	}
	return c.Pix[y*c.W+x]
}

func (c *Canvas) set(x, y int, col color.RGBA) {
	c.Pix[y*c.W+x] = col
}

// Image copies the canvas into an RGBA image.
func (c *Canvas) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.W, c.H))
	for y := 0; y < c.H; y++ {
		for x := 0; x < c.W; x++ {
			img.SetRGBA(x, y, c.Pix[y*c.W+x])
		}
	}
	return img
}

// Gradient fills the canvas with a diagonal gradient from top-left to
// bottom-right.
func (c *Canvas) Gradient(from, to color.RGBA) {
	span := float64(c.W + c.H - 2)
	if span <= 0 {
		span = 1
	}
	for y := 0; y < c.H; y++ {
		for x := 0; x < c.W; x++ {
			c.set(x, y, lerp(from, to, float64(x+y)/span))
		}
	}
}

// FillQuad draws a projected panel. corners are clockwise from the panel's
// top-left; sample maps texture coordinates in [0, 1] to a color. The
// mapping is affine per triangle, which is close enough at terminal sizes.
func (c *Canvas) FillQuad(corners [4]Point, sample func(u, v float64) color.RGBA) {
	uv := [4]Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	c.fillTriangle([3]Point{corners[0], corners[1], corners[2]}, [3]Point{uv[0], uv[1], uv[2]}, sample)
	c.fillTriangle([3]Point{corners[0], corners[2], corners[3]}, [3]Point{uv[0], uv[2], uv[3]}, sample)
}

func (c *Canvas) fillTriangle(p, uv [3]Point, sample func(u, v float64) color.RGBA) {
	a, b, d := p[0], p[1], p[2]
	den := (b.Y-d.Y)*(a.X-d.X) + (d.X-b.X)*(a.Y-d.Y)
	if den > -1e-9 && den < 1e-9 {
		return
	}

	minX, maxX := bounds(a.X, b.X, d.X, c.W)
	minY, maxY := bounds(a.Y, b.Y, d.Y, c.H)
	const eps = -1e-9

	for y := minY; y <= maxY; y++ {
		py := float64(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float64(x) + 0.5
			w1 := ((b.Y-d.Y)*(px-d.X) + (d.X-b.X)*(py-d.Y)) / den
			w2 := ((d.Y-a.Y)*(px-d.X) + (a.X-d.X)*(py-d.Y)) / den
			w3 := 1 - w1 - w2
			if w1 < eps || w2 < eps || w3 < eps {
				continue
			}
			u := w1*uv[0].X + w2*uv[1].X + w3*uv[2].X
			v := w1*uv[0].Y + w2*uv[1].Y + w3*uv[2].Y
			c.set(x, y, sample(u, v))
		}
	}
}

// bounds returns the inclusive pixel range covered by three coordinates,
// clipped to [0, limit).
func bounds(a, b, c float64, limit int) (lo, hi int) {
	mn, mx := a, a
	for _, v := range []float64{b, c} {
		if v < mn {
			mn = v
		}
		if v > mx {
			mx = v
		}
	}
	lo, hi = int(mn), int(mx)
	if lo < 0 {
		lo = 0
	}
	if hi > limit-1 {
		hi = limit - 1
	}
	return lo, hi
}

// Sampler returns a nearest-neighbor sampler over img, darkened by shade.
func Sampler(img *image.RGBA, shade float64) func(u, v float64) color.RGBA {
	b := img.Bounds()
	return func(u, v float64) color.RGBA {
		x := b.Min.X + clampInt(int(u*float64(b.Dx())), 0, b.Dx()-1)
		y := b.Min.Y + clampInt(int(v*float64(b.Dy())), 0, b.Dy()-1)
		px := img.RGBAAt(x, y)
		return color.RGBA{
			R: uint8(float64(px.R) * shade),
			G: uint8(float64(px.G) * shade),
			B: uint8(float64(px.B) * shade),
			A: 0xff,
		}
	}
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5) }
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 0xff}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
