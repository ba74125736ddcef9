package texture

import (
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// labelFace is the bitmap face used for overlay text.
var labelFace = basicfont.Face7x13

// LabelText replaces runes the label face cannot draw.
func LabelText(s string) string {
	return strings.Map(func(r rune) rune {
		if _, ok := labelFace.GlyphAdvance(r); ok {
			return r
		}
		if r == '•' {
			return '-'
		}
		return '?'
	}, s)
}

// LabelSize returns the pixel size of Label(s, scale) without drawing it.
func LabelSize(s string, scale int) (w, h int) {
	if scale < 1 {
		scale = 1
	}
	w = font.MeasureString(labelFace, LabelText(s)).Ceil()
	if w < 1 {
		w = 1
	}
	return w * scale, labelFace.Metrics().Height.Ceil() * scale
}

// Label renders s in white on a transparent background, magnified by scale
// with nearest-neighbor sampling. The result is tinted by the overlay shader.
func Label(s string, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	width, height := LabelSize(s, 1)
	s = LabelText(s)
	metrics := labelFace.Metrics()

	src := image.NewRGBA(image.Rect(0, 0, width, height))
	d := font.Drawer{
		Dst:  src,
		Src:  image.NewUniform(color.White),
		Face: labelFace,
		Dot:  fixed.Point26_6{X: 0, Y: metrics.Ascent},
	}
	d.DrawString(s)

	if scale == 1 {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, width*scale, height*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
