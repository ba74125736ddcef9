// Package texture turns photo files into framed, square RGBA panel images.
package texture

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // GIF decoder registration
	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration
	"os"

	_ "golang.org/x/image/bmp"  // BMP decoder registration
	_ "golang.org/x/image/webp" // WebP decoder registration
	"golang.org/x/image/draw"
)

// DefaultSize is the edge length of generated panel textures.
const DefaultSize = 512

// Frame colors, matching the gallery's gold border and white mat.
var (
	frameGold  = color.RGBA{0xff, 0xd7, 0x00, 0xff}
	frameLight = color.RGBA{0xff, 0xed, 0x4e, 0xff}
	matWhite   = color.RGBA{0xff, 0xff, 0xff, 0xff}
	checkDark  = color.RGBA{0x55, 0x55, 0x5f, 0xff}
	checkLight = color.RGBA{0x99, 0x99, 0xa3, 0xff}
)

// Decode reads and decodes an image file.
func Decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// Cover scales src to fill w x h, cropping the overflow evenly on both sides.
func Cover(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	sb := src.Bounds()
	if sb.Empty() || w <= 0 || h <= 0 {
		return dst
	}

	sw, sh := sb.Dx(), sb.Dy()
	crop := sb
	// Compare aspect ratios without floating point: sw/sh vs w/h.
	if sw*h > sh*w {
		cw := sh * w / h
		x0 := sb.Min.X + (sw-cw)/2
		crop = image.Rect(x0, sb.Min.Y, x0+cw, sb.Max.Y)
	} else if sw*h < sh*w {
		ch := sw * h / w
		y0 := sb.Min.Y + (sh-ch)/2
		crop = image.Rect(sb.Min.X, y0, sb.Max.X, y0+ch)
	}

	draw.CatmullRom.Scale(dst, dst.Bounds(), src, crop, draw.Src, nil)
	return dst
}

// Frame composes photo into a size x size panel with a gold border and a
// white mat around the photo.
func Frame(photo image.Image, size int) *image.RGBA {
	panel := image.NewRGBA(image.Rect(0, 0, size, size))

	border := size / 24
	mat := size / 60
	if border < 1 {
		border = 1
	}

	// Gold border with a lighter band through the middle.
	draw.Draw(panel, panel.Bounds(), image.NewUniform(frameGold), image.Point{}, draw.Src)
	band := image.Rect(0, size/3, size, 2*size/3)
	draw.Draw(panel, band, image.NewUniform(frameLight), image.Point{}, draw.Src)

	matRect := image.Rect(border, border, size-border, size-border)
	draw.Draw(panel, matRect, image.NewUniform(matWhite), image.Point{}, draw.Src)

	inner := matRect.Inset(mat)
	if inner.Empty() {
		return panel
	}
	fitted := Cover(photo, inner.Dx(), inner.Dy())
	draw.Draw(panel, inner, fitted, image.Point{}, draw.Src)
	return panel
}

// Checkerboard returns the broken-image stand-in.
func Checkerboard(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	cell := size / 8
	if cell < 1 {
		cell = 1
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := checkDark
			if (x/cell+y/cell)%2 == 0 {
				c = checkLight
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// LoadPanel decodes path and frames it. Unreadable images become a framed
// checkerboard; the error is returned alongside for logging only.
func LoadPanel(path string, size int) (*image.RGBA, error) {
	photo, err := Decode(path)
	if err != nil {
		return Frame(Checkerboard(size), size), err
	}
	return Frame(photo, size), nil
}
