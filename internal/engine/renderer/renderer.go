// Package renderer draws the photo ring and its overlay with OpenGL.
package renderer

import (
	"fmt"
	"image"
	gomath "math"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/photo-carousel/internal/carousel"
	"github.com/Faultbox/photo-carousel/internal/engine/camera"
	"github.com/Faultbox/photo-carousel/internal/engine/overlay"
	"github.com/Faultbox/photo-carousel/internal/engine/renderer/shaders"
	"github.com/Faultbox/photo-carousel/internal/engine/shader"
	"github.com/Faultbox/photo-carousel/internal/engine/texture"
	"github.com/Faultbox/photo-carousel/internal/logger"
	"github.com/Faultbox/photo-carousel/pkg/math"
)

// Overlay fill modes, matching overlay.frag.
const (
	modeFill int32 = iota
	modeDisc
	modeText
)

// Config holds renderer configuration.
// Width and Height are in window coordinates, the space overlay rectangles
// use; PixelWidth and PixelHeight are the framebuffer size.
type Config struct {
	Width       int
	Height      int
	PixelWidth  int
	PixelHeight int
}

type label struct {
	tex  uint32
	w, h int
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config

	panel   *shader.Program
	overlay *shader.Program

	quadVAO uint32
	quadVBO uint32

	// Maps overlay pixels (origin top-left, +Y down) to clip space.
	overlayProj math.Mat4

	labels map[string]label
}

// New creates a new renderer.
// Must be called after the OpenGL context is created.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		labels: make(map[string]label),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	// Panels show their back faces, like the page's default backface-visibility.
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	var err error
	r.panel, err = shader.Compile("panel", shaders.PanelVertexShader, shaders.PanelFragmentShader)
	if err != nil {
		return nil, err
	}
	r.overlay, err = shader.Compile("overlay", shaders.OverlayVertexShader, shaders.OverlayFragmentShader)
	if err != nil {
		r.panel.Delete()
		return nil, err
	}

	r.createQuad()
	r.Resize(cfg.Width, cfg.Height, cfg.PixelWidth, cfg.PixelHeight)
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	for text, l := range r.labels {
		gl.DeleteTextures(1, &l.tex)
		delete(r.labels, text)
	}
	if r.quadVAO != 0 {
		gl.DeleteVertexArrays(1, &r.quadVAO)
	}
	if r.quadVBO != 0 {
		gl.DeleteBuffers(1, &r.quadVBO)
	}
	r.panel.Delete()
	r.overlay.Delete()
}

// Resize handles window resize. A zero pixel size means no DPI scaling.
func (r *Renderer) Resize(width, height, pixelWidth, pixelHeight int) {
	if pixelWidth <= 0 || pixelHeight <= 0 {
		pixelWidth, pixelHeight = width, height
	}
	r.config = Config{Width: width, Height: height, PixelWidth: pixelWidth, PixelHeight: pixelHeight}
	r.overlayProj = overlayProjection(width, height)
	gl.Viewport(0, 0, int32(pixelWidth), int32(pixelHeight))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("pixel_width", pixelWidth),
		zap.Int("pixel_height", pixelHeight),
	)
}

// Begin starts a new frame with the gallery's gradient background.
func (r *Renderer) Begin() {
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.Disable(gl.DEPTH_TEST)
	r.DrawRect(overlay.Rect{W: float64(r.config.Width), H: float64(r.config.Height)},
		overlay.BackgroundFrom, overlay.BackgroundTo)
	gl.Enable(gl.DEPTH_TEST)
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

// UploadTexture copies an RGBA image into a new GL texture.
func (r *Renderer) UploadTexture(img *image.RGBA) uint32 {
	b := img.Bounds()
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

// DeleteTextures releases textures created by UploadTexture.
func (r *Renderer) DeleteTextures(textures []uint32) {
	if len(textures) > 0 {
		gl.DeleteTextures(int32(len(textures)), &textures[0])
	}
}

// DrawRing draws every panel of the layout. textures[i] is panel i's photo.
func (r *Renderer) DrawRing(l carousel.Layout, cam *camera.PerspectiveCamera, textures []uint32) {
	if len(l.Panels) == 0 {
		return
	}
	size := float32(l.Ring.PanelSize)
	vp := cam.ViewProjection()
	scale := math.Scale(size, size, 1)

	r.panel.Use()
	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(r.panel.Uniform("uTexture"), 0)
	gl.BindVertexArray(r.quadVAO)

	// Far panels first so blended frame edges composite correctly.
	for _, i := range l.DepthOrder() {
		if i >= len(textures) {
			continue
		}
		mvp := vp.Mul(l.World(i)).Mul(scale)
		gl.UniformMatrix4fv(r.panel.Uniform("uMVP"), 1, false, mvp.Ptr())
		gl.Uniform1f(r.panel.Uniform("uShade"), shade(l, i))
		gl.BindTexture(gl.TEXTURE_2D, textures[i])
		gl.DrawArrays(gl.TRIANGLE_FAN, 0, 4)
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// shade dims panels turned away from the viewer. Back faces are lit like
// front faces.
func shade(l carousel.Layout, i int) float32 {
	return float32(0.55 + 0.45*gomath.Abs(l.Facing(i)))
}

// DrawRect fills a pixel rectangle with a diagonal gradient.
func (r *Renderer) DrawRect(rect overlay.Rect, from, to overlay.Color) {
	r.drawOverlay(rect, from, to, modeFill)
}

// DrawDisc fills the circle inscribed in rect.
func (r *Renderer) DrawDisc(rect overlay.Rect, c overlay.Color) {
	r.drawOverlay(rect, c, c, modeDisc)
}

// DrawLabel draws text with its top-left corner at (x, y). Rendered
// strings are cached as textures. It returns the drawn width in pixels.
func (r *Renderer) DrawLabel(text string, x, y float64, scale int, c overlay.Color) float64 {
	key := fmt.Sprintf("%d:%s", scale, text)
	l, ok := r.labels[key]
	if !ok {
		img := texture.Label(text, scale)
		l = label{tex: r.UploadTexture(img), w: img.Bounds().Dx(), h: img.Bounds().Dy()}
		r.labels[key] = l
	}

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, l.tex)
	r.drawOverlay(overlay.Rect{X: x, Y: y, W: float64(l.w), H: float64(l.h)}, c, c, modeText)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return float64(l.w)
}

// LabelSize returns the pixel size DrawLabel would use.
func LabelSize(text string, scale int) (w, h float64) {
	iw, ih := texture.LabelSize(text, scale)
	return float64(iw), float64(ih)
}

func (r *Renderer) drawOverlay(rect overlay.Rect, from, to overlay.Color, mode int32) {
	gl.Disable(gl.DEPTH_TEST)
	defer gl.Enable(gl.DEPTH_TEST)

	r.overlay.Use()
	gl.Uniform4f(r.overlay.Uniform("uRect"), float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H))
	gl.UniformMatrix4fv(r.overlay.Uniform("uProjection"), 1, false, r.overlayProj.Ptr())
	gl.Uniform4f(r.overlay.Uniform("uColorFrom"), from[0], from[1], from[2], from[3])
	gl.Uniform4f(r.overlay.Uniform("uColorTo"), to[0], to[1], to[2], to[3])
	gl.Uniform1i(r.overlay.Uniform("uMode"), mode)
	gl.Uniform1i(r.overlay.Uniform("uTexture"), 0)

	gl.BindVertexArray(r.quadVAO)
	gl.DrawArrays(gl.TRIANGLE_FAN, 0, 4)
}

// overlayProjection is an orthographic projection over the window with the
// origin at the top-left corner, matching overlay.Rect coordinates.
func overlayProjection(width, height int) math.Mat4 {
	return math.Ortho(0, float32(width), float32(height), 0, -1, 1)
}

// ReadPixels returns the framebuffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() (pixels []byte, width, height int) {
	width, height = r.config.PixelWidth, r.config.PixelHeight
	pixels = make([]byte, width*height*4)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, width, height
}

// createQuad builds the shared unit quad: position in [-0.5, 0.5] with +Y
// down, and texture coordinates with v = 0 on the top row of the image.
func (r *Renderer) createQuad() {
	vertices := []float32{
		// pos        // uv
		-0.5, -0.5, 0, 0,
		0.5, -0.5, 1, 0,
		0.5, 0.5, 1, 1,
		-0.5, 0.5, 0, 1,
	}

	gl.GenVertexArrays(1, &r.quadVAO)
	gl.BindVertexArray(r.quadVAO)

	gl.GenBuffers(1, &r.quadVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 4*4, nil)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 4*4, unsafe.Pointer(uintptr(2*4)))
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	logger.Debug("quad created",
		zap.Uint32("vao", r.quadVAO),
		zap.Uint32("vbo", r.quadVBO),
	)
}
