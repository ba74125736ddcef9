package renderer

import (
	"testing"

	"github.com/Faultbox/photo-carousel/internal/carousel"
	"github.com/Faultbox/photo-carousel/pkg/math"
)

func TestOverlayProjection(t *testing.T) {
	proj := overlayProjection(1280, 720)

	tests := []struct {
		name string
		px   math.Vec3
		want math.Vec3
	}{
		{"top-left", math.Vec3{}, math.Vec3{X: -1, Y: 1}},
		{"bottom-right", math.Vec3{X: 1280, Y: 720}, math.Vec3{X: 1, Y: -1}},
		{"center", math.Vec3{X: 640, Y: 360}, math.Vec3{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := proj.TransformVec3(tt.px); !got.ApproxEqual(tt.want, 1e-6) {
				t.Errorf("pixel %v maps to %v, want %v", tt.px, got, tt.want)
			}
		})
	}
}

func TestShade(t *testing.T) {
	ring, _ := carousel.NewRing(4, 480)

	front := carousel.Project(carousel.Pose{}, ring)
	if got := shade(front, 0); abs(got-1) > 1e-5 {
		t.Errorf("front panel shade = %v, want 1", got)
	}
	if got := shade(front, 1); abs(got-0.55) > 1e-5 {
		t.Errorf("edge-on panel shade = %v, want 0.55", got)
	}
	if got := shade(front, 2); abs(got-1) > 1e-5 {
		t.Errorf("back panel shade = %v, want 1 (back faces are lit)", got)
	}
}

func abs(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
