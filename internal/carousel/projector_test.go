package carousel

import (
	gomath "math"
	"reflect"
	"testing"

	"github.com/Faultbox/photo-carousel/pkg/math"
)

const cornerEps = 0.01

func TestProjectPanelAngles(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5, 13} {
		ring, _ := NewRing(n, 480)
		l := Project(Pose{}, ring)

		if len(l.Panels) != n {
			t.Fatalf("n=%d: got %d panels", n, len(l.Panels))
		}
		for i, p := range l.Panels {
			if p.Index != i {
				t.Errorf("n=%d: panel %d has index %d", n, i, p.Index)
			}
			want := gomath.Mod(float64(i)*360/float64(n), 360)
			if got := gomath.Mod(p.Angle, 360); gomath.Abs(got-want) > 1e-9 {
				t.Errorf("n=%d: panel %d angle = %v, want %v", n, i, got, want)
			}
		}
	}
}

func TestProjectEdgesTouch(t *testing.T) {
	poses := []Pose{{}, {Pitch: -18, Yaw: 37.5}, {Pitch: 400, Yaw: -1234}}

	for _, n := range []int{2, 3, 5, 13} {
		for _, size := range []float64{200, 280, 480} {
			ring, _ := NewRing(n, size)
			for _, pose := range poses {
				l := Project(pose, ring)
				for i := 0; i < n; i++ {
					j := (i + 1) % n
					a := l.WorldCorners(i)
					b := l.WorldCorners(j)

					if !a[CornerTopRight].ApproxEqual(b[CornerTopLeft], cornerEps) {
						t.Errorf("n=%d size=%v pose=%v: panel %d top-right %v != panel %d top-left %v",
							n, size, pose, i, a[CornerTopRight], j, b[CornerTopLeft])
					}
					if !a[CornerBottomRight].ApproxEqual(b[CornerBottomLeft], cornerEps) {
						t.Errorf("n=%d size=%v pose=%v: panel %d bottom-right %v != panel %d bottom-left %v",
							n, size, pose, i, a[CornerBottomRight], j, b[CornerBottomLeft])
					}
				}
			}
		}
	}
}

func TestProjectPanelWidthPreserved(t *testing.T) {
	for _, n := range []int{1, 3, 5, 13} {
		ring, _ := NewRing(n, 480)
		l := Project(Pose{Pitch: -18, Yaw: 10}, ring)
		for i := range l.Panels {
			c := l.WorldCorners(i)
			if w := c[CornerTopLeft].Sub(c[CornerTopRight]).Length(); gomath.Abs(float64(w)-480) > cornerEps {
				t.Errorf("n=%d panel %d width = %v, want 480", n, i, w)
			}
		}
	}
}

func TestProjectSinglePanelFacesViewer(t *testing.T) {
	ring, _ := NewRing(1, 200)
	l := Project(Pose{}, ring)

	c := l.WorldCorners(0)
	want := [4]math.Vec3{
		CornerTopLeft:     {X: -100, Y: -100},
		CornerTopRight:    {X: 100, Y: -100},
		CornerBottomRight: {X: 100, Y: 100},
		CornerBottomLeft:  {X: -100, Y: 100},
	}
	for k := range c {
		if !c[k].ApproxEqual(want[k], 1e-4) {
			t.Errorf("corner %d = %v, want %v", k, c[k], want[k])
		}
	}
}

func TestProjectFrontPanelAtOrigin(t *testing.T) {
	// With a flat pose the first panel sits in the z=0 plane.
	ring, _ := NewRing(5, 480)
	l := Project(Pose{}, ring)
	if got := l.Center(0); !got.ApproxEqual(math.Vec3{}, cornerEps) {
		t.Errorf("front panel center = %v, want origin", got)
	}
}

func TestProjectContainerOrder(t *testing.T) {
	ring, _ := NewRing(5, 480)
	pose := Pose{Pitch: -18, Yaw: 60}
	l := Project(pose, ring)

	r := float32(ring.Radius)
	want := math.Translate(0, 0, -r).Mul(math.RotateX(pose.Pitch)).Mul(math.RotateY(pose.Yaw))
	if !l.Container.ApproxEqual(want, 1e-5) {
		t.Errorf("container = %v, want %v", l.Container, want)
	}

	swapped := math.Translate(0, 0, -r).Mul(math.RotateY(pose.Yaw)).Mul(math.RotateX(pose.Pitch))
	if l.Container.ApproxEqual(swapped, 1e-3) {
		t.Error("container must apply pitch outside yaw, not the reverse")
	}
}

func TestLayoutFacing(t *testing.T) {
	ring, _ := NewRing(4, 480)

	tests := []struct {
		name  string
		pose  Pose
		panel int
		want  float64
	}{
		{"front", Pose{}, 0, 1},
		{"edge-on", Pose{}, 1, 0},
		{"back", Pose{}, 2, -1},
		{"tilted front", Pose{Pitch: -18}, 0, gomath.Cos(gomath.Pi / 10)},
		{"turned to front", Pose{Yaw: -90}, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Project(tt.pose, ring).Facing(tt.panel)
			if gomath.Abs(got-tt.want) > 1e-5 {
				t.Errorf("Facing(%d) at %+v = %v, want %v", tt.panel, tt.pose, got, tt.want)
			}
		})
	}
}

func TestProjectPure(t *testing.T) {
	ring, _ := NewRing(13, 280)
	pose := Pose{Pitch: 12.5, Yaw: -99}

	a := Project(pose, ring)
	b := Project(pose, ring)
	if !reflect.DeepEqual(a, b) {
		t.Error("Project should return identical layouts for identical inputs")
	}
	if a.Pose != pose || a.Ring != ring {
		t.Errorf("layout carries %v/%v, want %v/%v", a.Pose, a.Ring, pose, ring)
	}
}

func TestLayoutDepthOrder(t *testing.T) {
	ring, _ := NewRing(4, 200)

	tests := []struct {
		yaw         float64
		back, front int
	}{
		{0, 2, 0},
		{90, 1, 3},
		{-90, 3, 1},
	}
	for _, tt := range tests {
		order := Project(Pose{Yaw: tt.yaw}, ring).DepthOrder()
		if len(order) != 4 {
			t.Fatalf("yaw %v: DepthOrder len = %d, want 4", tt.yaw, len(order))
		}
		if order[0] != tt.back || order[3] != tt.front {
			t.Errorf("yaw %v: DepthOrder = %v, want back %d front %d", tt.yaw, order, tt.back, tt.front)
		}
	}
}
