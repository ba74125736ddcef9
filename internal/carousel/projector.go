package carousel

import (
	"sort"

	"github.com/Faultbox/photo-carousel/pkg/math"
)

// Corner indices for PanelTransform.Corners.
const (
	CornerTopLeft = iota
	CornerTopRight
	CornerBottomRight
	CornerBottomLeft
)

// PanelTransform places one panel on the ring.
type PanelTransform struct {
	Index  int
	Angle  float64   // rotation around the vertical axis, degrees
	Matrix math.Mat4 // ring space: rotateY(Angle) * translate(0, 0, radius)
}

// Layout is the projector output for one pose.
// Coordinates follow the screen convention: +X right, +Y down, +Z toward the viewer.
type Layout struct {
	Pose      Pose
	Ring      Ring
	Container math.Mat4 // translate(0, 0, -radius) * rotateX(pitch) * rotateY(yaw)
	Panels    []PanelTransform
}

// Projector maps a pose and ring geometry to renderable transforms.
type Projector func(p Pose, r Ring) Layout

// Project is the default Projector. It is pure: equal inputs yield equal layouts.
func Project(p Pose, r Ring) Layout {
	radius := float32(r.Radius)

	container := math.Translate(0, 0, -radius).
		Mul(math.RotateX(p.Pitch)).
		Mul(math.RotateY(p.Yaw))

	panels := make([]PanelTransform, r.PanelCount)
	for i := range panels {
		angle := float64(i) * r.AngleIncrement
		panels[i] = PanelTransform{
			Index:  i,
			Angle:  angle,
			Matrix: math.RotateY(angle).Mul(math.Translate(0, 0, radius)),
		}
	}

	return Layout{
		Pose:      p,
		Ring:      r,
		Container: container,
		Panels:    panels,
	}
}

// World returns the full transform of panel i: container * panel.
func (l Layout) World(i int) math.Mat4 {
	return l.Container.Mul(l.Panels[i].Matrix)
}

// WorldCorners returns panel i's corners after the container transform.
func (l Layout) WorldCorners(i int) [4]math.Vec3 {
	return l.corners(l.World(i))
}

// Center returns the world-space center of panel i.
func (l Layout) Center(i int) math.Vec3 {
	return l.World(i).TransformVec3(math.Vec3{})
}

// Facing returns the cosine between panel i's front normal and the axis
// toward the viewer: 1 facing the viewer, 0 edge-on, -1 showing its back.
func (l Layout) Facing(i int) float64 {
	w := l.World(i)
	n := w.TransformVec3(math.Vec3{Z: 1}).Sub(w.TransformVec3(math.Vec3{}))
	length := n.Length()
	if length == 0 {
		return 0
	}
	return float64(n.Dot(math.Vec3{Z: 1}) / length)
}

// DepthOrder returns panel indices sorted farthest first, for painters that
// cannot rely on a depth buffer.
func (l Layout) DepthOrder() []int {
	order := make([]int, len(l.Panels))
	depth := make([]float32, len(l.Panels))
	for i := range order {
		order[i] = i
		depth[i] = l.Center(i).Z
	}
	sort.SliceStable(order, func(a, b int) bool {
		return depth[order[a]] < depth[order[b]]
	})
	return order
}

func (l Layout) corners(m math.Mat4) [4]math.Vec3 {
	h := float32(l.Ring.PanelSize / 2)
	return [4]math.Vec3{
		CornerTopLeft:     m.TransformVec3(math.Vec3{X: -h, Y: -h}),
		CornerTopRight:    m.TransformVec3(math.Vec3{X: h, Y: -h}),
		CornerBottomRight: m.TransformVec3(math.Vec3{X: h, Y: h}),
		CornerBottomLeft:  m.TransformVec3(math.Vec3{X: -h, Y: h}),
	}
}
