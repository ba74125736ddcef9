package carousel

// Pose is the ring orientation in degrees. Angles are unconstrained.
type Pose struct {
	Pitch float64 // around the horizontal axis
	Yaw   float64 // around the vertical axis
}

// Rotate returns the pose offset by the given deltas.
func (p Pose) Rotate(dPitch, dYaw float64) Pose {
	return Pose{Pitch: p.Pitch + dPitch, Yaw: p.Yaw + dYaw}
}
