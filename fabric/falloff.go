package fabric

// Depth returns the out-of-plane displacement at planar distance d from a
// source of the given mass. Epsilon keeps the result finite at d = 0.
func (f Falloff) Depth(d, mass, epsilon float64) float64 {
	if mass == 0 {
		return 0
	}
	if f == InverseSquare {
		return -mass / (d*d + epsilon)
	}
	return -mass / (d + epsilon)
}
