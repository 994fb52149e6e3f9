package geom

// The default aperture of both cameras, in degrees.
const DefaultFOV = 160

// A camera sits on row 0 of the grid and always looks down the rows, toward
// increasing y. It has no identity beyond these two values.
type Camera struct {
	Position int
	FOV      float64
}

// A solved line of sight from a camera: Angle is in degrees, 0 straight ahead,
// negative to the left of the camera axis and positive to the right.
type Sighting struct {
	Position int
	Angle    float64
}

// The triangulated target: X along the baseline (in columns), Distance
// perpendicular to it (in rows).
type Position struct {
	X        float64
	Distance float64
}

// One bucket per column of the grid; the midpoint bucket is straight ahead.
type SensorArray []bool

// First returns the index of the first lit bucket scanning left to right, or
// -1 if none is lit.
func (s SensorArray) First() int {
	for i, lit := range s {
		if lit {
			return i
		}
	}
	return -1
}

func (s SensorArray) Midpoint() int {
	return len(s) / 2
}

func (s SensorArray) Empty() bool {
	return s.First() < 0
}
