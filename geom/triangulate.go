package geom

import "math"

// Triangulate intersects two sightings with the law of sines. left must be
// the camera with the smaller position.
//
// The interior angle at the left camera is 90 - left.Angle, and at the right
// camera 90 + right.Angle, since it looks back toward the left one. The
// baseline is right.Position - left.Position - 1.
//
// If the interior angles sum to 180 degrees or more the rays never meet in
// front of the cameras, and DegenerateTriangle is returned.
func Triangulate(left, right Sighting) (Position, error) {
	if left.Position >= right.Position {
		return Position{}, fail(InvalidPosition, "left camera at %d is not left of right camera at %d", left.Position, right.Position)
	}

	a := 90 - left.Angle
	b := 90 + right.Angle
	apex := 180 - a - b
	if apex <= 0 || Equal(apex, 0) {
		return Position{}, fail(DegenerateTriangle, "interior angles %.2f and %.2f sum to %.2f", a, b, a+b)
	}

	baseline := float64(right.Position - left.Position - 1)
	hyp := baseline * math.Sin(Radians(b)) / math.Sin(Radians(apex))
	return Position{
		X:        hyp*math.Cos(Radians(a)) + float64(left.Position),
		Distance: hyp * math.Sin(Radians(a)),
	}, nil
}

// Locate solves the sight angle of both cameras on grid and triangulates the
// target. Any solver error is returned as is.
func Locate(grid Grid, left, right Camera) (Position, error) {
	if left.Position >= right.Position {
		return Position{}, fail(InvalidPosition, "left camera at %d is not left of right camera at %d", left.Position, right.Position)
	}

	leftAngle, err := CalculateAngle(grid, left)
	if err != nil {
		return Position{}, err
	}
	rightAngle, err := CalculateAngle(grid, right)
	if err != nil {
		return Position{}, err
	}

	return Triangulate(
		Sighting{Position: left.Position, Angle: leftAngle},
		Sighting{Position: right.Position, Angle: rightAngle},
	)
}
