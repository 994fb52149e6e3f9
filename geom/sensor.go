package geom

import "math"

// SightAngle is the true visual angle, in degrees, from a camera at column
// position to cell (x, y). Cells in the camera's column are straight ahead.
func SightAngle(position, x, y int) float64 {
	if x == position {
		return 0
	}
	angle := 90 - math.Abs(Degrees(math.Atan(float64(y)/float64(position-x))))
	if x < position {
		return -angle
	}
	return angle
}

// CameraCells projects what a camera sees onto a sensor array with one bucket
// per grid column. For each column, the nearest occupied cell inside the cone
// lights the bucket matching its true sight angle; anything behind it in the
// same column is occluded.
//
// Buckets are spaced fov/(n-1) degrees apart around the midpoint bucket.
func CameraCells(grid Grid, position int, fov float64) (SensorArray, error) {
	if grid.Height() < 1 {
		return nil, fail(InvalidGrid, "grid has no rows")
	}

	values := make(SensorArray, grid.Width())
	for x := 0; x < grid.Width(); x++ {
		for y := 0; y < grid.Height(); y++ {
			if !CellInFOV(position, fov, x, y) {
				continue
			}
			if grid.cells[y][x] {
				values[bucketIndex(SightAngle(position, x, y), fov, len(values))] = true
				break
			}
		}
	}
	return values, nil
}

func bucketIndex(angle, fov float64, n int) int {
	midpoint := n / 2
	if angle == 0 || n < 2 || fov <= 0 {
		return midpoint
	}
	chunk := fov / float64(n-1)
	return clampInt(midpoint+roundToInt(angle/chunk), 0, n-1)
}
