package geom

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

const (
	// Angular increment of the search, in degrees.
	SearchStep = 0.02

	// The sensor buckets are spread over a slightly narrower angle than the
	// linear estimate assumes; this scales the seed back so the search starts
	// short of the target instead of past it.
	SeedScale = 0.85

	// The search gives up once the candidate angle reaches ±MaxSearchAngle.
	MaxSearchAngle = 90.0
)

// SeedAngle is the starting point of the angle search for a hit in the given
// bucket of an n-bucket sensor array:
//
//	floor(fov / n * (bucket - midpoint) * SeedScale)
func SeedAngle(fov float64, n, bucket int) float64 {
	return math.Floor(fov / float64(n) * float64(bucket-n/2) * SeedScale)
}

// CalculateAngle estimates the line-of-sight angle, in degrees, from a camera
// to the nearest target it sees.
//
// The search is discrete: starting from SeedAngle, candidate angles step by
// SearchStep toward the side of the first lit sensor bucket, and each one is
// accepted as soon as its ray passes through any occupied cell. The k-th
// candidate is seed ± k*SearchStep exactly, so results are reproducible.
//
// Errors: NoTarget if the sensor array is empty, AngleTooObtuse if a candidate
// ray moves more than one column between rows (the row walk can no longer
// follow it), NoAngleFound if the search reaches ±90 degrees.
func CalculateAngle(grid Grid, camera Camera) (float64, error) {
	if err := validate(grid, camera.Position); err != nil {
		return 0, err
	}

	values, err := CameraCells(grid, camera.Position, camera.FOV)
	if err != nil {
		return 0, err
	}
	bucket := values.First()
	if bucket < 0 {
		return 0, fail(NoTarget, "camera at %d sees nothing", camera.Position)
	}

	step := SearchStep
	if bucket < values.Midpoint() {
		step = -step
	}
	seed := SeedAngle(camera.FOV, len(values), bucket)

	for i := 0; ; i++ {
		angle := seed + float64(i)*step
		if angle <= -MaxSearchAngle || angle >= MaxSearchAngle {
			return 0, fail(NoAngleFound, "camera at %d: search from %.2f reached %.2f", camera.Position, seed, angle)
		}
		hit, err := castRay(grid, camera.Position, angle)
		if err != nil {
			return 0, err
		}
		if hit {
			return angle, nil
		}
	}
}

// castRay walks the rows of the grid along a ray leaving column position at
// the given angle and reports whether it passes through an occupied cell.
func castRay(grid Grid, position int, angle float64) (bool, error) {
	slope := math.Tan(Radians(90 - angle))
	prev := position
	for y := 0; y < grid.Height(); y++ {
		x := roundToInt(float64(position) + float64(y)/slope)
		if x-prev > 1 || prev-x > 1 {
			return false, errors.WithStack(&Error{
				Kind:       AngleTooObtuse,
				Detail:     fmt.Sprintf("ray at %.2f jumps from column %d to %d on row %d", angle, prev, x, y),
				Angle:      angle,
				Row:        y,
				Column:     x,
				PrevColumn: prev,
			})
		}
		if x < 0 || x >= grid.Width() {
			break
		}
		if grid.cells[y][x] {
			return true, nil
		}
		prev = x
	}
	return false, nil
}
