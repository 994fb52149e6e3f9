package geom

import "math"

// Smallest half-aperture complement used for the cone slope. Apertures of
// 180 degrees or more clamp to this, which makes the cone effectively
// unbounded from row 1 onward.
const minConeAngle = 1e-8

// Base returns the horizontal half-width of a camera's visibility cone at row
// y, for an aperture of fov degrees:
//
//	base(y) = floor(|y / tan(max(90 - fov/2, ε))|)
//
// Apertures below one degree have no width at all.
//
// Note that row 0 always has a base of 0, and that apertures of 180 and up do
// not produce a row-0 exception: only the camera's own column is visible on
// row 0 no matter how wide the cone is.
func Base(y int, fov float64) float64 {
	if fov < 1 {
		return 0
	}
	angle := math.Max(90-fov/2, minConeAngle)
	return math.Floor(math.Abs(float64(y) / math.Tan(Radians(angle))))
}

// CellInFOV reports whether cell (x, y) is inside the cone of a camera at
// column position with an aperture of fov degrees. The camera's own column is
// always visible.
func CellInFOV(position int, fov float64, x, y int) bool {
	if x == position {
		return true
	}
	return math.Abs(float64(x-position)) < Base(y, fov)
}

// FillGridBasedOnFOV returns a copy of grid where every cell inside the
// camera's cone is occupied. Cells outside the cone keep their value. The
// input grid is not modified.
func FillGridBasedOnFOV(grid Grid, position int, fov float64) (Grid, error) {
	if err := validate(grid, position); err != nil {
		return Grid{}, err
	}

	result := grid.Clone()
	for y := 0; y < result.Height(); y++ {
		for x := 0; x < result.Width(); x++ {
			if CellInFOV(position, fov, x, y) {
				result.cells[y][x] = true
			}
		}
	}
	return result, nil
}

// A camera may sit anywhere from the first column to one past the last.
func validate(grid Grid, position int) error {
	if grid.Height() < 1 {
		return fail(InvalidGrid, "grid has no rows")
	}
	if position < 0 || position > grid.Width() {
		return fail(InvalidPosition, "camera position %d outside [0, %d]", position, grid.Width())
	}
	return nil
}
