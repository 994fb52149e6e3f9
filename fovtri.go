// Stereo target location on an occupancy grid.
//
// Two cameras sit on the first row of a grid of occupied and empty cells and
// look down its rows, each through a cone of a given aperture. This package
// estimates the angle at which each camera sees the nearest occupied cell and
// triangulates its position from the two angles.
//
// The geometry lives in the geom package; this is a thin layer over it for
// callers holding plain [][]bool grids.
package fovtri

import "github.com/osuushi/fovtri/geom"

type Camera = geom.Camera
type Position = geom.Position
type SensorArray = geom.SensorArray

// Locate finds the target seen by both cameras. rows[y][x] is the cell in
// column x, y rows away from the cameras. left must sit left of right.
//
// Errors are *geom.Error values; use errors.Is with the geom.Err* values to
// tell them apart.
func Locate(rows [][]bool, left, right Camera) (Position, error) {
	grid, err := geom.GridFromRows(rows)
	if err != nil {
		return Position{}, err
	}
	return geom.Locate(grid, left, right)
}

// Angle returns the sight angle in degrees from camera to the nearest target
// it sees.
func Angle(rows [][]bool, camera Camera) (float64, error) {
	grid, err := geom.GridFromRows(rows)
	if err != nil {
		return 0, err
	}
	return geom.CalculateAngle(grid, camera)
}

// Sensor returns the sensor array of camera over rows.
func Sensor(rows [][]bool, camera Camera) (SensorArray, error) {
	grid, err := geom.GridFromRows(rows)
	if err != nil {
		return nil, err
	}
	return geom.CameraCells(grid, camera.Position, camera.FOV)
}

// Visible returns rows with every cell inside camera's cone set.
func Visible(rows [][]bool, camera Camera) ([][]bool, error) {
	grid, err := geom.GridFromRows(rows)
	if err != nil {
		return nil, err
	}
	filled, err := geom.FillGridBasedOnFOV(grid, camera.Position, camera.FOV)
	if err != nil {
		return nil, err
	}
	return filled.Rows(), nil
}
