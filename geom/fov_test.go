package geom

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase(t *testing.T) {
	// Row 0 never has any width
	for _, fov := range []float64{0, 90, 160, 180, 270} {
		assert.Equal(t, 0.0, Base(0, fov), "fov %v", fov)
	}

	assert.Equal(t, 1.0, Base(1, 90))
	assert.Equal(t, 4.0, Base(4, 90))
	assert.Equal(t, 5.0, Base(1, 160))
	assert.Equal(t, 11.0, Base(2, 160))
	assert.Equal(t, 28.0, Base(5, 160))
	assert.Equal(t, 0.0, Base(1, 2))

	// Below one degree there is no cone at all
	assert.Equal(t, 0.0, Base(100, 0))
	assert.Equal(t, 0.0, Base(100, 0.5))
}

func TestBaseWideApertures(t *testing.T) {
	// At 180 degrees and beyond the slope clamps to a tiny angle, so the cone is
	// practically unbounded from row 1 on, but still zero on row 0.
	for _, fov := range []float64{180, 200} {
		assert.Greater(t, Base(1, fov), 1e9)
		assert.Equal(t, Base(1, fov), Base(1, 180))
	}
}

func TestCellInFOVOwnColumn(t *testing.T) {
	for _, fov := range []float64{0, 0.5, 1, 45, 90, 160, 180, 360} {
		for y := 0; y < 20; y++ {
			assert.True(t, CellInFOV(7, fov, 7, y), "fov %v row %d", fov, y)
		}
	}
}

func TestCellInFOVZeroAperture(t *testing.T) {
	for y := 0; y < 20; y++ {
		for x := 0; x < 15; x++ {
			assert.Equal(t, x == 7, CellInFOV(7, 0, x, y))
		}
	}
}

func TestCellInFOVAt180(t *testing.T) {
	// Row 0: only the camera column. Every other row: everything.
	for x := 0; x < 10; x++ {
		assert.Equal(t, x == 3, CellInFOV(3, 180, x, 0), "column %d", x)
		for y := 1; y < 10; y++ {
			assert.True(t, CellInFOV(3, 180, x, y), "cell (%d, %d)", x, y)
		}
	}
}

func TestCellInFOVStrictEdge(t *testing.T) {
	// base(2, 90) is 2, and the edge itself is excluded
	assert.True(t, CellInFOV(5, 90, 6, 2))
	assert.True(t, CellInFOV(5, 90, 4, 2))
	assert.False(t, CellInFOV(5, 90, 7, 2))
	assert.False(t, CellInFOV(5, 90, 3, 2))
}

func TestFillGridBasedOnFOV(t *testing.T) {
	grid := NewGrid(4, 10)
	filled, err := FillGridBasedOnFOV(grid, 5, 90)
	require.NoError(t, err)

	expected := strings.Join([]string{
		".....#....",
		".....#....",
		"....###...",
		"...#####..",
	}, "\n") + "\n"
	assert.Equal(t, expected, filled.Text())

	// The input is untouched
	assert.Equal(t, 0, grid.Occupied())
}

func TestFillGridBasedOnFOVKeepsOccupiedCells(t *testing.T) {
	grid := gridWith(4, 10, [2]int{0, 3}, [2]int{9, 0})
	filled, err := FillGridBasedOnFOV(grid, 5, 90)
	require.NoError(t, err)
	assert.True(t, filled.At(0, 3))
	assert.True(t, filled.At(9, 0))
	assert.Equal(t, 1+1+3+5+2, filled.Occupied())
}

func TestFillGridBasedOnFOVCoversEverythingPastRowZero(t *testing.T) {
	filled, err := FillGridBasedOnFOV(NewGrid(5, 5), 2, 180)
	require.NoError(t, err)
	assert.Equal(t, 1+4*5, filled.Occupied())
}

func TestFillGridBasedOnFOVErrors(t *testing.T) {
	_, err := FillGridBasedOnFOV(Grid{}, 0, 90)
	assert.ErrorIs(t, err, ErrInvalidGrid)

	grid := NewGrid(3, 3)
	for _, position := range []int{-1, 4, 100} {
		t.Run(fmt.Sprintf("position %d", position), func(t *testing.T) {
			_, err := FillGridBasedOnFOV(grid, position, 90)
			assert.ErrorIs(t, err, ErrInvalidPosition)
			assert.Equal(t, InvalidPosition, KindOf(err))
		})
	}

	// One past the last column is still a valid camera position
	_, err = FillGridBasedOnFOV(grid, 3, 90)
	assert.NoError(t, err)
}
