package geom

import (
	"bufio"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"
)

// Grid is a rectangular occupancy map indexed as (x, y): x is the column along
// the camera baseline, y is the row, increasing away from the cameras.
//
// Cells are only changed through Set and Toggle; the dimensions never change
// after construction.
type Grid struct {
	cells [][]bool
}

// NewGrid returns an empty grid of h rows and w columns.
func NewGrid(h, w int) Grid {
	cells := make([][]bool, h)
	for y := range cells {
		cells[y] = make([]bool, w)
	}
	return Grid{cells: cells}
}

// GridFromRows copies rows into a new grid. All rows must have the same
// length and there must be at least one row.
func GridFromRows(rows [][]bool) (Grid, error) {
	if len(rows) == 0 {
		return Grid{}, fail(InvalidGrid, "grid has no rows")
	}
	width := len(rows[0])
	g := NewGrid(len(rows), width)
	for y, row := range rows {
		if len(row) != width {
			return Grid{}, fail(InvalidGrid, "row %d has %d cells, expected %d", y, len(row), width)
		}
		copy(g.cells[y], row)
	}
	return g, nil
}

// ParseGrid reads a text grid, one row per line, where '#' (or 'X'/'x') marks
// an occupied cell and any other character an empty one. Blank lines are
// skipped.
func ParseGrid(r io.Reader) (Grid, error) {
	rows := [][]bool{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line == "" {
			continue
		}
		row := make([]bool, 0, len(line))
		for _, c := range line {
			row = append(row, c == '#' || c == 'X' || c == 'x')
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return Grid{}, err
	}
	return GridFromRows(rows)
}

func (g Grid) Height() int {
	return len(g.cells)
}

func (g Grid) Width() int {
	if len(g.cells) == 0 {
		return 0
	}
	return len(g.cells[0])
}

func (g Grid) InBounds(x, y int) bool {
	return y >= 0 && y < g.Height() && x >= 0 && x < g.Width()
}

// At is false for any cell outside the grid.
func (g Grid) At(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.cells[y][x]
}

func (g Grid) Set(x, y int, occupied bool) error {
	if !g.InBounds(x, y) {
		return fail(InvalidPosition, "cell (%d, %d) outside %dx%d grid", x, y, g.Width(), g.Height())
	}
	g.cells[y][x] = occupied
	return nil
}

// Toggle flips a cell and returns its new state.
func (g Grid) Toggle(x, y int) (bool, error) {
	if !g.InBounds(x, y) {
		return false, fail(InvalidPosition, "cell (%d, %d) outside %dx%d grid", x, y, g.Width(), g.Height())
	}
	g.cells[y][x] = !g.cells[y][x]
	return g.cells[y][x], nil
}

func (g Grid) Clone() Grid {
	clone := NewGrid(g.Height(), g.Width())
	for y, row := range g.cells {
		copy(clone.cells[y], row)
	}
	return clone
}

// Copies of a Grid share cells, so the first row's slot identifies them.
func (g Grid) identity() *[]bool {
	if len(g.cells) == 0 {
		return nil
	}
	return &g.cells[0]
}

// Rows returns a copy of the cells as plain slices.
func (g Grid) Rows() [][]bool {
	return g.Clone().cells
}

// Occupied counts occupied cells.
func (g Grid) Occupied() int {
	n := 0
	for _, row := range g.cells {
		for _, c := range row {
			if c {
				n++
			}
		}
	}
	return n
}

// Text renders the grid in the format ParseGrid reads.
func (g Grid) Text() string {
	var sb strings.Builder
	for _, row := range g.cells {
		for _, c := range row {
			if c {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String is Text with occupied cells highlighted for a terminal.
func (g Grid) String() string {
	var sb strings.Builder
	for _, row := range g.cells {
		for _, c := range row {
			if c {
				sb.WriteString(aurora.Magenta("#").String())
			} else {
				sb.WriteString(aurora.Faint(".").String())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String draws lit buckets as '|' around a '+' marking the midpoint.
func (s SensorArray) String() string {
	var sb strings.Builder
	mid := s.Midpoint()
	for i, lit := range s {
		switch {
		case lit:
			sb.WriteString(aurora.Green("|").String())
		case i == mid:
			sb.WriteString(aurora.Cyan("+").String())
		default:
			sb.WriteString(aurora.Faint("-").String())
		}
	}
	return sb.String()
}
