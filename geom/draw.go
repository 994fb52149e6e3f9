package geom

import (
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/fovtri/internal/dbg"
)

// Palette holds the hex colours used to draw a grid.
type Palette struct {
	Occupied string
	Empty    string
	Outline  string
	Camera   string
}

var DefaultPalette = Palette{
	Occupied: "#554455",
	Empty:    "#ffeeff",
	Outline:  "#000000",
	Camera:   "#cc3333",
}

// Draw renders grid with square cells of cellSize pixels. Cameras, if any, are
// marked as dots above row 0 of their column, so the image has one extra
// half-row of padding at the top.
func Draw(grid Grid, cellSize int, palette Palette, cameras ...Camera) image.Image {
	return drawContext(grid, cellSize, palette, cameras).Image()
}

// DrawSensor renders a sensor array as a one-row strip.
func DrawSensor(values SensorArray, cellSize int, palette Palette) image.Image {
	g := NewGrid(1, len(values))
	copy(g.cells[0], values)
	return Draw(g, cellSize, palette)
}

// SavePNG draws grid into a PNG file at path.
func SavePNG(path string, grid Grid, cellSize int, palette Palette, cameras ...Camera) error {
	return drawContext(grid, cellSize, palette, cameras).SavePNG(path)
}

// WritePNG draws grid as PNG to w.
func WritePNG(w io.Writer, grid Grid, cellSize int, palette Palette, cameras ...Camera) error {
	return drawContext(grid, cellSize, palette, cameras).EncodePNG(w)
}

func drawContext(grid Grid, cellSize int, palette Palette, cameras []Camera) *gg.Context {
	size := float64(cellSize)
	padding := 0.0
	if len(cameras) > 0 {
		padding = size / 2
	}

	width := grid.Width() * cellSize
	height := grid.Height()*cellSize + int(padding)
	c := gg.NewContext(width, height)
	c.SetHexColor(palette.Empty)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	c.Translate(0, padding)
	c.SetLineWidth(1)
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			c.DrawRectangle(float64(x)*size, float64(y)*size, size, size)
			if grid.cells[y][x] {
				c.SetHexColor(palette.Occupied)
			} else {
				c.SetHexColor(palette.Empty)
			}
			c.FillPreserve()
			c.SetHexColor(palette.Outline)
			c.Stroke()
		}
	}

	c.SetHexColor(palette.Camera)
	for _, cam := range cameras {
		c.DrawCircle((float64(cam.Position)+0.5)*size, -padding/2, padding/2)
		c.Fill()
	}
	return c
}

// This is for debugging purposes only. It writes the grid to the temp dir and
// prints it inline (iTerm only).
func dbgDraw(grid Grid, cellSize int, cameras ...Camera) {
	path := filepath.Join(os.TempDir(), "fovtri-"+dbg.Name(grid.identity())+".png")
	if err := SavePNG(path, grid, cellSize, DefaultPalette, cameras...); err != nil {
		return
	}
	imgcat.CatFile(path, os.Stdout)
}
