package geom

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraw(t *testing.T) {
	grid := gridWith(3, 4, [2]int{1, 2})
	img := Draw(grid, 10, DefaultPalette)
	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, 30, img.Bounds().Dy())

	// Cell centres take the fill colour
	assertRGB(t, 0x55, 0x44, 0x55, img.At(15, 25))
	assertRGB(t, 0xff, 0xee, 0xff, img.At(5, 5))
}

func TestDrawWithCameras(t *testing.T) {
	img := Draw(NewGrid(2, 2), 10, DefaultPalette, Camera{Position: 1, FOV: 90})
	assert.Equal(t, 25, img.Bounds().Dy())
	assertRGB(t, 0xcc, 0x33, 0x33, img.At(15, 2))
}

func TestDrawSensor(t *testing.T) {
	img := DrawSensor(SensorArray{false, true, false}, 8, DefaultPalette)
	assert.Equal(t, 24, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())
	assertRGB(t, 0x55, 0x44, 0x55, img.At(12, 4))
}

func TestWritePNG(t *testing.T) {
	scenario := LoadFixture("stereo")
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, scenario.Grid, 5, DefaultPalette, scenario.Cameras...))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 50, img.Bounds().Dx())
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.png")
	require.NoError(t, SavePNG(path, NewGrid(2, 2), 4, DefaultPalette))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestDbgDraw(t *testing.T) {
	if os.Getenv("FOVTRI_DBG_DRAW") == "" {
		t.Skip("set FOVTRI_DBG_DRAW to print debug images")
	}
	scenario := LoadFixture("stereo")
	filled, err := FillGridBasedOnFOV(scenario.Grid, scenario.Cameras[0].Position, scenario.Cameras[0].FOV)
	require.NoError(t, err)
	dbgDraw(filled, 20, scenario.Cameras...)
}

func assertRGB(t *testing.T, r, g, b uint8, c color.Color) {
	t.Helper()
	actual := color.NRGBAModel.Convert(c).(color.NRGBA)
	assert.Equal(t, color.NRGBA{R: r, G: g, B: b, A: 0xff}, actual)
}
