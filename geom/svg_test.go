package geom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSVG(t *testing.T) {
	svg := `<svg width="6" height="4">
  <rect x="1" y="2" width="3" height="2"/>
  <rect x="5" y="0"/>
  <circle cx="5" fov="90"/>
  <circle cx="0"/>
</svg>`
	scenario, err := LoadSVG(strings.NewReader(svg))
	require.NoError(t, err)

	expected := strings.Join([]string{
		".....#",
		"......",
		".###..",
		".###..",
	}, "\n") + "\n"
	assert.Equal(t, expected, scenario.Grid.Text())
	assert.Equal(t, []Camera{{Position: 0, FOV: DefaultFOV}, {Position: 5, FOV: 90}}, scenario.Cameras)
}

func TestLoadSVGErrors(t *testing.T) {
	for name, svg := range map[string]string{
		"missing size": `<svg><rect x="0" y="0"/></svg>`,
		"bad size":     `<svg width="wide" height="3"></svg>`,
		"rect outside": `<svg width="3" height="3"><rect x="2" y="2" width="2"/></svg>`,
		"bad fov":      `<svg width="3" height="3"><circle cx="1" fov="narrow"/></svg>`,
		"not xml":      `<svg width="3"`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := LoadSVG(strings.NewReader(svg))
			assert.Error(t, err)
		})
	}
}

func TestFixtures(t *testing.T) {
	centered := LoadFixture("centered")
	assert.Equal(t, 10, centered.Grid.Width())
	assert.Equal(t, 10, centered.Grid.Height())
	assert.True(t, centered.Grid.At(5, 5))
	assert.Equal(t, 1, centered.Grid.Occupied())

	stereo := LoadFixture("stereo")
	assert.Equal(t, []Camera{{0, DefaultFOV}, {9, DefaultFOV}}, stereo.Cameras)
}
