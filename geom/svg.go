package geom

import (
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// Scenario is a grid together with the cameras watching it.
type Scenario struct {
	Grid    Grid
	Cameras []Camera
}

// LoadSVG reads a scenario drawn as SVG in grid units. This is not a general
// SVG reader:
//
//   - the root width and height attributes give the grid size in cells
//   - every <rect> occupies the cells it covers (width and height default to 1)
//   - every <circle> is a camera at column cx, with an optional fov attribute
//     (DefaultFOV otherwise)
//
// Cameras are returned sorted by position.
func LoadSVG(r io.Reader) (Scenario, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return Scenario{}, errors.Wrap(err, "parse svg")
	}

	width, err := intAttr(root, "width", -1)
	if err != nil {
		return Scenario{}, err
	}
	height, err := intAttr(root, "height", -1)
	if err != nil {
		return Scenario{}, err
	}
	if width < 1 || height < 1 {
		return Scenario{}, fail(InvalidGrid, "svg size %dx%d", width, height)
	}

	scenario := Scenario{Grid: NewGrid(height, width)}
	for _, rect := range root.FindAll("rect") {
		x, err := intAttr(rect, "x", 0)
		if err != nil {
			return Scenario{}, err
		}
		y, err := intAttr(rect, "y", 0)
		if err != nil {
			return Scenario{}, err
		}
		w, err := intAttr(rect, "width", 1)
		if err != nil {
			return Scenario{}, err
		}
		h, err := intAttr(rect, "height", 1)
		if err != nil {
			return Scenario{}, err
		}
		for cy := y; cy < y+h; cy++ {
			for cx := x; cx < x+w; cx++ {
				if err := scenario.Grid.Set(cx, cy, true); err != nil {
					return Scenario{}, errors.Wrapf(err, "rect at (%d, %d)", x, y)
				}
			}
		}
	}

	for _, circle := range root.FindAll("circle") {
		position, err := intAttr(circle, "cx", 0)
		if err != nil {
			return Scenario{}, err
		}
		fov := float64(DefaultFOV)
		if s, ok := circle.Attributes["fov"]; ok {
			fov, err = strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return Scenario{}, errors.Wrapf(err, "camera fov %q", s)
			}
		}
		scenario.Cameras = append(scenario.Cameras, Camera{Position: position, FOV: fov})
	}
	sort.Slice(scenario.Cameras, func(i, j int) bool {
		return scenario.Cameras[i].Position < scenario.Cameras[j].Position
	})

	return scenario, nil
}

// Attribute values may be fractional or carry a px suffix; they are floored to
// whole cells.
func intAttr(el *svgparser.Element, name string, fallback int) (int, error) {
	s, ok := el.Attributes[name]
	if !ok {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "px"), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "%s attribute %s=%q", el.Name, name, s)
	}
	return int(math.Floor(v)), nil
}
