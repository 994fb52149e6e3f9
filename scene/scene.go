// Package scene is the interactive host around the geometry: it owns the
// occupancy grid and the two cameras, applies user edits, and decides what
// each of the two views currently shows.
package scene

import (
	"math"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/osuushi/fovtri/config"
	"github.com/osuushi/fovtri/geom"
	"github.com/osuushi/fovtri/internal/dbg"
)

// View selects what the scene displays for each camera.
type View int

const (
	// Both views show the occupancy grid.
	ViewGrid View = iota
	// Each view shows its camera's field of view painted on an empty grid.
	ViewFOV
	// Each view shows its camera's sensor array as a one-row grid.
	ViewSensor
)

func (v View) String() string {
	switch v {
	case ViewFOV:
		return "fov"
	case ViewSensor:
		return "sensor"
	default:
		return "grid"
	}
}

// Scene is not safe for concurrent use; edits come from one event loop.
type Scene struct {
	grid  geom.Grid
	left  geom.Camera
	right geom.Camera
	view  View
	log   *zap.Logger
}

// New creates a scene with an empty grid, the left camera on the first column
// and the right camera on the last.
func New(height, width int, fov float64, log *zap.Logger) (*Scene, error) {
	if height < 1 || width < 1 {
		return nil, errors.WithStack(&geom.Error{Kind: geom.InvalidGrid, Detail: "scene needs at least one cell"})
	}
	if log == nil {
		log = zap.NewNop()
	}
	s := &Scene{
		grid:  geom.NewGrid(height, width),
		left:  geom.Camera{Position: 0, FOV: fov},
		right: geom.Camera{Position: width - 1, FOV: fov},
	}
	s.log = log.With(zap.String("scene", dbg.Name(s)))
	return s, nil
}

// FromConfig creates a scene sized and configured by cfg.
func FromConfig(cfg *config.Config, log *zap.Logger) (*Scene, error) {
	return New(cfg.Grid.Height, cfg.Grid.Width, cfg.Camera.FOV, log)
}

// Load creates a scene around an existing grid. cameras, if given, replace the
// default left and right cameras; there must be exactly two.
func Load(grid geom.Grid, fov float64, log *zap.Logger, cameras ...geom.Camera) (*Scene, error) {
	s, err := New(grid.Height(), grid.Width(), fov, log)
	if err != nil {
		return nil, err
	}
	s.grid = grid.Clone()
	switch len(cameras) {
	case 0:
	case 2:
		s.left, s.right = cameras[0], cameras[1]
	default:
		return nil, errors.Errorf("scene needs two cameras, got %d", len(cameras))
	}
	return s, nil
}

func (s *Scene) Grid() geom.Grid {
	return s.grid.Clone()
}

func (s *Scene) Cameras() (left, right geom.Camera) {
	return s.left, s.right
}

func (s *Scene) View() View {
	return s.view
}

// Toggle flips cell (x, y). Any edit returns both views to the grid.
func (s *Scene) Toggle(x, y int) error {
	occupied, err := s.grid.Toggle(x, y)
	if err != nil {
		return err
	}
	s.view = ViewGrid
	s.log.Debug("toggled cell", zap.Int("x", x), zap.Int("y", y), zap.Bool("occupied", occupied))
	return nil
}

// CellAt maps a pointer position on a canvas of canvasW by canvasH pixels,
// showing the whole grid, to the cell under it.
func (s *Scene) CellAt(px, py, canvasW, canvasH float64) (x, y int, err error) {
	x = int(math.Floor(px / (canvasW / float64(s.grid.Width()))))
	y = int(math.Floor(py / (canvasH / float64(s.grid.Height()))))
	if !s.grid.InBounds(x, y) {
		return 0, 0, errors.WithStack(&geom.Error{Kind: geom.InvalidPosition, Detail: "pointer outside the grid"})
	}
	return x, y, nil
}

// Click toggles the cell under a pointer position, see CellAt.
func (s *Scene) Click(px, py, canvasW, canvasH float64) error {
	x, y, err := s.CellAt(px, py, canvasW, canvasH)
	if err != nil {
		return err
	}
	return s.Toggle(x, y)
}

// ToggleFOV switches between the grid and the field of view display.
func (s *Scene) ToggleFOV() View {
	return s.toggle(ViewFOV)
}

// ToggleSensors switches between the grid and the sensor array display.
func (s *Scene) ToggleSensors() View {
	return s.toggle(ViewSensor)
}

func (s *Scene) toggle(v View) View {
	if s.view == v {
		s.view = ViewGrid
	} else {
		s.view = v
	}
	s.log.Debug("switched view", zap.Stringer("view", s.view))
	return s.view
}

// Views returns what the left and right displays currently show.
func (s *Scene) Views() (left, right geom.Grid, err error) {
	switch s.view {
	case ViewFOV:
		if left, err = s.fovView(s.left); err != nil {
			return
		}
		right, err = s.fovView(s.right)
		return
	case ViewSensor:
		if left, err = s.sensorView(s.left); err != nil {
			return
		}
		right, err = s.sensorView(s.right)
		return
	default:
		return s.grid.Clone(), s.grid.Clone(), nil
	}
}

func (s *Scene) fovView(cam geom.Camera) (geom.Grid, error) {
	return geom.FillGridBasedOnFOV(geom.NewGrid(s.grid.Height(), s.grid.Width()), cam.Position, cam.FOV)
}

func (s *Scene) sensorView(cam geom.Camera) (geom.Grid, error) {
	values, err := geom.CameraCells(s.grid, cam.Position, cam.FOV)
	if err != nil {
		return geom.Grid{}, err
	}
	return geom.GridFromRows([][]bool{values})
}

// Locate triangulates the target on the current grid.
func (s *Scene) Locate() (geom.Position, error) {
	p, err := geom.Locate(s.grid, s.left, s.right)
	if err != nil {
		s.log.Warn("could not locate target", zap.Stringer("kind", geom.KindOf(err)), zap.Error(err))
		return geom.Position{}, err
	}
	s.log.Info("located target", zap.Float64("x", p.X), zap.Float64("distance", p.Distance))
	return p, nil
}
