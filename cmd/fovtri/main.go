package main

import (
	"fmt"
	"io"
	"os"

	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/osuushi/fovtri/config"
	"github.com/osuushi/fovtri/geom"
	"github.com/osuushi/fovtri/scene"
)

type options struct {
	cfgFile string
	file    string
	svg     bool
	camera  int
	png     string
	show    bool
	verbose bool
}

// Command line front end. The grid is read from stdin (or --file) as text rows
// where '#' is an occupied cell and '.' an empty one, or as an SVG scenario
// with --svg. Unless the scenario says otherwise, the cameras sit on the first
// and last columns.
//
//	printf '..........\n.....#....\n' | fovtri locate
func main() {
	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:           "fovtri",
		Short:         "Locate a target on an occupancy grid from two cameras",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.cfgFile, "config", "c", "", "Path to config file (default: ./fovtri.yaml)")
	flags.StringVarP(&opts.file, "file", "f", "", "Read the grid from this file instead of stdin")
	flags.BoolVar(&opts.svg, "svg", false, "Input is an SVG scenario")
	flags.StringVar(&opts.png, "png", "", "Also draw the result into this PNG file")
	flags.BoolVar(&opts.show, "show", false, "Print the drawn PNG inline (iTerm only)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Development logging")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "locate",
			Short: "Triangulate the target seen by both cameras",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runLocate(cmd, opts)
			},
		},
		cameraCmd("angle", "Solve one camera's sight angle", opts, runAngle),
		cameraCmd("sensor", "Print one camera's sensor array", opts, runSensor),
		cameraCmd("fov", "Print one camera's field of view", opts, runFOV),
	)
	return rootCmd
}

func cameraCmd(use, short string, opts *options, run func(*cobra.Command, *options, *env, geom.Camera) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer e.log.Sync()

			left, right := e.scene.Cameras()
			var cam geom.Camera
			switch opts.camera {
			case 1:
				cam = left
			case 2:
				cam = right
			default:
				return fmt.Errorf("unknown camera %d (use 1 or 2)", opts.camera)
			}
			return run(cmd, opts, e, cam)
		},
	}
	cmd.Flags().IntVar(&opts.camera, "camera", 1, "Camera: 1 (left) or 2 (right)")
	return cmd
}

type env struct {
	cfg   *config.Config
	log   *zap.Logger
	scene *scene.Scene
}

func setup(cmd *cobra.Command, opts *options) (*env, error) {
	var log *zap.Logger
	var err error
	if opts.verbose {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		return nil, fmt.Errorf("logger init: %w", err)
	}

	cfg, err := config.Load(opts.cfgFile)
	if err != nil {
		return nil, fmt.Errorf("config load: %w", err)
	}

	in := cmd.InOrStdin()
	if opts.file != "" {
		f, err := os.Open(opts.file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}

	var s *scene.Scene
	if opts.svg {
		scenario, err := geom.LoadSVG(in)
		if err != nil {
			return nil, errors.Wrap(err, "read scenario")
		}
		if len(scenario.Cameras) == 0 {
			s, err = scene.Load(scenario.Grid, cfg.Camera.FOV, log)
		} else {
			s, err = scene.Load(scenario.Grid, cfg.Camera.FOV, log, scenario.Cameras...)
		}
		if err != nil {
			return nil, err
		}
	} else {
		grid, err := geom.ParseGrid(in)
		if err != nil {
			return nil, errors.Wrap(err, "read grid")
		}
		if s, err = scene.Load(grid, cfg.Camera.FOV, log); err != nil {
			return nil, err
		}
	}

	left, right := s.Cameras()
	log.Debug("loaded scene",
		zap.Int("height", s.Grid().Height()),
		zap.Int("width", s.Grid().Width()),
		zap.Int("left", left.Position),
		zap.Int("right", right.Position),
	)
	return &env{cfg: cfg, log: log, scene: s}, nil
}

func runLocate(cmd *cobra.Command, opts *options) error {
	e, err := setup(cmd, opts)
	if err != nil {
		return err
	}
	defer e.log.Sync()

	p, err := e.scene.Locate()
	if err != nil {
		return errors.Wrap(err, "locate")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "x=%.4f distance=%.4f\n", p.X, p.Distance)

	left, right := e.scene.Cameras()
	return output(opts, e, e.scene.Grid(), left, right)
}

func runAngle(cmd *cobra.Command, opts *options, e *env, cam geom.Camera) error {
	angle, err := geom.CalculateAngle(e.scene.Grid(), cam)
	if err != nil {
		return errors.Wrapf(err, "camera at %d", cam.Position)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%.2f\n", angle)
	return output(opts, e, e.scene.Grid(), cam)
}

func runSensor(cmd *cobra.Command, opts *options, e *env, cam geom.Camera) error {
	values, err := geom.CameraCells(e.scene.Grid(), cam.Position, cam.FOV)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), values)
	if opts.png == "" {
		return nil
	}
	grid, err := geom.GridFromRows([][]bool{values})
	if err != nil {
		return err
	}
	return output(opts, e, grid)
}

func runFOV(cmd *cobra.Command, opts *options, e *env, cam geom.Camera) error {
	grid := e.scene.Grid()
	filled, err := geom.FillGridBasedOnFOV(geom.NewGrid(grid.Height(), grid.Width()), cam.Position, cam.FOV)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), filled.Text())
	return output(opts, e, filled, cam)
}

func output(opts *options, e *env, grid geom.Grid, cameras ...geom.Camera) error {
	if opts.png == "" {
		return nil
	}
	palette := geom.DefaultPalette
	palette.Occupied = e.cfg.Canvas.Occupied
	palette.Empty = e.cfg.Canvas.Empty
	if err := geom.SavePNG(opts.png, grid, e.cfg.CellSizeFor(grid.Height(), grid.Width()), palette, cameras...); err != nil {
		return errors.Wrap(err, "write png")
	}
	e.log.Info("wrote image", zap.String("path", opts.png))
	if opts.show {
		imgcat.CatFile(opts.png, os.Stdout)
	}
	return nil
}
