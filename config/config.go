package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the root configuration struct
type Config struct {
	Grid   GridConfig   `mapstructure:"grid"`
	Camera CameraConfig `mapstructure:"camera"`
	Canvas CanvasConfig `mapstructure:"canvas"`
}

// GridConfig holds the scene's grid dimensions
type GridConfig struct {
	Height int `mapstructure:"height"`
	Width  int `mapstructure:"width"`
}

// CameraConfig holds the aperture shared by both cameras
type CameraConfig struct {
	FOV float64 `mapstructure:"fov"`
}

// CanvasConfig holds rendering settings
type CanvasConfig struct {
	Size     int    `mapstructure:"size"`
	Occupied string `mapstructure:"occupied"`
	Empty    string `mapstructure:"empty"`
}

// CellSize is the pixel size of one cell of the configured grid drawn on the
// canvas.
func (c *Config) CellSize() int {
	return c.CellSizeFor(c.Grid.Height, c.Grid.Width)
}

// CellSizeFor is the pixel size of one cell of an h by w grid drawn on the
// canvas, at least one pixel.
func (c *Config) CellSizeFor(h, w int) int {
	longest := max(h, w)
	if longest < 1 || c.Canvas.Size < longest {
		return 1
	}
	return c.Canvas.Size / longest
}

// Validate checks the values a scene can't work with.
func (c *Config) Validate() error {
	if c.Grid.Height < 1 || c.Grid.Width < 1 {
		return fmt.Errorf("grid size %dx%d must be positive", c.Grid.Width, c.Grid.Height)
	}
	if c.Camera.FOV < 0 || c.Camera.FOV > 180 {
		return fmt.Errorf("camera fov %v outside [0, 180]", c.Camera.FOV)
	}
	if c.Canvas.Size < 1 {
		return fmt.Errorf("canvas size %d must be positive", c.Canvas.Size)
	}
	return nil
}

// Load reads configuration from file and environment. An empty cfgFile
// searches for fovtri.yaml in the working directory and ./configs; a missing
// file is not an error.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("grid.height", 50)
	v.SetDefault("grid.width", 50)
	v.SetDefault("camera.fov", 160.0)
	v.SetDefault("canvas.size", 350)
	v.SetDefault("canvas.occupied", "#554455")
	v.SetDefault("canvas.empty", "#ffeeff")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("fovtri")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	v.SetEnvPrefix("fovtri")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
