package core

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config is the application configuration, usually read from a TOML file.
type Config struct {
	// Tutorial selects which testbed program runs.
	Tutorial string       `toml:"tutorial"`
	Window   WindowConfig `toml:"window"`
	GL       GLConfig     `toml:"gl"`
	Log      LogConfig    `toml:"log"`
	Assets   AssetsConfig `toml:"assets"`
	Render   RenderConfig `toml:"render"`
}

type WindowConfig struct {
	Title string `toml:"title"`
	// Window starting position, if applicable.
	X int `toml:"x"`
	Y int `toml:"y"`
	// Window starting size.
	Width     int  `toml:"width"`
	Height    int  `toml:"height"`
	Resizable bool `toml:"resizable"`
	VSync     bool `toml:"vsync"`
}

// GLConfig holds the requested context version. Only core profiles are created.
type GLConfig struct {
	Major int `toml:"major"`
	Minor int `toml:"minor"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type AssetsConfig struct {
	// Dir is an on-disk asset root. Empty means the embedded resources are used.
	Dir string `toml:"dir"`
	// Watch enables hot reload of files under Dir.
	Watch bool `toml:"watch"`
}

type RenderConfig struct {
	ClearColor [4]float32 `toml:"clear_color"`
}

// DefaultConfig matches the settings every tutorial used: an 800x600 window
// with an OpenGL 3.3 core context.
func DefaultConfig() *Config {
	return &Config{
		Tutorial: "textures",
		Window: WindowConfig{
			Title:     "OpenGL Testing",
			X:         100,
			Y:         100,
			Width:     800,
			Height:    600,
			Resizable: true,
			VSync:     true,
		},
		GL: GLConfig{
			Major: 3,
			Minor: 3,
		},
		Log: LogConfig{
			Level: "info",
		},
		Render: RenderConfig{
			ClearColor: [4]float32{0.2, 0.3, 0.3, 1.0},
		},
	}
}

// ParseConfig decodes TOML on top of the defaults, so a file only needs to
// name the values it changes. Unknown keys are rejected.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, decodeError(err)
	}
	if err := checkClearColorLen(data); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decodeError(err error) error {
	var derr *toml.DecodeError
	if errors.As(err, &derr) {
		row, col := derr.Position()
		return fmt.Errorf("%w: line %d column %d: %s", ErrInvalidConfig, row, col, derr.Error())
	}
	var serr *toml.StrictMissingError
	if errors.As(err, &serr) {
		keys := make([]string, 0, len(serr.Errors))
		for _, e := range serr.Errors {
			row, _ := e.Position()
			keys = append(keys, fmt.Sprintf("%s (line %d)", strings.Join(e.Key(), "."), row))
		}
		return fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(keys, ", "))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, err)
}

// checkClearColorLen rejects a clear_color that is not exactly RGBA. The
// fixed size array in RenderConfig would drop the extra components.
func checkClearColorLen(data []byte) error {
	var raw struct {
		Render struct {
			ClearColor []float64 `toml:"clear_color"`
		} `toml:"render"`
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return decodeError(err)
	}
	if c := raw.Render.ClearColor; c != nil && len(c) != 4 {
		return fmt.Errorf("%w: clear_color needs 4 components, got %d", ErrInvalidConfig, len(c))
	}
	return nil
}

// LoadConfig reads the file at path. An empty path returns the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}
	return ParseConfig(data)
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.GL.Major < 3 || (c.GL.Major == 3 && c.GL.Minor < 3) {
		return fmt.Errorf("%w: OpenGL %d.%d is older than 3.3", ErrInvalidConfig, c.GL.Major, c.GL.Minor)
	}
	if c.Assets.Watch && c.Assets.Dir == "" {
		return fmt.Errorf("%w: assets.watch needs assets.dir", ErrInvalidConfig)
	}
	for _, v := range c.Render.ClearColor {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: clear_color components must be in [0, 1]", ErrInvalidConfig)
		}
	}
	return nil
}

// Encode renders the configuration back to TOML.
func (c *Config) Encode() ([]byte, error) {
	return toml.Marshal(c)
}
