package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"j4k.co/shapes/scenes"
)

var ErrInvalid = errors.New("config: invalid")

type Window struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
}

type GL struct {
	Major int `yaml:"major"`
	Minor int `yaml:"minor"`
}

type Log struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

type Frame struct {
	Fps        int        `yaml:"fps"`
	Background [4]float32 `yaml:"background,flow"`
}

// Config describes the window, the GL context and the initial scene.
type Config struct {
	Window  Window              `yaml:"window"`
	GL      GL                  `yaml:"gl"`
	Log     Log                 `yaml:"log"`
	Frame   Frame               `yaml:"frame"`
	Objects []scenes.ObjectSpec `yaml:"objects"`
}

func Default() *Config {
	return &Config{
		Window: Window{
			Title:  "Triangle Rendering",
			Width:  512,
			Height: 512,
			X:      50,
			Y:      50,
		},
		GL:      GL{Major: 4, Minor: 1},
		Log:     Log{Level: "info"},
		Frame:   Frame{Fps: 60},
		Objects: scenes.DefaultObjects(),
	}
}

// Load reads YAML from r over the defaults. A file listing objects replaces
// the default scene entirely.
func Load(r io.Reader) (*Config, error) {
	c := Default()
	c.Objects = nil
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: %w", err)
	}
	if c.Objects == nil {
		c.Objects = scenes.DefaultObjects()
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.GL.Major < 3 || (c.GL.Major == 3 && c.GL.Minor < 2) {
		return fmt.Errorf("%w: OpenGL %d.%d has no core profile", ErrInvalid, c.GL.Major, c.GL.Minor)
	}
	if c.Frame.Fps <= 0 {
		return fmt.Errorf("%w: fps %d", ErrInvalid, c.Frame.Fps)
	}
	for i, o := range c.Objects {
		if err := o.Validate(); err != nil {
			return fmt.Errorf("%w: object %d: %v", ErrInvalid, i, err)
		}
	}
	return nil
}

// Marshal renders c as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
