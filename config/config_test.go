package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"j4k.co/shapes/scenes"
)

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, 512, c.Window.Width)
	assert.Equal(t, 512, c.Window.Height)
	assert.Equal(t, "Triangle Rendering", c.Window.Title)
	assert.Len(t, c.Objects, 4)
}

func TestLoadEmpty(t *testing.T) {
	c, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadOverrides(t *testing.T) {
	src := `
window:
  title: Shapes
  width: 1024
log:
  level: debug
frame:
  fps: 30
  background: [0.1, 0.2, 0.3, 1]
objects:
  - shape: quad
    scale: [0.5, 0.5]
    rotate: 0.25
    translate: [-0.5, 0]
  - shape: triangle
`
	c, err := Load(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "Shapes", c.Window.Title)
	assert.Equal(t, 1024, c.Window.Width)
	assert.Equal(t, 512, c.Window.Height, "unset fields keep defaults")
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, 30, c.Frame.Fps)
	assert.Equal(t, [4]float32{0.1, 0.2, 0.3, 1}, c.Frame.Background)
	assert.Equal(t, []scenes.ObjectSpec{
		{Shape: "quad", Scale: []float32{0.5, 0.5}, Rotate: 0.25, Translate: []float32{-0.5, 0}},
		{Shape: "triangle"},
	}, c.Objects)
}

func TestLoadEmptyScene(t *testing.T) {
	c, err := Load(strings.NewReader("objects: []\n"))
	require.NoError(t, err)
	assert.Empty(t, c.Objects)
}

func TestLoadInvalid(t *testing.T) {
	data := []string{
		"window: {width: 0}",
		"gl: {major: 2, minor: 1}",
		"frame: {fps: -1}",
		"objects: [{shape: star}]",
		"objects: [{shape: quad, translate: [1]}]",
	}
	for _, src := range data {
		_, err := Load(strings.NewReader(src))
		assert.ErrorIs(t, err, ErrInvalid, src)
	}
}

func TestLoadUnknownField(t *testing.T) {
	_, err := Load(strings.NewReader("windw: {width: 10}"))
	assert.Error(t, err)
}

func TestLoadFileRoundTrip(t *testing.T) {
	out, err := Default().Marshal()
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "shapes.yaml")
	require.NoError(t, os.WriteFile(path, out, 0644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
