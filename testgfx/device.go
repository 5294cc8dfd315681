// Package testgfx provides in-memory stand-ins for GPU state so scenes can be
// exercised without a GL context.
package testgfx

import (
	"fmt"

	gfx "j4k.co/shapes"
)

// Uniform is one recorded uniform upload.
type Uniform struct {
	Name   string
	Matrix gfx.Mat4
}

// DrawCall is one recorded draw invocation.
type DrawCall struct {
	Geometry  int
	Primitive gfx.Primitive
	Vertices  int
}

// Device records every upload, uniform and draw call in order.
type Device struct {
	// Missing lists uniform names that report gfx.ErrUniformNotFound.
	Missing map[string]bool
	// UploadErr, if set, is returned by the next Upload.
	UploadErr error

	Geometries []*Geometry
	Uniforms   []Uniform
	Draws      []DrawCall
}

func NewDevice() *Device {
	return &Device{Missing: map[string]bool{}}
}

func (d *Device) Upload(src gfx.VertexData, usage gfx.Usage) (gfx.Geometry, error) {
	if err := d.UploadErr; err != nil {
		d.UploadErr = nil
		return nil, err
	}
	if err := gfx.CheckVertexData(src); err != nil {
		return nil, err
	}
	g := &Geometry{
		ID:       len(d.Geometries),
		Usage:    usage,
		Format:   src.VertexFormat(),
		Channels: map[gfx.VertexFormat][]float32{},
		count:    src.VertexCount(),
		dev:      d,
	}
	src.VertexFormat().Each(func(ch gfx.VertexFormat) {
		g.Channels[ch] = append([]float32(nil), src.Channel(ch)...)
	})
	d.Geometries = append(d.Geometries, g)
	return g, nil
}

func (d *Device) SetUniformMatrix4(name string, m *gfx.Mat4) error {
	if d.Missing[name] {
		return fmt.Errorf("%w: %s", gfx.ErrUniformNotFound, name)
	}
	d.Uniforms = append(d.Uniforms, Uniform{Name: name, Matrix: *m})
	return nil
}

// LastUniform returns the most recent upload to name.
func (d *Device) LastUniform(name string) (gfx.Mat4, bool) {
	for i := len(d.Uniforms) - 1; i >= 0; i-- {
		if d.Uniforms[i].Name == name {
			return d.Uniforms[i].Matrix, true
		}
	}
	return gfx.Mat4{}, false
}

// Reset forgets recorded uniforms and draw calls but keeps geometry.
func (d *Device) Reset() {
	d.Uniforms = nil
	d.Draws = nil
}

// Geometry is a fake GPU buffer set.
type Geometry struct {
	ID       int
	Usage    gfx.Usage
	Format   gfx.VertexFormat
	Channels map[gfx.VertexFormat][]float32
	Released int

	count int
	dev   *Device
}

func (g *Geometry) VertexCount() int {
	return g.count
}

func (g *Geometry) Draw(p gfx.Primitive) {
	g.dev.Draws = append(g.dev.Draws, DrawCall{Geometry: g.ID, Primitive: p, Vertices: g.count})
}

func (g *Geometry) Release() {
	g.Released++
}
