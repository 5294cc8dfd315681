package scenes

import (
	"errors"
	"fmt"

	gfx "j4k.co/shapes"
	"j4k.co/shapes/geometry"
)

var ErrUnknownShape = errors.New("scenes: unknown shape")

const shapeFormat = gfx.VertexPosition | gfx.VertexColor

// mesh is a Node drawn from a fixed piece of GPU geometry, uploaded once.
type mesh struct {
	Node
	geom      gfx.Geometry
	primitive gfx.Primitive
}

func (m *mesh) upload(dev gfx.Device, src gfx.VertexData, prim gfx.Primitive) error {
	geom, err := dev.Upload(src, gfx.StaticDraw)
	if err != nil {
		return err
	}
	m.geom = geom
	m.primitive = prim
	return nil
}

func (m *mesh) Primitive() gfx.Primitive {
	return m.primitive
}

func (m *mesh) DrawModel() {
	m.geom.Draw(m.primitive)
}

func (m *mesh) Release() {
	if m.geom != nil {
		m.geom.Release()
		m.geom = nil
	}
}

// Triangle is the unit right triangle with red, green and blue corners.
type Triangle struct {
	mesh
}

func triangleVertices() *geometry.Builder {
	b := geometry.NewBuilder(shapeFormat)
	b.Position(0, 0).Color(1, 0, 0)
	b.Position(1, 0).Color(0, 1, 0)
	b.Position(0, 1).Color(0, 0, 1)
	return b
}

func NewTriangle(dev gfx.Device) (*Triangle, error) {
	t := &Triangle{}
	if err := t.upload(dev, triangleVertices(), gfx.Triangles); err != nil {
		return nil, fmt.Errorf("scenes: triangle: %w", err)
	}
	initObject(t)
	return t, nil
}

// Quad is the unit square drawn as a triangle strip, with a white corner
// opposite the origin.
type Quad struct {
	mesh
}

func quadVertices() *geometry.Builder {
	b := geometry.NewBuilder(shapeFormat)
	b.Position(0, 0).Color(1, 0, 0)
	b.Position(1, 0).Color(0, 1, 0)
	b.Position(0, 1).Color(0, 0, 1)
	b.Position(1, 1).Color(1, 1, 1)
	return b
}

func NewQuad(dev gfx.Device) (*Quad, error) {
	q := &Quad{}
	if err := q.upload(dev, quadVertices(), gfx.TriangleStrip); err != nil {
		return nil, fmt.Errorf("scenes: quad: %w", err)
	}
	initObject(q)
	return q, nil
}

// NewShape creates a shape by name.
func NewShape(kind string, dev gfx.Device) (Object, error) {
	var (
		o   Object
		err error
	)
	switch kind {
	case "triangle":
		o, err = NewTriangle(dev)
	case "quad":
		o, err = NewQuad(dev)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, kind)
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}
