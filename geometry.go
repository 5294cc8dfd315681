package gfx

import (
	"errors"
)

type Usage uint16

const (
	StaticDraw Usage = iota
	DynamicDraw
	StreamDraw
	StaticCopy
	DynamicCopy
	StreamCopy
)

func (u Usage) String() string {
	switch u {
	case StaticDraw:
		return "static-draw"
	case DynamicDraw:
		return "dynamic-draw"
	case StreamDraw:
		return "stream-draw"
	case StaticCopy:
		return "static-copy"
	case DynamicCopy:
		return "dynamic-copy"
	case StreamCopy:
		return "stream-copy"
	default:
		return "unknown"
	}
}

// Primitive says how a draw call assembles vertices into geometry.
type Primitive uint8

const (
	Triangles Primitive = iota
	TriangleStrip
	TriangleFan
	Lines
	Points
)

func (p Primitive) String() string {
	switch p {
	case Triangles:
		return "triangles"
	case TriangleStrip:
		return "triangle-strip"
	case TriangleFan:
		return "triangle-fan"
	case Lines:
		return "lines"
	case Points:
		return "points"
	default:
		return "unknown"
	}
}

// Primitives returns how many primitives n vertices assemble into.
func (p Primitive) Primitives(n int) int {
	switch p {
	case Triangles:
		return n / 3
	case TriangleStrip, TriangleFan:
		if n < 3 {
			return 0
		}
		return n - 2
	case Lines:
		return n / 2
	default:
		return n
	}
}

// VertexFormat is a set of vertex channels. Each channel lives in its own
// buffer and is bound to the attribute location of its bit index.
type VertexFormat uint32

const (
	VertexPosition VertexFormat = 1 << iota
	VertexColor
	MaxVertexFormat = VertexColor
)

// Elems gives the number of float32 elements of a single channel.
func (v VertexFormat) Elems() int {
	switch v {
	case VertexPosition:
		return 2
	case VertexColor:
		return 3
	default:
		return 0
	}
}

// AttribBytes gives the byte size of a single channel for one vertex.
func (v VertexFormat) AttribBytes() int {
	const fsize = 4
	return v.Elems() * fsize
}

// Location gives the shader attribute index of a single channel.
func (v VertexFormat) Location() uint32 {
	var loc uint32
	for i := VertexFormat(1); i < v; i <<= 1 {
		loc++
	}
	return loc
}

// Stride gives the byte size of one vertex across all channels.
func (v VertexFormat) Stride() int {
	stride := 0
	v.Each(func(ch VertexFormat) {
		stride += ch.AttribBytes()
	})
	return stride
}

func (v VertexFormat) Count() int {
	count := 0
	v.Each(func(VertexFormat) {
		count++
	})
	return count
}

// Each calls fn for every channel in v, lowest location first.
func (v VertexFormat) Each(fn func(VertexFormat)) {
	for i := VertexFormat(1); i <= MaxVertexFormat; i <<= 1 {
		if v&i != 0 {
			fn(i)
		}
	}
}

// VertexAttributes maps shader attributes by name to specific vertex data,
// and as a whole a complete VertexFormat for geometry.
type VertexAttributes map[VertexFormat]string

func DefaultVertexAttributes() VertexAttributes {
	return VertexAttributes{
		VertexPosition: "vertexPosition",
		VertexColor:    "vertexColor",
	}
}

// Format returns a VertexFormat bitmask determined by the mapped attributes.
func (v VertexAttributes) Format() VertexFormat {
	var mask VertexFormat
	for k := range v {
		mask |= k
	}
	return mask
}

var (
	ErrBadVertexFormat = errors.New("gfx: bad vertex format")
	ErrUniformNotFound = errors.New("gfx: uniform not found")
)

type VertexData interface {
	VertexCount() int
	VertexFormat() VertexFormat
	// Channel returns VertexCount()*ch.Elems() floats for a single channel.
	Channel(ch VertexFormat) []float32
}

// CheckVertexData verifies every channel of src holds exactly one value per
// vertex.
func CheckVertexData(src VertexData) error {
	var err error
	n := src.VertexCount()
	src.VertexFormat().Each(func(ch VertexFormat) {
		if err == nil && len(src.Channel(ch)) != n*ch.Elems() {
			err = ErrBadVertexFormat
		}
	})
	return err
}

// Geometry is vertex data resident on the GPU that can be rendered in a
// single draw call.
type Geometry interface {
	VertexCount() int
	Draw(p Primitive)
	Release()
}

// Device allocates geometry and feeds the active shader program.
type Device interface {
	Upload(src VertexData, usage Usage) (Geometry, error)
	SetUniformMatrix4(name string, m *Mat4) error
}
