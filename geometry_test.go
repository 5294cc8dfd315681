package gfx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVertexFormatStride(t *testing.T) {
	assert.Equal(t, 8, VertexPosition.Stride())
	assert.Equal(t, 12, VertexColor.Stride())
	assert.Equal(t, 20, (VertexPosition | VertexColor).Stride())
	assert.Equal(t, 0, VertexFormat(0).Stride())
}

func TestVertexFormatCount(t *testing.T) {
	assert.Equal(t, 1, VertexPosition.Count())
	assert.Equal(t, 2, (VertexPosition | VertexColor).Count())
	assert.Equal(t, 0, VertexFormat(0).Count())
}

func TestVertexFormatLocation(t *testing.T) {
	assert.Equal(t, uint32(0), VertexPosition.Location())
	assert.Equal(t, uint32(1), VertexColor.Location())
}

func TestDefaultVertexAttributes(t *testing.T) {
	attrs := DefaultVertexAttributes()
	assert.Equal(t, VertexPosition|VertexColor, attrs.Format())
	assert.Equal(t, "vertexPosition", attrs[VertexPosition])
	assert.Equal(t, "vertexColor", attrs[VertexColor])
}

func TestPrimitives(t *testing.T) {
	data := []struct {
		p        Primitive
		vertices int
		expected int
	}{
		{Triangles, 3, 1},
		{Triangles, 6, 2},
		{TriangleStrip, 4, 2},
		{TriangleStrip, 2, 0},
		{TriangleFan, 5, 3},
		{Lines, 4, 2},
		{Points, 7, 7},
	}
	for _, d := range data {
		assert.Equal(t, d.expected, d.p.Primitives(d.vertices), "%s with %d vertices", d.p, d.vertices)
	}
}

type rawVertices struct {
	count    int
	format   VertexFormat
	channels map[VertexFormat][]float32
}

func (r rawVertices) VertexCount() int { return r.count }

func (r rawVertices) VertexFormat() VertexFormat { return r.format }

func (r rawVertices) Channel(ch VertexFormat) []float32 { return r.channels[ch] }

func TestCheckVertexData(t *testing.T) {
	good := rawVertices{
		count:  2,
		format: VertexPosition | VertexColor,
		channels: map[VertexFormat][]float32{
			VertexPosition: {0, 0, 1, 0},
			VertexColor:    {1, 0, 0, 0, 1, 0},
		},
	}
	assert.NoError(t, CheckVertexData(good))

	short := good
	short.channels = map[VertexFormat][]float32{
		VertexPosition: {0, 0, 1, 0},
		VertexColor:    {1, 0, 0},
	}
	assert.ErrorIs(t, CheckVertexData(short), ErrBadVertexFormat)
}
