package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	gfx "j4k.co/shapes"
)

// Geometry is a vertex array object with one buffer per vertex channel.
type Geometry struct {
	vao    uint32
	vbos   []uint32
	count  int32
	format gfx.VertexFormat
}

var _ gfx.Geometry = (*Geometry)(nil)

// NewGeometry copies every channel of src into newly allocated buffer
// objects and binds each to the attribute location of its channel.
func NewGeometry(src gfx.VertexData, usage gfx.Usage) (*Geometry, error) {
	if err := gfx.CheckVertexData(src); err != nil {
		return nil, err
	}
	format := src.VertexFormat()
	geom := &Geometry{
		vbos:   make([]uint32, format.Count()),
		count:  int32(src.VertexCount()),
		format: format,
	}
	gl.GenVertexArrays(1, &geom.vao)
	gl.BindVertexArray(geom.vao)
	if len(geom.vbos) > 0 {
		gl.GenBuffers(int32(len(geom.vbos)), &geom.vbos[0])
	}

	i := 0
	format.Each(func(ch gfx.VertexFormat) {
		data := src.Channel(ch)
		gl.BindBuffer(gl.ARRAY_BUFFER, geom.vbos[i])
		if len(data) > 0 {
			gl.BufferData(gl.ARRAY_BUFFER, 4*len(data), gl.Ptr(data), glUsage(usage))
		} else {
			gl.BufferData(gl.ARRAY_BUFFER, 0, nil, glUsage(usage))
		}
		loc := ch.Location()
		gl.EnableVertexAttribArray(loc)
		gl.VertexAttribPointer(loc, int32(ch.Elems()), gl.FLOAT, false, 0, nil)
		i++
	})
	gl.BindVertexArray(0)
	return geom, nil
}

func (g *Geometry) VertexCount() int {
	return int(g.count)
}

func (g *Geometry) Format() gfx.VertexFormat {
	return g.format
}

// Draw makes a glDrawArrays call over every vertex.
func (g *Geometry) Draw(p gfx.Primitive) {
	gl.BindVertexArray(g.vao)
	gl.DrawArrays(glPrimitive(p), 0, g.count)
}

// Release queues the buffers for deletion at the next garbage checkpoint.
func (g *Geometry) Release() {
	if g.vao == 0 {
		return
	}
	trashbin.addBuffers(g.vbos...)
	trashbin.addArray(g.vao)
	g.vao = 0
	g.vbos = nil
}
