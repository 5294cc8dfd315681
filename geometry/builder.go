package geometry

import (
	gfx "j4k.co/shapes"
)

// Builder accumulates vertices one channel buffer at a time.
type Builder struct {
	vf    gfx.VertexFormat
	count int
	curvf gfx.VertexFormat // data that's been set on the current vertex
	chans map[gfx.VertexFormat][]float32
}

func NewBuilder(vf gfx.VertexFormat) *Builder {
	b := &Builder{
		vf:    vf,
		chans: make(map[gfx.VertexFormat][]float32, vf.Count()),
	}
	return b
}

// Clear resets buffers to zero length.
func (b *Builder) Clear() {
	for ch, data := range b.chans {
		b.chans[ch] = data[:0]
	}
	b.count = 0
	b.curvf = 0
}

// next fills the channels the current vertex left unset with the previous
// vertex's values, then starts a new vertex.
func (b *Builder) next() {
	b.fillVertex()
	b.count++
	b.curvf = 0
}

func (b *Builder) fillVertex() {
	if b.count == 0 {
		return
	}
	b.vf.Each(func(ch gfx.VertexFormat) {
		if b.curvf&ch != 0 {
			return
		}
		data := b.chans[ch]
		n := ch.Elems()
		if len(data) >= n && len(data) == (b.count-1)*n {
			b.chans[ch] = append(data, data[len(data)-n:]...)
		} else {
			b.chans[ch] = append(data, make([]float32, n)...)
		}
	})
	b.curvf = b.vf
}

func (b *Builder) set(ch gfx.VertexFormat, data ...float32) {
	if b.vf&ch == 0 {
		panic(gfx.ErrBadVertexFormat)
	}
	if b.count == 0 {
		panic("geometry: channel set before Position")
	}
	n := ch.Elems()
	buf := b.chans[ch]
	if b.curvf&ch != 0 {
		copy(buf[len(buf)-n:], data)
		return
	}
	b.curvf |= ch
	b.chans[ch] = append(buf, data...)
}

// Position creates a new vertex and sets the vertex position.
func (b *Builder) Position(x, y float32) *Builder {
	b.next()
	b.set(gfx.VertexPosition, x, y)
	return b
}

// Color sets the vertex color.
func (b *Builder) Color(red, green, blue float32) *Builder {
	b.set(gfx.VertexColor, red, green, blue)
	return b
}

// VertexCount returns the number of vertices available.
func (b *Builder) VertexCount() int {
	return b.count
}

func (b *Builder) VertexFormat() gfx.VertexFormat {
	return b.vf
}

// Channel returns the values of a single channel, filling in the last vertex
// if needed.
func (b *Builder) Channel(ch gfx.VertexFormat) []float32 {
	b.fillVertex()
	return b.chans[ch]
}
