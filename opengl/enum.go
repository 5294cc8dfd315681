package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	gfx "j4k.co/shapes"
)

func glUsage(u gfx.Usage) uint32 {
	switch u {
	case gfx.StaticDraw:
		return gl.STATIC_DRAW
	case gfx.DynamicDraw:
		return gl.DYNAMIC_DRAW
	case gfx.StreamDraw:
		return gl.STREAM_DRAW
	case gfx.StaticCopy:
		return gl.STATIC_COPY
	case gfx.DynamicCopy:
		return gl.DYNAMIC_COPY
	case gfx.StreamCopy:
		return gl.STREAM_COPY
	default:
		return gl.STATIC_DRAW
	}
}

func glPrimitive(p gfx.Primitive) uint32 {
	switch p {
	case gfx.Triangles:
		return gl.TRIANGLES
	case gfx.TriangleStrip:
		return gl.TRIANGLE_STRIP
	case gfx.TriangleFan:
		return gl.TRIANGLE_FAN
	case gfx.Lines:
		return gl.LINES
	case gfx.Points:
		return gl.POINTS
	default:
		return gl.TRIANGLES
	}
}
