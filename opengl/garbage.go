package opengl

import (
	"sync"

	"github.com/go-gl/gl/v4.1-core/gl"
)

type garbage struct {
	// Release may be called from any goroutine, the GL calls happen on the
	// context's thread.
	sync.Mutex
	buffers []uint32
	arrays  []uint32
}

var trashbin garbage

func (g *garbage) addBuffers(b ...uint32) {
	g.Lock()
	g.buffers = append(g.buffers, b...)
	g.Unlock()
}

func (g *garbage) addArray(a uint32) {
	g.Lock()
	g.arrays = append(g.arrays, a)
	g.Unlock()
}

func (g *garbage) release() int {
	g.Lock()
	defer g.Unlock()

	n := len(g.buffers) + len(g.arrays)
	if len(g.buffers) > 0 {
		gl.DeleteBuffers(int32(len(g.buffers)), &g.buffers[0])
		g.buffers = g.buffers[:0]
	}
	if len(g.arrays) > 0 {
		gl.DeleteVertexArrays(int32(len(g.arrays)), &g.arrays[0])
		g.arrays = g.arrays[:0]
	}
	return n
}

// ReleaseGarbage deletes GPU objects whose owners have been released. It must
// be called on the thread owning the GL context; Program.Use does so at every
// frame.
func ReleaseGarbage() int {
	return trashbin.release()
}
