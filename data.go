package gfx

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Vec2 is a 2D value.
type Vec2 = mgl32.Vec2

// Vec4 is a point in homogeneous coordinates.
type Vec4 [4]float32

func (v Vec4) Add(u Vec4) Vec4 {
	return Vec4(mgl32.Vec4(v).Add(mgl32.Vec4(u)))
}

// Mul treats v as a row vector and multiplies it on the right by m.
func (v Vec4) Mul(m Mat4) Vec4 {
	var r Vec4
	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			r[j] += v[i] * m[i*4+j]
		}
	}
	return r
}

// Mat4 is a 4x4 matrix stored row-major. Points are row vectors, so a chain
// a.Mul(b).Mul(c) applies a first.
type Mat4 [16]float32

func Ident4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func Scale2D(s Vec2) Mat4 {
	return Mat4{
		s[0], 0, 0, 0,
		0, s[1], 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Rotate2D rotates counterclockwise by angle radians about the z axis.
func Rotate2D(angle float32) Mat4 {
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))
	return Mat4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func Translate2D(t Vec2) Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		t[0], t[1], 0, 1,
	}
}

// ViewCorrection stretches y by the viewport's aspect ratio.
func ViewCorrection(vp Viewport) Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, vp.Aspect(), 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func (m Mat4) Mul(b Mat4) Mat4 {
	var r Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				r[i*4+j] += m[i*4+k] * b[k*4+j]
			}
		}
	}
	return r
}

func (m Mat4) At(row, col int) float32 {
	return m[row*4+col]
}

// Pointer returns the row-major storage, suitable for a transposed uniform
// upload.
func (m *Mat4) Pointer() *[16]float32 {
	return (*[16]float32)(m)
}

// ColumnMajor returns the same matrix in mathgl's column-major layout.
func (m Mat4) ColumnMajor() mgl32.Mat4 {
	return mgl32.Mat4(m).Transpose()
}

func (m Mat4) ApproxEqual(b Mat4, eps float32) bool {
	for i := range m {
		if !mgl32.FloatEqualThreshold(m[i], b[i], eps) {
			return false
		}
	}
	return true
}

// Viewport is the size of the drawable area in pixels.
type Viewport struct {
	Width, Height int
}

// Aspect returns Width/Height, or 1 for a degenerate viewport.
func (vp Viewport) Aspect() float32 {
	if vp.Height == 0 {
		return 1
	}
	return float32(vp.Width) / float32(vp.Height)
}
