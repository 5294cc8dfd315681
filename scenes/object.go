package scenes

import (
	"fmt"
	"math"

	gfx "j4k.co/shapes"
)

type NodeID uint32

// MVPUniform is the shader uniform receiving each object's transform.
const MVPUniform = "MVP"

// Object is a drawable shape with a 2D transform. Concrete shapes embed a
// Node and supply DrawModel.
type Object interface {
	node() *Node
	ID() NodeID
	Scaling() gfx.Vec2
	Orientation() float32
	Position() gfx.Vec2

	Scale(factor gfx.Vec2) Object
	Rotate(angle float32) Object
	Translate(offset gfx.Vec2) Object

	Animate(elapsed float64)
	MVP(vp gfx.Viewport) gfx.Mat4
	Draw(dev gfx.Device, vp gfx.Viewport) error
	// DrawModel issues the shape's draw call against the bound program.
	DrawModel()
	Release()
}

func initObject(o Object) {
	n := o.node()
	n.outer = o
	n.scaling = gfx.Vec2{1, 1}
}

type Node struct {
	id     NodeID
	outer  Object
	redraw func()

	scaling     gfx.Vec2
	orientation float32
	position    gfx.Vec2
}

func (o *Node) node() *Node {
	return o
}

func (o *Node) ID() NodeID {
	return o.id
}

func (o *Node) Scaling() gfx.Vec2 {
	return o.scaling
}

func (o *Node) Orientation() float32 {
	return o.orientation
}

func (o *Node) Position() gfx.Vec2 {
	return o.position
}

// Scale multiplies the current scaling component-wise by factor.
func (o *Node) Scale(factor gfx.Vec2) Object {
	o.scaling = gfx.Vec2{o.scaling.X() * factor.X(), o.scaling.Y() * factor.Y()}
	return o.outer
}

// Rotate adds angle radians to the orientation.
func (o *Node) Rotate(angle float32) Object {
	o.orientation += angle
	return o.outer
}

func (o *Node) Translate(offset gfx.Vec2) Object {
	o.position = o.position.Add(offset)
	return o.outer
}

// Animate overwrites orientation with the elapsed time and drives both scale
// axes with sin(elapsed), so the shape flips through the origin whenever the
// sine goes negative.
func (o *Node) Animate(elapsed float64) {
	o.orientation = float32(elapsed)
	s := float32(math.Sin(elapsed))
	o.scaling = gfx.Vec2{s, s}
	if o.redraw != nil {
		o.redraw()
	}
}

// MVP composes scale, rotation, translation and aspect correction, in that
// order, from the current transform.
func (o *Node) MVP(vp gfx.Viewport) gfx.Mat4 {
	return gfx.Scale2D(o.scaling).
		Mul(gfx.Rotate2D(o.orientation)).
		Mul(gfx.Translate2D(o.position)).
		Mul(gfx.ViewCorrection(vp))
}

// Draw uploads the MVP and renders the shape. A uniform that cannot be set
// is returned after the shape has still been drawn.
func (o *Node) Draw(dev gfx.Device, vp gfx.Viewport) error {
	mvp := o.MVP(vp)
	err := dev.SetUniformMatrix4(MVPUniform, &mvp)
	o.outer.DrawModel()
	if err != nil {
		return fmt.Errorf("scenes: draw node %d: %w", o.id, err)
	}
	return nil
}
