package scenes

import (
	"fmt"

	gfx "j4k.co/shapes"
)

// ObjectSpec describes one shape and its initial transform. Scale, Rotate and
// Translate are applied in that order.
type ObjectSpec struct {
	Shape     string    `yaml:"shape"`
	Scale     []float32 `yaml:"scale,omitempty"`
	Rotate    float32   `yaml:"rotate,omitempty"`
	Translate []float32 `yaml:"translate,omitempty"`
}

func vec2(v []float32, def gfx.Vec2) (gfx.Vec2, error) {
	switch len(v) {
	case 0:
		return def, nil
	case 2:
		return gfx.Vec2{v[0], v[1]}, nil
	default:
		return gfx.Vec2{}, fmt.Errorf("scenes: want 2 components, got %d", len(v))
	}
}

// Validate checks the spec without touching the GPU.
func (o ObjectSpec) Validate() error {
	switch o.Shape {
	case "triangle", "quad":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownShape, o.Shape)
	}
	if _, err := vec2(o.Scale, gfx.Vec2{1, 1}); err != nil {
		return fmt.Errorf("scale: %w", err)
	}
	if _, err := vec2(o.Translate, gfx.Vec2{}); err != nil {
		return fmt.Errorf("translate: %w", err)
	}
	return nil
}

// Build creates the shape on dev with its initial transform applied.
func (o ObjectSpec) Build(dev gfx.Device) (Object, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	scale, _ := vec2(o.Scale, gfx.Vec2{1, 1})
	offset, _ := vec2(o.Translate, gfx.Vec2{})
	obj, err := NewShape(o.Shape, dev)
	if err != nil {
		return nil, err
	}
	return obj.Scale(scale).Rotate(o.Rotate).Translate(offset), nil
}

// Populate builds every spec and adds it to s. On failure the objects built
// so far stay in the scene.
func Populate(s *Scene, dev gfx.Device, specs []ObjectSpec) error {
	for i, spec := range specs {
		obj, err := spec.Build(dev)
		if err != nil {
			return fmt.Errorf("scenes: object %d: %w", i, err)
		}
		s.AddObject(obj)
	}
	return nil
}

// DefaultObjects is four triangles, one per quadrant around the origin.
func DefaultObjects() []ObjectSpec {
	return []ObjectSpec{
		{Shape: "triangle", Translate: []float32{-0.25, 0.25}},
		{Shape: "triangle", Translate: []float32{-0.25, -0.25}},
		{Shape: "triangle", Translate: []float32{0.25, -0.25}},
		{Shape: "triangle", Translate: []float32{0.25, 0.25}},
	}
}
