package scenes

import (
	"go.uber.org/multierr"
	"go.uber.org/zap"

	gfx "j4k.co/shapes"
)

// Scene owns a flat list of objects. Insertion order is animation order and
// draw order.
type Scene struct {
	log      *zap.Logger
	objects  []Object
	nextID   NodeID
	dirty    bool
	onRedraw func()
}

func New(log *zap.Logger) *Scene {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scene{log: log.Named("scene")}
}

// AddObject appends o and takes ownership of it. Objects already owned by a
// scene are ignored.
func (s *Scene) AddObject(o Object) Object {
	n := o.node()
	if n.redraw != nil {
		return o
	}
	s.nextID++
	n.id = s.nextID
	n.redraw = s.invalidate
	s.objects = append(s.objects, o)
	s.log.Debug("object added", zap.Uint32("node", uint32(n.id)), zap.Int("objects", len(s.objects)))
	return o
}

func (s *Scene) Len() int {
	return len(s.objects)
}

func (s *Scene) Object(i int) Object {
	return s.objects[i]
}

// OnRedraw registers fn to be called whenever an object changes.
func (s *Scene) OnRedraw(fn func()) {
	s.onRedraw = fn
}

// NeedsRedraw reports whether anything was animated since the last DrawAll.
func (s *Scene) NeedsRedraw() bool {
	return s.dirty
}

func (s *Scene) invalidate() {
	s.dirty = true
	if s.onRedraw != nil {
		s.onRedraw()
	}
}

// AnimateAll advances every object to the given elapsed time.
func (s *Scene) AnimateAll(elapsed float64) {
	for _, o := range s.objects {
		o.Animate(elapsed)
	}
}

// DrawAll draws every object. Objects that fail to set their uniforms are
// still drawn; their errors are logged and returned together.
func (s *Scene) DrawAll(dev gfx.Device, vp gfx.Viewport) error {
	var errs error
	for _, o := range s.objects {
		if err := o.Draw(dev, vp); err != nil {
			s.log.Warn("draw", zap.Uint32("node", uint32(o.ID())), zap.Error(err))
			errs = multierr.Append(errs, err)
		}
	}
	s.dirty = false
	return errs
}

// Release frees every owned object. The scene is empty afterwards.
func (s *Scene) Release() {
	for _, o := range s.objects {
		o.Release()
		o.node().redraw = nil
	}
	if len(s.objects) > 0 {
		s.log.Debug("released", zap.Int("objects", len(s.objects)))
	}
	s.objects = nil
}
