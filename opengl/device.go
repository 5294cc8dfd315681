package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	gfx "j4k.co/shapes"
)

// Init loads the GL function pointers for the current context and reports
// what the driver provides.
func Init(log *zap.Logger) error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("opengl: could not initialise context: %w", err)
	}
	if log == nil {
		return nil
	}
	var major, minor int32
	gl.GetIntegerv(gl.MAJOR_VERSION, &major)
	gl.GetIntegerv(gl.MINOR_VERSION, &minor)
	log.Info("opengl initialized",
		zap.String("vendor", gl.GoStr(gl.GetString(gl.VENDOR))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("version_int", fmt.Sprintf("%d.%d", major, minor)),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)
	return nil
}

// Device allocates geometry for, and sets uniforms on, a single program.
type Device struct {
	prog *Program
}

var _ gfx.Device = (*Device)(nil)

func NewDevice(prog *Program) *Device {
	return &Device{prog: prog}
}

func (d *Device) Program() *Program {
	return d.prog
}

func (d *Device) Upload(src gfx.VertexData, usage gfx.Usage) (gfx.Geometry, error) {
	geom, err := NewGeometry(src, usage)
	if err != nil {
		return nil, err
	}
	return geom, nil
}

func (d *Device) SetUniformMatrix4(name string, m *gfx.Mat4) error {
	return d.prog.SetUniformMatrix4(name, m)
}

// Viewport sets the GL viewport to vp.
func Viewport(vp gfx.Viewport) {
	gl.Viewport(0, 0, int32(vp.Width), int32(vp.Height))
}

// Clear clears color and depth to the given background color.
func Clear(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}
