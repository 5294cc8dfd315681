package opengl

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	gfx "j4k.co/shapes"
)

// ErrCreateFailed means the driver handed out a zero shader or program
// handle. Nothing can be rendered after it.
var ErrCreateFailed = errors.New("opengl: object creation failed")

type ShaderSource interface {
	typ() uint32
	source() string
}

type VertexShader string
type FragmentShader string

func (v VertexShader) typ() uint32 {
	return gl.VERTEX_SHADER
}

func (v VertexShader) source() string {
	return string(v)
}

func (f FragmentShader) typ() uint32 {
	return gl.FRAGMENT_SHADER
}

func (f FragmentShader) source() string {
	return string(f)
}

// FragmentOutput is the fragment shader output bound to draw buffer 0.
const FragmentOutput = "fragmentColor"

// Program is a linked shader program.
type Program struct {
	prog     uint32
	log      *zap.Logger
	uniforms map[string]int32
}

// BuildProgram compiles and links srcs. Attribute locations come from attrs.
// Compile and link failures are logged and the program is returned anyway;
// only a zero handle is an error.
func BuildProgram(log *zap.Logger, attrs gfx.VertexAttributes, srcs ...ShaderSource) (*Program, error) {
	if log == nil {
		log = zap.NewNop()
	}
	p := &Program{
		log:      log.Named("program"),
		uniforms: map[string]int32{},
	}
	ss := make([]uint32, 0, len(srcs))
	defer func() {
		for _, s := range ss {
			if p.prog != 0 {
				gl.DetachShader(p.prog, s)
			}
			gl.DeleteShader(s)
		}
	}()
	for _, src := range srcs {
		s, err := compileShader(p.log, src)
		if err != nil {
			return nil, err
		}
		ss = append(ss, s)
	}

	p.prog = gl.CreateProgram()
	if p.prog == 0 {
		return nil, fmt.Errorf("%w: shader program", ErrCreateFailed)
	}
	for _, s := range ss {
		gl.AttachShader(p.prog, s)
	}
	for ch, name := range attrs {
		gl.BindAttribLocation(p.prog, ch.Location(), gl.Str(name+"\x00"))
	}
	gl.BindFragDataLocation(p.prog, 0, gl.Str(FragmentOutput+"\x00"))
	gl.LinkProgram(p.prog)

	var status int32
	gl.GetProgramiv(p.prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		p.log.Error("failed to link shader program", zap.String("log", programInfoLog(p.prog)))
	}
	return p, nil
}

func compileShader(log *zap.Logger, src ShaderSource) (uint32, error) {
	kind := "vertex"
	if src.typ() == gl.FRAGMENT_SHADER {
		kind = "fragment"
	}
	shader := gl.CreateShader(src.typ())
	if shader == 0 {
		return 0, fmt.Errorf("%w: %s shader", ErrCreateFailed, kind)
	}
	csources, free := gl.Strs(src.source() + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		log.Error("shader compile error", zap.String("shader", kind), zap.String("log", shaderInfoLog(shader)))
	}
	return shader, nil
}

func shaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func programInfoLog(prog uint32) string {
	var logLength int32
	gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(prog, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

// Use makes p the current program.
func (p *Program) Use() {
	// checkpoint here for releasing unused GL resources
	if n := ReleaseGarbage(); n > 0 {
		p.log.Debug("released gpu objects", zap.Int("count", n))
	}
	gl.UseProgram(p.prog)
}

func (p *Program) location(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.prog, gl.Str(name+"\x00"))
	p.uniforms[name] = loc
	return loc
}

// SetUniformMatrix4 uploads m, stored row-major, to the named uniform.
func (p *Program) SetUniformMatrix4(name string, m *gfx.Mat4) error {
	loc := p.location(name)
	if loc < 0 {
		return fmt.Errorf("%w: %s", gfx.ErrUniformNotFound, name)
	}
	gl.UniformMatrix4fv(loc, 1, true, &m.Pointer()[0])
	return nil
}

func (p *Program) Delete() {
	if p.prog != 0 {
		gl.DeleteProgram(p.prog)
		p.prog = 0
	}
}
