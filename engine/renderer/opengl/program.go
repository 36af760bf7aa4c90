package opengl

import (
	"fmt"

	"github.com/spaghettifunk/oglc/engine/core"
	"github.com/spaghettifunk/oglc/engine/math"
)

// ShaderProgram owns one linked program object. Like Shader it must not be
// copied.
type ShaderProgram struct {
	resource
	drv      ShaderDriver
	uniforms map[string]int32
}

// ProgramConfig controls what happens after a successful link.
type ProgramConfig struct {
	// Activate makes the program current once it is linked.
	Activate bool
}

// NewShaderProgram links the given shaders into a program. The program is
// not made current; call Use for that.
func NewShaderProgram(drv ShaderDriver, first *Shader, rest ...*Shader) (*ShaderProgram, error) {
	return ProgramConfig{}.Link(drv, first, rest...)
}

// Link creates a program, attaches every shader, links and detaches them
// again. Every shader must hold a compiled object, otherwise no program is
// created at all.
func (cfg ProgramConfig) Link(drv ShaderDriver, first *Shader, rest ...*Shader) (*ShaderProgram, error) {
	shaders := append([]*Shader{first}, rest...)
	for i, s := range shaders {
		if s == nil || !s.Ready() {
			return nil, fmt.Errorf("%w: shader %d of %d", core.ErrShaderNotReady, i+1, len(shaders))
		}
	}

	handle := drv.CreateProgram()
	if handle == 0 {
		return nil, fmt.Errorf("create program: %w", core.ErrUnknown)
	}
	for _, s := range shaders {
		drv.AttachShader(handle, s.handle)
	}
	drv.LinkProgram(handle)

	if !drv.ProgramLinked(handle) {
		info := drv.ProgramInfoLog(handle)
		core.LogError("failed to link program %d:\n%s", handle, info)
		drv.DeleteProgram(handle)
		return nil, &LinkError{Log: info}
	}

	// the linked binary no longer needs the shader objects
	for _, s := range shaders {
		drv.DetachShader(handle, s.handle)
	}

	p := &ShaderProgram{
		drv:      drv,
		uniforms: make(map[string]int32),
	}
	p.own(handle, drv.DeleteProgram)

	if cfg.Activate {
		drv.UseProgram(handle)
	}
	return p, nil
}

// Use makes the program current.
func (p *ShaderProgram) Use() error {
	if !p.Ready() {
		return core.ErrHandleNotAssigned
	}
	p.drv.UseProgram(p.handle)
	return nil
}

// Move transfers ownership to a new ShaderProgram and leaves p as the
// sentinel.
func (p *ShaderProgram) Move() *ShaderProgram {
	out := &ShaderProgram{drv: p.drv, uniforms: p.uniforms}
	p.moveTo(&out.resource)
	p.uniforms = nil
	return out
}

func (p *ShaderProgram) location(name string) (int32, error) {
	if !p.Ready() {
		return -1, core.ErrHandleNotAssigned
	}
	if loc, ok := p.uniforms[name]; ok {
		return loc, nil
	}
	loc := p.drv.UniformLocation(p.handle, name)
	if loc < 0 {
		core.LogWarn("program %d has no active uniform %q", p.handle, name)
	}
	// -1 is cached as well, the driver ignores writes to it
	p.uniforms[name] = loc
	return loc, nil
}

// The uniform setters write to the current program, so p must be in use.

func (p *ShaderProgram) SetInt(name string, v int32) error {
	loc, err := p.location(name)
	if err != nil {
		return err
	}
	p.drv.Uniform1i(loc, v)
	return nil
}

func (p *ShaderProgram) SetFloat(name string, v float32) error {
	loc, err := p.location(name)
	if err != nil {
		return err
	}
	p.drv.Uniform1f(loc, v)
	return nil
}

func (p *ShaderProgram) SetVec4(name string, v math.Vec4) error {
	loc, err := p.location(name)
	if err != nil {
		return err
	}
	p.drv.Uniform4f(loc, v.X(), v.Y(), v.Z(), v.W())
	return nil
}

func (p *ShaderProgram) SetMat4(name string, mt math.Mat4) error {
	loc, err := p.location(name)
	if err != nil {
		return err
	}
	p.drv.UniformMatrix4fv(loc, mt.Data())
	return nil
}
