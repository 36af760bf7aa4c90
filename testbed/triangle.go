package testbed

import (
	"fmt"
	"unsafe"

	"github.com/spaghettifunk/oglc/engine"
	"github.com/spaghettifunk/oglc/engine/core"
	"github.com/spaghettifunk/oglc/engine/renderer/opengl"
)

// triangle talks to the driver directly, without any of the owning
// wrappers.
type triangle struct {
	game    *engine.Game
	program uint32
	vao     uint32
	vbo     uint32
}

func newTriangle(g *engine.Game) {
	t := &triangle{game: g}
	g.State = t
	g.FnInitialize = t.initialize
	g.FnRender = t.render
	g.FnShutdown = t.shutdown
}

func (t *triangle) compile(kind opengl.ShaderKind, path string) (uint32, error) {
	drv := t.game.Systems.Driver
	src, err := t.game.Systems.Assets.ReadFile(path)
	if err != nil {
		return 0, err
	}
	shader := drv.CreateShader(kind)
	drv.ShaderSource(shader, string(src))
	drv.CompileShader(shader)
	if !drv.ShaderCompiled(shader) {
		info := drv.ShaderInfoLog(shader)
		drv.DeleteShader(shader)
		return 0, fmt.Errorf("%s: %w: %s", path, core.ErrShaderCompile, info)
	}
	return shader, nil
}

func (t *triangle) initialize() error {
	drv := t.game.Systems.Driver

	vs, err := t.compile(opengl.VertexShader, "shaders/triangle.vert")
	if err != nil {
		return err
	}
	defer drv.DeleteShader(vs)
	fs, err := t.compile(opengl.FragmentShader, "shaders/triangle.frag")
	if err != nil {
		return err
	}
	defer drv.DeleteShader(fs)

	t.program = drv.CreateProgram()
	drv.AttachShader(t.program, vs)
	drv.AttachShader(t.program, fs)
	drv.LinkProgram(t.program)
	if !drv.ProgramLinked(t.program) {
		info := drv.ProgramInfoLog(t.program)
		drv.DeleteProgram(t.program)
		t.program = 0
		return fmt.Errorf("%w: %s", core.ErrProgramLink, info)
	}

	vertices := []float32{
		-0.5, -0.5, 0.0,
		0.5, -0.5, 0.0,
		0.0, 0.5, 0.0,
	}
	t.vao = drv.GenVertexArray()
	drv.BindVertexArray(t.vao)

	t.vbo = drv.GenBuffer()
	drv.BindBuffer(opengl.ArrayBuffer, t.vbo)
	drv.BufferData(opengl.ArrayBuffer, unsafe.Slice((*byte)(unsafe.Pointer(&vertices[0])), len(vertices)*4), opengl.StaticDraw)

	drv.VertexAttribPointer(0, 3, opengl.Float32, false, 3*4, 0)
	drv.EnableVertexAttribArray(0)

	drv.BindBuffer(opengl.ArrayBuffer, 0)
	drv.BindVertexArray(0)
	return nil
}

func (t *triangle) render(float64) error {
	drv := t.game.Systems.Driver
	drv.UseProgram(t.program)
	drv.BindVertexArray(t.vao)
	drv.DrawArrays(opengl.Triangles, 0, 3)
	return nil
}

func (t *triangle) shutdown() error {
	drv := t.game.Systems.Driver
	if t.vao != 0 {
		drv.DeleteVertexArray(t.vao)
	}
	if t.vbo != 0 {
		drv.DeleteBuffer(t.vbo)
	}
	if t.program != 0 {
		drv.DeleteProgram(t.program)
	}
	t.vao, t.vbo, t.program = 0, 0, 0
	return nil
}
