// Package opengltest provides an in-memory graphics driver for tests.
package opengltest

import (
	"fmt"
	"strings"

	"github.com/spaghettifunk/oglc/engine/renderer/opengl"
)

// Driver records calls and tracks object lifetimes without a GL context.
// A shader whose source contains "syntax error" fails to compile, and
// every link fails while FailLink is set.
type Driver struct {
	Calls    []string
	Live     map[uint32]string
	Released map[uint32]int

	Sources  map[uint32]string
	Attached map[uint32][]uint32
	FailLink bool
	Current  uint32

	Locations map[string]int32
	Uniforms  map[int32]interface{}

	Bound     map[opengl.BufferTarget]uint32
	Data      map[uint32][]byte
	VAO       uint32
	Attribs   map[uint32]string
	Texture   uint32
	TexFormat opengl.PixelFormat
	Mipmaps   int

	ViewportRect [4]int32
	ClearRGBA    [4]float32
	Clears       int
	Draws        []string

	next     uint32
	compiled map[uint32]bool
}

var _ opengl.Driver = (*Driver)(nil)

func New() *Driver {
	return &Driver{
		Live:      make(map[uint32]string),
		Released:  make(map[uint32]int),
		Sources:   make(map[uint32]string),
		Attached:  make(map[uint32][]uint32),
		Locations: map[string]int32{"transform": 0, "tint": 1, "scale": 2, "tex": 3},
		Uniforms:  make(map[int32]interface{}),
		Bound:     make(map[opengl.BufferTarget]uint32),
		Data:      make(map[uint32][]byte),
		Attribs:   make(map[uint32]string),
		compiled:  make(map[uint32]bool),
	}
}

// Count returns how many recorded calls start with prefix.
func (d *Driver) Count(prefix string) int {
	n := 0
	for _, c := range d.Calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func (d *Driver) record(format string, args ...interface{}) {
	d.Calls = append(d.Calls, fmt.Sprintf(format, args...))
}

func (d *Driver) gen(kind string) uint32 {
	d.next++
	d.Live[d.next] = kind
	d.record("Gen %s %d", kind, d.next)
	return d.next
}

func (d *Driver) free(kind string, h uint32) {
	d.record("Delete %s %d", kind, h)
	if h == 0 {
		return
	}
	d.Released[h]++
	delete(d.Live, h)
}

func (d *Driver) CreateShader(kind opengl.ShaderKind) uint32 { return d.gen("shader") }

func (d *Driver) ShaderSource(shader uint32, src string) {
	d.record("ShaderSource %d", shader)
	d.Sources[shader] = src
}

func (d *Driver) CompileShader(shader uint32) {
	d.record("CompileShader %d", shader)
	d.compiled[shader] = !strings.Contains(d.Sources[shader], "syntax error")
}

func (d *Driver) ShaderCompiled(shader uint32) bool { return d.compiled[shader] }

func (d *Driver) ShaderInfoLog(shader uint32) string {
	return "0:1(1): error: syntax error, unexpected IDENTIFIER\n"
}

func (d *Driver) DeleteShader(shader uint32) { d.free("shader", shader) }

func (d *Driver) CreateProgram() uint32 { return d.gen("program") }

func (d *Driver) AttachShader(program, shader uint32) {
	d.record("AttachShader %d %d", program, shader)
	d.Attached[program] = append(d.Attached[program], shader)
}

func (d *Driver) DetachShader(program, shader uint32) {
	d.record("DetachShader %d %d", program, shader)
	kept := d.Attached[program][:0]
	for _, s := range d.Attached[program] {
		if s != shader {
			kept = append(kept, s)
		}
	}
	d.Attached[program] = kept
}

func (d *Driver) LinkProgram(program uint32) { d.record("LinkProgram %d", program) }

func (d *Driver) ProgramLinked(program uint32) bool { return !d.FailLink }

func (d *Driver) ProgramInfoLog(program uint32) string {
	return "error: vertex shader output not read by fragment shader\n"
}

func (d *Driver) UseProgram(program uint32) {
	d.record("UseProgram %d", program)
	d.Current = program
}

func (d *Driver) DeleteProgram(program uint32) { d.free("program", program) }

func (d *Driver) UniformLocation(program uint32, name string) int32 {
	d.record("UniformLocation %d %s", program, name)
	if loc, ok := d.Locations[name]; ok {
		return loc
	}
	return -1
}

func (d *Driver) Uniform1i(location int32, v int32)   { d.Uniforms[location] = v }
func (d *Driver) Uniform1f(location int32, v float32) { d.Uniforms[location] = v }

func (d *Driver) Uniform4f(location int32, x, y, z, w float32) {
	d.Uniforms[location] = [4]float32{x, y, z, w}
}

func (d *Driver) UniformMatrix4fv(location int32, data []float32) {
	d.Uniforms[location] = append([]float32(nil), data...)
}

func (d *Driver) GenBuffer() uint32 { return d.gen("buffer") }

func (d *Driver) BindBuffer(target opengl.BufferTarget, buffer uint32) {
	d.record("BindBuffer %s %d", target, buffer)
	d.Bound[target] = buffer
}

func (d *Driver) BufferData(target opengl.BufferTarget, data []byte, usage opengl.BufferUsage) {
	d.record("BufferData %s %d %s", target, len(data), usage)
	d.Data[d.Bound[target]] = append([]byte(nil), data...)
}

func (d *Driver) DeleteBuffer(buffer uint32) { d.free("buffer", buffer) }

func (d *Driver) GenVertexArray() uint32 { return d.gen("vao") }

func (d *Driver) BindVertexArray(vao uint32) {
	d.record("BindVertexArray %d", vao)
	d.VAO = vao
}

func (d *Driver) DeleteVertexArray(vao uint32) { d.free("vao", vao) }

func (d *Driver) EnableVertexAttribArray(index uint32) {
	d.record("EnableVertexAttribArray %d", index)
}

func (d *Driver) VertexAttribPointer(index uint32, size int32, typ opengl.DataType, normalized bool, stride int32, offset uintptr) {
	d.Attribs[index] = fmt.Sprintf("%d %s stride=%d offset=%d", size, typ, stride, offset)
}

func (d *Driver) GenTexture() uint32 { return d.gen("texture") }

func (d *Driver) ActiveTexture(unit uint32) { d.record("ActiveTexture %d", unit) }

func (d *Driver) BindTexture2D(texture uint32) {
	d.record("BindTexture2D %d", texture)
	d.Texture = texture
}

func (d *Driver) TexImage2D(width, height int32, format opengl.PixelFormat, pixels []byte) {
	d.record("TexImage2D %dx%d %s", width, height, format)
	d.TexFormat = format
}

func (d *Driver) TexFilter2D(min, mag opengl.TextureFilter) {}
func (d *Driver) TexWrap2D(s, t opengl.TextureWrap)         {}
func (d *Driver) GenerateMipmap2D()                         { d.Mipmaps++ }
func (d *Driver) UnpackAlignment(n int32)                   {}

func (d *Driver) DeleteTexture(texture uint32) { d.free("texture", texture) }

func (d *Driver) Viewport(x, y, width, height int32) {
	d.ViewportRect = [4]int32{x, y, width, height}
}

func (d *Driver) ClearColor(r, g, b, a float32) { d.ClearRGBA = [4]float32{r, g, b, a} }
func (d *Driver) Clear(mask opengl.ClearMask)   { d.Clears++ }

func (d *Driver) DrawArrays(mode opengl.Primitive, first, count int32) {
	d.Draws = append(d.Draws, fmt.Sprintf("arrays %s %d %d", mode, first, count))
}

func (d *Driver) DrawElements(mode opengl.Primitive, count int32, typ opengl.DataType, offset uintptr) {
	d.Draws = append(d.Draws, fmt.Sprintf("elements %s %d %s", mode, count, typ))
}
