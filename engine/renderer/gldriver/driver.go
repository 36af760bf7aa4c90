// Package gldriver implements opengl.Driver on top of the go-gl 3.3 core
// bindings. Every method must run on the thread that owns the current
// context.
package gldriver

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/spaghettifunk/oglc/engine/core"
	"github.com/spaghettifunk/oglc/engine/renderer/opengl"
)

type Driver struct {
	version  string
	renderer string
}

var _ opengl.Driver = (*Driver)(nil)

// New loads the GL function pointers. A context must already be current.
func New() (*Driver, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("initialize OpenGL bindings: %w", err)
	}
	d := &Driver{
		version:  gl.GoStr(gl.GetString(gl.VERSION)),
		renderer: gl.GoStr(gl.GetString(gl.RENDERER)),
	}
	return d, nil
}

// Version is the GL_VERSION string reported by the context.
func (d *Driver) Version() string { return d.version }

// Renderer names the device behind the context.
func (d *Driver) Renderer() string { return d.renderer }

var glShaders = map[opengl.ShaderKind]uint32{
	opengl.VertexShader:   gl.VERTEX_SHADER,
	opengl.FragmentShader: gl.FRAGMENT_SHADER,
	opengl.GeometryShader: gl.GEOMETRY_SHADER,
}

var glBufferTargets = map[opengl.BufferTarget]uint32{
	opengl.ArrayBuffer:        gl.ARRAY_BUFFER,
	opengl.ElementArrayBuffer: gl.ELEMENT_ARRAY_BUFFER,
	opengl.UniformBuffer:      gl.UNIFORM_BUFFER,
}

var glBufferUsages = map[opengl.BufferUsage]uint32{
	opengl.StaticDraw:  gl.STATIC_DRAW,
	opengl.DynamicDraw: gl.DYNAMIC_DRAW,
	opengl.StreamDraw:  gl.STREAM_DRAW,
}

var glTypes = map[opengl.DataType]uint32{
	opengl.Float32: gl.FLOAT,
	opengl.Int32:   gl.INT,
	opengl.Uint32:  gl.UNSIGNED_INT,
	opengl.Uint16:  gl.UNSIGNED_SHORT,
	opengl.Uint8:   gl.UNSIGNED_BYTE,
}

var glFormats = map[opengl.PixelFormat]uint32{
	opengl.Red:  gl.RED,
	opengl.RG:   gl.RG,
	opengl.RGB:  gl.RGB,
	opengl.RGBA: gl.RGBA,
}

var glPrimitives = map[opengl.Primitive]uint32{
	opengl.Triangles:     gl.TRIANGLES,
	opengl.TriangleStrip: gl.TRIANGLE_STRIP,
	opengl.TriangleFan:   gl.TRIANGLE_FAN,
	opengl.Lines:         gl.LINES,
	opengl.LineStrip:     gl.LINE_STRIP,
	opengl.Points:        gl.POINTS,
}

var glFilters = map[opengl.TextureFilter]int32{
	opengl.FilterLinear:               gl.LINEAR,
	opengl.FilterNearest:              gl.NEAREST,
	opengl.FilterLinearMipmapLinear:   gl.LINEAR_MIPMAP_LINEAR,
	opengl.FilterNearestMipmapNearest: gl.NEAREST_MIPMAP_NEAREST,
}

var glWraps = map[opengl.TextureWrap]int32{
	opengl.WrapRepeat:         gl.REPEAT,
	opengl.WrapMirroredRepeat: gl.MIRRORED_REPEAT,
	opengl.WrapClampToEdge:    gl.CLAMP_TO_EDGE,
}

/* Shaders and programs */

func (d *Driver) CreateShader(kind opengl.ShaderKind) uint32 {
	return gl.CreateShader(glShaders[kind])
}

func (d *Driver) ShaderSource(shader uint32, src string) {
	csources, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (d *Driver) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (d *Driver) ShaderCompiled(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status == gl.TRUE
}

func (d *Driver) ShaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	msg := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(msg))
	return strings.TrimRight(msg, "\x00")
}

func (d *Driver) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (d *Driver) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (d *Driver) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (d *Driver) DetachShader(program, shader uint32) {
	gl.DetachShader(program, shader)
}

func (d *Driver) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (d *Driver) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status == gl.TRUE
}

func (d *Driver) ProgramInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	msg := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(msg))
	return strings.TrimRight(msg, "\x00")
}

func (d *Driver) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (d *Driver) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (d *Driver) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (d *Driver) Uniform1i(location int32, v int32) {
	gl.Uniform1i(location, v)
}

func (d *Driver) Uniform1f(location int32, v float32) {
	gl.Uniform1f(location, v)
}

func (d *Driver) Uniform4f(location int32, x, y, z, w float32) {
	gl.Uniform4f(location, x, y, z, w)
}

// UniformMatrix4fv uploads one column-major 4x4 matrix.
func (d *Driver) UniformMatrix4fv(location int32, data []float32) {
	if len(data) < 16 {
		core.LogWarn("uniform matrix at %d needs 16 floats, got %d", location, len(data))
		return
	}
	gl.UniformMatrix4fv(location, 1, false, &data[0])
}

/* Buffers and vertex arrays */

func (d *Driver) GenBuffer() uint32 {
	var buffer uint32
	gl.GenBuffers(1, &buffer)
	return buffer
}

func (d *Driver) BindBuffer(target opengl.BufferTarget, buffer uint32) {
	gl.BindBuffer(glBufferTargets[target], buffer)
}

func (d *Driver) BufferData(target opengl.BufferTarget, data []byte, usage opengl.BufferUsage) {
	if len(data) == 0 {
		gl.BufferData(glBufferTargets[target], 0, nil, glBufferUsages[usage])
		return
	}
	gl.BufferData(glBufferTargets[target], len(data), gl.Ptr(data), glBufferUsages[usage])
}

func (d *Driver) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

func (d *Driver) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (d *Driver) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

func (d *Driver) DeleteVertexArray(vao uint32) {
	gl.DeleteVertexArrays(1, &vao)
}

func (d *Driver) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (d *Driver) VertexAttribPointer(index uint32, size int32, typ opengl.DataType, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, glTypes[typ], normalized, stride, offset)
}

/* Textures */

func (d *Driver) GenTexture() uint32 {
	var texture uint32
	gl.GenTextures(1, &texture)
	return texture
}

func (d *Driver) ActiveTexture(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
}

func (d *Driver) BindTexture2D(texture uint32) {
	gl.BindTexture(gl.TEXTURE_2D, texture)
}

func (d *Driver) TexImage2D(width, height int32, format opengl.PixelFormat, pixels []byte) {
	f := glFormats[format]
	gl.TexImage2D(gl.TEXTURE_2D, 0, int32(f), width, height, 0, f, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
}

func (d *Driver) TexFilter2D(min, mag opengl.TextureFilter) {
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, glFilters[min])
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, glFilters[mag])
}

func (d *Driver) TexWrap2D(s, t opengl.TextureWrap) {
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, glWraps[s])
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, glWraps[t])
}

func (d *Driver) GenerateMipmap2D() {
	gl.GenerateMipmap(gl.TEXTURE_2D)
}

func (d *Driver) UnpackAlignment(n int32) {
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, n)
}

func (d *Driver) DeleteTexture(texture uint32) {
	gl.DeleteTextures(1, &texture)
}

/* Framebuffer and draw calls */

func (d *Driver) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (d *Driver) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (d *Driver) Clear(mask opengl.ClearMask) {
	var bits uint32
	if mask&opengl.ClearColor != 0 {
		bits |= gl.COLOR_BUFFER_BIT
	}
	if mask&opengl.ClearDepth != 0 {
		bits |= gl.DEPTH_BUFFER_BIT
	}
	if mask&opengl.ClearStencil != 0 {
		bits |= gl.STENCIL_BUFFER_BIT
	}
	gl.Clear(bits)
}

func (d *Driver) DrawArrays(mode opengl.Primitive, first, count int32) {
	gl.DrawArrays(glPrimitives[mode], first, count)
}

func (d *Driver) DrawElements(mode opengl.Primitive, count int32, typ opengl.DataType, offset uintptr) {
	gl.DrawElementsWithOffset(glPrimitives[mode], count, glTypes[typ], offset)
}
