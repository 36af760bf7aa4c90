package opengl

import "fmt"

// ShaderKind is the pipeline stage a shader object compiles for.
type ShaderKind int

const (
	VertexShader ShaderKind = iota + 1
	FragmentShader
	GeometryShader
)

func (k ShaderKind) Valid() bool {
	return k >= VertexShader && k <= GeometryShader
}

func (k ShaderKind) String() string {
	switch k {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	case GeometryShader:
		return "geometry"
	}
	return fmt.Sprintf("ShaderKind(%d)", int(k))
}

type BufferTarget int

const (
	ArrayBuffer BufferTarget = iota
	ElementArrayBuffer
	UniformBuffer
)

func (t BufferTarget) String() string {
	switch t {
	case ArrayBuffer:
		return "array"
	case ElementArrayBuffer:
		return "element_array"
	case UniformBuffer:
		return "uniform"
	}
	return fmt.Sprintf("BufferTarget(%d)", int(t))
}

type BufferUsage int

const (
	StaticDraw BufferUsage = iota
	DynamicDraw
	StreamDraw
)

func (u BufferUsage) String() string {
	switch u {
	case StaticDraw:
		return "static_draw"
	case DynamicDraw:
		return "dynamic_draw"
	case StreamDraw:
		return "stream_draw"
	}
	return fmt.Sprintf("BufferUsage(%d)", int(u))
}

// DataType names the scalar type of vertex attributes and index buffers.
type DataType int

const (
	Float32 DataType = iota
	Int32
	Uint32
	Uint16
	Uint8
)

// Size returns the byte size of one scalar.
func (t DataType) Size() int {
	switch t {
	case Float32, Int32, Uint32:
		return 4
	case Uint16:
		return 2
	case Uint8:
		return 1
	}
	return 0
}

func (t DataType) String() string {
	switch t {
	case Float32:
		return "float32"
	case Int32:
		return "int32"
	case Uint32:
		return "uint32"
	case Uint16:
		return "uint16"
	case Uint8:
		return "uint8"
	}
	return fmt.Sprintf("DataType(%d)", int(t))
}

// PixelFormat is the layout of 8-bit texture data.
type PixelFormat int

const (
	Red PixelFormat = iota
	RG
	RGB
	RGBA
)

// PixelFormatForChannels maps a decoded image channel count to a format.
func PixelFormatForChannels(channels int) (PixelFormat, bool) {
	switch channels {
	case 1:
		return Red, true
	case 2:
		return RG, true
	case 3:
		return RGB, true
	case 4:
		return RGBA, true
	}
	return 0, false
}

func (f PixelFormat) Channels() int {
	return int(f) + 1
}

func (f PixelFormat) String() string {
	switch f {
	case Red:
		return "red"
	case RG:
		return "rg"
	case RGB:
		return "rgb"
	case RGBA:
		return "rgba"
	}
	return fmt.Sprintf("PixelFormat(%d)", int(f))
}

type Primitive int

const (
	Triangles Primitive = iota
	TriangleStrip
	TriangleFan
	Lines
	LineStrip
	Points
)

func (p Primitive) String() string {
	switch p {
	case Triangles:
		return "triangles"
	case TriangleStrip:
		return "triangle_strip"
	case TriangleFan:
		return "triangle_fan"
	case Lines:
		return "lines"
	case LineStrip:
		return "line_strip"
	case Points:
		return "points"
	}
	return fmt.Sprintf("Primitive(%d)", int(p))
}

// ClearMask selects the framebuffer planes Clear resets.
type ClearMask uint8

const (
	ClearColor ClearMask = 1 << iota
	ClearDepth
	ClearStencil
)

type TextureFilter int

const (
	FilterLinear TextureFilter = iota
	FilterNearest
	FilterLinearMipmapLinear
	FilterNearestMipmapNearest
)

// UsesMipmaps reports whether a minifying filter samples mipmap levels.
func (f TextureFilter) UsesMipmaps() bool {
	return f == FilterLinearMipmapLinear || f == FilterNearestMipmapNearest
}

type TextureWrap int

const (
	WrapRepeat TextureWrap = iota
	WrapMirroredRepeat
	WrapClampToEdge
)

// ShaderDriver covers shader and program objects plus uniforms.
type ShaderDriver interface {
	CreateShader(kind ShaderKind) uint32
	ShaderSource(shader uint32, src string)
	CompileShader(shader uint32)
	ShaderCompiled(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	ProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	// UniformLocation returns -1 for names the linker removed or never saw.
	UniformLocation(program uint32, name string) int32
	Uniform1i(location int32, v int32)
	Uniform1f(location int32, v float32)
	Uniform4f(location int32, x, y, z, w float32)
	UniformMatrix4fv(location int32, data []float32)
}

// BufferDriver covers buffer and vertex array objects.
type BufferDriver interface {
	GenBuffer() uint32
	BindBuffer(target BufferTarget, buffer uint32)
	BufferData(target BufferTarget, data []byte, usage BufferUsage)
	DeleteBuffer(buffer uint32)

	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)
	EnableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, typ DataType, normalized bool, stride int32, offset uintptr)
}

// TextureDriver covers 2D texture objects.
type TextureDriver interface {
	GenTexture() uint32
	ActiveTexture(unit uint32)
	BindTexture2D(texture uint32)
	TexImage2D(width, height int32, format PixelFormat, pixels []byte)
	TexFilter2D(min, mag TextureFilter)
	TexWrap2D(s, t TextureWrap)
	GenerateMipmap2D()
	UnpackAlignment(n int32)
	DeleteTexture(texture uint32)
}

// DrawDriver covers framebuffer state and draw calls.
type DrawDriver interface {
	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(mask ClearMask)
	DrawArrays(mode Primitive, first, count int32)
	DrawElements(mode Primitive, count int32, typ DataType, offset uintptr)
}

// Driver is the full graphics-driver surface. Every call assumes a context
// is current on the calling thread.
type Driver interface {
	ShaderDriver
	BufferDriver
	TextureDriver
	DrawDriver
}
