package opengl

import (
	"bytes"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spaghettifunk/oglc/engine/core"
)

// Shader owns one compiled shader object. A Shader is either the zero
// value, holding nothing, or holds an object that compiled successfully.
// It must not be copied; use Move to hand it to a new owner.
type Shader struct {
	resource
	kind ShaderKind
}

// ShaderFromString compiles src as a shader of the given kind.
func ShaderFromString(drv ShaderDriver, kind ShaderKind, src string) (*Shader, error) {
	return compileShader(drv, kind, src)
}

// ShaderFromCString compiles a NUL-terminated source, the form the go-gl
// bindings use for string constants. Anything after the first NUL is ignored.
func ShaderFromCString(drv ShaderDriver, kind ShaderKind, cstr string) (*Shader, error) {
	if i := strings.IndexByte(cstr, 0); i >= 0 {
		cstr = cstr[:i]
	}
	return compileShader(drv, kind, cstr)
}

// ShaderFromBytes compiles an externally supplied byte range, usually an
// embedded file.
func ShaderFromBytes(drv ShaderDriver, kind ShaderKind, src []byte) (*Shader, error) {
	if i := bytes.IndexByte(src, 0); i >= 0 {
		src = src[:i]
	}
	return compileShader(drv, kind, string(src))
}

// ShaderFromResource reads path from fsys and compiles it.
func ShaderFromResource(drv ShaderDriver, kind ShaderKind, fsys fs.FS, path string) (*Shader, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %s", core.ErrUnknownShaderKind, kind)
	}
	src, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read shader %q: %w", path, err)
	}
	s, err := ShaderFromBytes(drv, kind, src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func compileShader(drv ShaderDriver, kind ShaderKind, src string) (*Shader, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %s", core.ErrUnknownShaderKind, kind)
	}

	handle := drv.CreateShader(kind)
	if handle == 0 {
		return nil, fmt.Errorf("create %s shader: %w", kind, core.ErrUnknown)
	}

	drv.ShaderSource(handle, src)
	drv.CompileShader(handle)

	if !drv.ShaderCompiled(handle) {
		info := drv.ShaderInfoLog(handle)
		core.LogError("failed to compile %s shader %d:\n%s", kind, handle, info)
		// nothing owns the object past this point
		drv.DeleteShader(handle)
		return nil, &CompileError{Kind: kind, Log: info}
	}

	s := &Shader{kind: kind}
	s.own(handle, drv.DeleteShader)
	return s, nil
}

func (s *Shader) Kind() ShaderKind {
	return s.kind
}

// Move transfers ownership to a new Shader and leaves s as the sentinel.
func (s *Shader) Move() *Shader {
	out := &Shader{kind: s.kind}
	s.moveTo(&out.resource)
	return out
}
