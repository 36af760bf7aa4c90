package opengl

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spaghettifunk/oglc/engine/core"
)

var ErrTextureFormat = errors.New("unsupported texture data")

// CompileError carries the driver's info log for a rejected shader.
type CompileError struct {
	Kind ShaderKind
	Log  string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader: %v: %s", e.Kind, core.ErrShaderCompile, strings.TrimSpace(e.Log))
}

func (e *CompileError) Unwrap() error {
	return core.ErrShaderCompile
}

// LinkError carries the driver's info log for a program that failed to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("%v: %s", core.ErrProgramLink, strings.TrimSpace(e.Log))
}

func (e *LinkError) Unwrap() error {
	return core.ErrProgramLink
}
