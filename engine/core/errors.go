package core

import (
	"errors"
)

var (
	ErrShaderCompile     = errors.New("shader compilation failed")
	ErrShaderNotReady    = errors.New("some shaders have not been loaded yet")
	ErrProgramLink       = errors.New("shader program link failed")
	ErrHandleNotAssigned = errors.New("handle is not assigned to any object")
	ErrUnknownShaderKind = errors.New("unknown shader kind")
	ErrImageDecode       = errors.New("failed to decode image")
	ErrAssetNotFound     = errors.New("asset not found")
	ErrNoLoader          = errors.New("no loader registered for resource type")
	ErrWindowCreate      = errors.New("failed to create window")
	ErrInvalidConfig     = errors.New("invalid configuration")
	ErrUnknown           = errors.New("unknown")
)
