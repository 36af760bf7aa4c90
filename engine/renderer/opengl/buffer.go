package opengl

import (
	"unsafe"

	"github.com/spaghettifunk/oglc/engine/core"
)

// Buffer owns one buffer object. It must not be copied.
type Buffer struct {
	resource
	drv    BufferDriver
	target BufferTarget
	size   int
}

// NewBuffer creates a buffer, uploads data and leaves it bound to target.
// An element buffer created while a vertex array is bound is recorded by
// that vertex array.
func NewBuffer(drv BufferDriver, target BufferTarget, usage BufferUsage, data []byte) (*Buffer, error) {
	handle := drv.GenBuffer()
	if handle == 0 {
		return nil, core.ErrUnknown
	}
	drv.BindBuffer(target, handle)
	drv.BufferData(target, data, usage)

	b := &Buffer{drv: drv, target: target, size: len(data)}
	b.own(handle, drv.DeleteBuffer)
	return b, nil
}

// NewBufferFrom uploads a slice of plain values, vertices or indices,
// with their in-memory layout.
func NewBufferFrom[T any](drv BufferDriver, target BufferTarget, usage BufferUsage, data []T) (*Buffer, error) {
	return NewBuffer(drv, target, usage, bytesOf(data))
}

func bytesOf[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	size := int(unsafe.Sizeof(data[0])) * len(data)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), size)
}

func (b *Buffer) Bind() error {
	if !b.Ready() {
		return core.ErrHandleNotAssigned
	}
	b.drv.BindBuffer(b.target, b.handle)
	return nil
}

// Size is the byte length of the last upload.
func (b *Buffer) Size() int {
	return b.size
}

func (b *Buffer) Target() BufferTarget {
	return b.target
}

// Move transfers ownership to a new Buffer and leaves b as the sentinel.
func (b *Buffer) Move() *Buffer {
	out := &Buffer{drv: b.drv, target: b.target, size: b.size}
	b.moveTo(&out.resource)
	b.size = 0
	return out
}
