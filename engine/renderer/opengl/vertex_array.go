package opengl

import (
	"github.com/spaghettifunk/oglc/engine/core"
)

// VertexArray owns one vertex array object, which records the attribute
// layout and the bound element buffer.
type VertexArray struct {
	resource
	drv BufferDriver
}

// NewVertexArray creates a vertex array and binds it.
func NewVertexArray(drv BufferDriver) (*VertexArray, error) {
	handle := drv.GenVertexArray()
	if handle == 0 {
		return nil, core.ErrUnknown
	}
	drv.BindVertexArray(handle)

	v := &VertexArray{drv: drv}
	v.own(handle, drv.DeleteVertexArray)
	return v, nil
}

func (v *VertexArray) Bind() error {
	if !v.Ready() {
		return core.ErrHandleNotAssigned
	}
	v.drv.BindVertexArray(v.handle)
	return nil
}

func (v *VertexArray) Unbind() {
	v.drv.BindVertexArray(0)
}

// Attrib describes attribute index as size values of typ, read from the
// currently bound array buffer every stride bytes starting at offset, and
// enables it. v must be bound.
func (v *VertexArray) Attrib(index uint32, size int32, typ DataType, stride int32, offset uintptr) error {
	if !v.Ready() {
		return core.ErrHandleNotAssigned
	}
	v.drv.VertexAttribPointer(index, size, typ, false, stride, offset)
	v.drv.EnableVertexAttribArray(index)
	return nil
}

// Move transfers ownership to a new VertexArray and leaves v as the
// sentinel.
func (v *VertexArray) Move() *VertexArray {
	out := &VertexArray{drv: v.drv}
	v.moveTo(&out.resource)
	return out
}
