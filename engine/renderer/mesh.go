package renderer

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/spaghettifunk/oglc/engine/renderer/opengl"
)

// Attribute places one vertex field at a shader input location.
type Attribute struct {
	Location uint32
	Size     int32
	Type     opengl.DataType
	Offset   uintptr
}

// Mesh is a vertex array with its vertex buffer and optional index buffer.
type Mesh struct {
	VAO       *opengl.VertexArray
	VBO       *opengl.Buffer
	EBO       *opengl.Buffer
	Count     int32
	Primitive opengl.Primitive
}

// NewMesh uploads vertices of type V, described by layout, and the optional
// indices. Count is the number of indices, or of vertices when there are
// none.
func NewMesh[V any](drv opengl.BufferDriver, vertices []V, indices []uint32, layout ...Attribute) (*Mesh, error) {
	if len(vertices) == 0 {
		return nil, errors.New("mesh has no vertices")
	}

	m := &Mesh{Primitive: opengl.Triangles}
	var err error
	if m.VAO, err = opengl.NewVertexArray(drv); err != nil {
		return nil, err
	}
	if m.VBO, err = opengl.NewBufferFrom(drv, opengl.ArrayBuffer, opengl.StaticDraw, vertices); err != nil {
		m.Close()
		return nil, err
	}

	stride := int32(unsafe.Sizeof(vertices[0]))
	for _, a := range layout {
		if err := m.VAO.Attrib(a.Location, a.Size, a.Type, stride, a.Offset); err != nil {
			m.Close()
			return nil, fmt.Errorf("attribute %d: %w", a.Location, err)
		}
	}

	m.Count = int32(len(vertices))
	if len(indices) > 0 {
		// bound while the vertex array is, so the array records it
		if m.EBO, err = opengl.NewBufferFrom(drv, opengl.ElementArrayBuffer, opengl.StaticDraw, indices); err != nil {
			m.Close()
			return nil, err
		}
		m.Count = int32(len(indices))
	}
	m.VAO.Unbind()
	return m, nil
}

// Close releases the vertex array and both buffers.
func (m *Mesh) Close() error {
	if m.EBO != nil {
		m.EBO.Close()
	}
	if m.VBO != nil {
		m.VBO.Close()
	}
	if m.VAO != nil {
		m.VAO.Close()
	}
	return nil
}
