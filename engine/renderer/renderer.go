package renderer

import (
	"fmt"

	"github.com/spaghettifunk/oglc/engine/core"
	"github.com/spaghettifunk/oglc/engine/renderer/opengl"
)

// Renderer owns the per-frame framebuffer state: viewport and clear colour.
type Renderer struct {
	backend    opengl.DrawDriver
	clearColor [4]float32
	width      int32
	height     int32
	frames     uint64
}

func New(backend opengl.DrawDriver, cfg core.RenderConfig) *Renderer {
	return &Renderer{
		backend:    backend,
		clearColor: cfg.ClearColor,
	}
}

// OnResize matches the viewport to a new framebuffer size.
func (r *Renderer) OnResize(width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("invalid framebuffer size %dx%d", width, height)
	}
	r.width, r.height = int32(width), int32(height)
	r.backend.Viewport(0, 0, r.width, r.height)
	core.LogDebug("viewport resized to %dx%d", width, height)
	return nil
}

func (r *Renderer) Size() (int, int) {
	return int(r.width), int(r.height)
}

func (r *Renderer) SetClearColor(c [4]float32) {
	r.clearColor = c
}

// BeginFrame clears the colour buffer.
func (r *Renderer) BeginFrame() {
	c := r.clearColor
	r.backend.ClearColor(c[0], c[1], c[2], c[3])
	r.backend.Clear(opengl.ClearColor)
	r.frames++
}

// Draw issues the draw call for m with its vertex array bound.
func (r *Renderer) Draw(m *Mesh) error {
	if err := m.VAO.Bind(); err != nil {
		return fmt.Errorf("draw mesh: %w", err)
	}
	if m.EBO != nil {
		r.backend.DrawElements(m.Primitive, m.Count, opengl.Uint32, 0)
	} else {
		r.backend.DrawArrays(m.Primitive, 0, m.Count)
	}
	return nil
}

// Frames is the number of frames begun so far.
func (r *Renderer) Frames() uint64 {
	return r.frames
}
