package components

import (
	"github.com/spaghettifunk/oglc/engine/math"
)

/**
 * @brief An orthographic camera looking down the negative z axis. The
 * visible area is Zoom units high and keeps the framebuffer aspect ratio,
 * so resizing the window does not stretch the picture.
 */
type Camera struct {
	/**
	 * @brief The point the camera is centered on.
	 * NOTE: Do not set this directly, use SetPosition() instead
	 * so the view matrix is recalculated when needed.
	 */
	Position math.Vec2
	/** @brief Height of the visible area in world units. */
	Zoom float32
	/** @brief Framebuffer width divided by height. */
	Aspect float32
	/** @brief Internal flag used to determine when the matrix needs to be rebuilt. */
	IsDirty bool
	/**
	 * @brief Projection times view.
	 * NOTE: IMPORTANT: Do not get this directly, use ViewProjection() instead.
	 */
	ViewProjectionMatrix math.Mat4
}

const (
	MinZoom float32 = 0.1
	MaxZoom float32 = 100
)

func NewCamera() *Camera {
	camera := &Camera{}
	camera.Reset()
	return camera
}

func (c *Camera) Reset() {
	c.Position = math.NewVec2[float32](0, 0)
	c.Zoom = 2
	c.Aspect = 1
	c.ViewProjectionMatrix = math.Identity[float32, math.D4]()
	c.IsDirty = true
}

func (c *Camera) GetPosition() math.Vec2 {
	return c.Position
}

func (c *Camera) SetPosition(position math.Vec2) {
	c.Position = position
	c.IsDirty = true
}

// SetViewport adapts the aspect ratio to a framebuffer size. A zero height,
// as reported for minimized windows, is ignored.
func (c *Camera) SetViewport(width, height uint32) {
	if width == 0 || height == 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
	c.IsDirty = true
}

func (c *Camera) SetZoom(zoom float32) {
	c.Zoom = math.Clamp(zoom, MinZoom, MaxZoom)
	c.IsDirty = true
}

func (c *Camera) ViewProjection() math.Mat4 {
	if c.IsDirty {
		halfH := c.Zoom / 2
		halfW := halfH * c.Aspect
		projection := math.Orthographic(-halfW, halfW, -halfH, halfH, -1, 1)
		view := math.Translation(math.NewVec3(-c.Position.X(), -c.Position.Y(), 0))
		c.ViewProjectionMatrix = math.Mul(projection, view)
		c.IsDirty = false
	}
	return c.ViewProjectionMatrix
}

func (c *Camera) MoveLeft(amount float32) {
	c.move(-amount, 0)
}

func (c *Camera) MoveRight(amount float32) {
	c.move(amount, 0)
}

func (c *Camera) MoveUp(amount float32) {
	c.move(0, amount)
}

func (c *Camera) MoveDown(amount float32) {
	c.move(0, -amount)
}

func (c *Camera) move(dx, dy float32) {
	c.Position = c.Position.Add(math.NewVec2(dx, dy))
	c.IsDirty = true
}
