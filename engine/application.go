package engine

import (
	"github.com/spaghettifunk/oglc/engine/assets"
	"github.com/spaghettifunk/oglc/engine/renderer"
	"github.com/spaghettifunk/oglc/engine/renderer/opengl"
	"github.com/spaghettifunk/oglc/engine/systems"
)

// Window is what the frame loop needs from the windowing layer.
type Window interface {
	ShouldClose() bool
	SetShouldClose(v bool)
	SwapBuffers()
	PumpMessages()
	FramebufferSize() (int, int)
	GetAbsoluteTime() float64
	Shutdown() error
}

// Systems are the engine services a game uses to draw and load assets.
type Systems struct {
	Driver   opengl.Driver
	Renderer *renderer.Renderer
	Assets   *assets.AssetManager
	Window   Window
	// Jobs runs work off the graphics thread. Callbacks come back during
	// the frame, before FnUpdate.
	Jobs *systems.JobSystem
}
