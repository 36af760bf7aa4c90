package platform

import (
	"fmt"
	"math"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/spaghettifunk/oglc/engine/core"
)

func init() {
	// GLFW event handling and the GL context must stay on the main OS thread
	runtime.LockOSThread()
}

type Platform struct {
	Window    *glfw.Window
	startTime float64
}

func New() (*Platform, error) {
	return &Platform{
		Window: nil,
	}, nil
}

// Startup opens the window and makes its OpenGL core context current on
// the calling thread.
func (p *Platform) Startup(cfg *core.Config) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.Resizable, hint(cfg.Window.Resizable))
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GL.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GL.Minor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	// required on macOS for anything newer than 2.1
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("%w: %s", core.ErrWindowCreate, err)
	}
	window.MakeContextCurrent()
	if cfg.Window.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	p.Window = window

	p.Window.SetKeyCallback(keyCallback)
	p.Window.SetMouseButtonCallback(mouseButtonCallback)
	p.Window.SetCursorPosCallback(cursorPosCallback)
	p.Window.SetScrollCallback(scrollCallback)
	p.Window.SetFramebufferSizeCallback(framebufferSizeCallback)
	p.Window.SetPos(cfg.Window.X, cfg.Window.Y)
	p.Window.Show()

	p.startTime = glfw.GetTime()
	core.LogInfo("created %dx%d window %q with an OpenGL %d.%d core context",
		cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, cfg.GL.Major, cfg.GL.Minor)
	return nil
}

func (p *Platform) Shutdown() error {
	if p.Window != nil {
		p.Window.Destroy()
		p.Window = nil
	}
	glfw.Terminate()
	return nil
}

func (p *Platform) ShouldClose() bool {
	return p.Window.ShouldClose()
}

func (p *Platform) SetShouldClose(v bool) {
	p.Window.SetShouldClose(v)
}

func (p *Platform) SwapBuffers() {
	p.Window.SwapBuffers()
}

// PumpMessages polls GLFW. Callbacks run from inside this call.
func (p *Platform) PumpMessages() {
	glfw.PollEvents()
}

// FramebufferSize is in pixels, which differs from the window size on
// high-DPI displays.
func (p *Platform) FramebufferSize() (int, int) {
	return p.Window.GetFramebufferSize()
}

// GetAbsoluteTime returns seconds since Startup.
func (p *Platform) GetAbsoluteTime() float64 {
	return glfw.GetTime() - p.startTime
}

func hint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

var keys = map[glfw.Key]core.KeyCode{
	glfw.KeyBackspace:    core.KEY_BACKSPACE,
	glfw.KeyTab:          core.KEY_TAB,
	glfw.KeyEnter:        core.KEY_ENTER,
	glfw.KeyEscape:       core.KEY_ESCAPE,
	glfw.KeySpace:        core.KEY_SPACE,
	glfw.KeyLeft:         core.KEY_LEFT,
	glfw.KeyUp:           core.KEY_UP,
	glfw.KeyRight:        core.KEY_RIGHT,
	glfw.KeyDown:         core.KEY_DOWN,
	glfw.KeyF1:           core.KEY_F1,
	glfw.KeyF12:          core.KEY_F12,
	glfw.KeyLeftShift:    core.KEY_LSHIFT,
	glfw.KeyRightShift:   core.KEY_RSHIFT,
	glfw.KeyLeftControl:  core.KEY_LCONTROL,
	glfw.KeyRightControl: core.KEY_RCONTROL,
}

func translateKey(key glfw.Key) core.KeyCode {
	// GLFW letters and digits are their ASCII values, like ours
	if (key >= glfw.KeyA && key <= glfw.KeyZ) || (key >= glfw.Key0 && key <= glfw.Key9) {
		return core.KeyCode(key)
	}
	if k, ok := keys[key]; ok {
		return k
	}
	return core.KEY_UNKNOWN
}

func keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Repeat {
		return
	}
	k := translateKey(key)
	if k == core.KEY_UNKNOWN {
		return
	}
	if err := core.InputProcessKey(k, action == glfw.Press); err != nil {
		core.LogWarn("dropped key event: %s", err)
	}
}

func mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	var b core.Button
	switch button {
	case glfw.MouseButtonLeft:
		b = core.BUTTON_LEFT
	case glfw.MouseButtonRight:
		b = core.BUTTON_RIGHT
	case glfw.MouseButtonMiddle:
		b = core.BUTTON_MIDDLE
	default:
		return
	}
	if err := core.InputProcessButton(b, action == glfw.Press); err != nil {
		core.LogWarn("dropped mouse button event: %s", err)
	}
}

func cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	x := uint16(math.Max(0, math.Min(xpos, math.MaxUint16)))
	y := uint16(math.Max(0, math.Min(ypos, math.MaxUint16)))
	if err := core.InputProcessMouseMove(x, y); err != nil {
		core.LogWarn("dropped mouse move event: %s", err)
	}
}

func scrollCallback(w *glfw.Window, xoff, yoff float64) {
	if yoff == 0 {
		return
	}
	var z int8 = 1
	if yoff < 0 {
		z = -1
	}
	core.EventPost(core.EventContext{
		Type: core.EVENT_CODE_MOUSE_WHEEL,
		Data: &core.MouseEvent{Scroll: z},
	})
}

func framebufferSizeCallback(w *glfw.Window, width, height int) {
	core.EventPost(core.EventContext{
		Type: core.EVENT_CODE_RESIZED,
		Data: &core.SystemEvent{WindowWidth: uint32(width), WindowHeight: uint32(height)},
	})
}
