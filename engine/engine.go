package engine

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"runtime"

	"github.com/spaghettifunk/oglc/engine/assets"
	"github.com/spaghettifunk/oglc/engine/core"
	"github.com/spaghettifunk/oglc/engine/renderer"
	"github.com/spaghettifunk/oglc/engine/renderer/opengl"
	"github.com/spaghettifunk/oglc/engine/systems"
)

const (
	maxJobWorkers = 4
	jobQueueSize  = 64
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
	// Engine released everything it owned
	EngineStageShutdown
)

func (s Stage) String() string {
	switch s {
	case EngineStageUninitialized:
		return "uninitialized"
	case EngineStageInitializing:
		return "initializing"
	case EngineStageInitialized:
		return "initialized"
	case EngineStageRunning:
		return "running"
	case EngineStageShuttingDown:
		return "shutting down"
	case EngineStageShutdown:
		return "shutdown"
	}
	return fmt.Sprintf("stage(%d)", uint8(s))
}

// WindowFactory opens the window and makes its context current.
type WindowFactory func(cfg *core.Config) (Window, error)

// DriverFactory loads the graphics bindings once a context is current.
type DriverFactory func() (opengl.Driver, error)

type Option func(*Engine)

func WithWindow(fn WindowFactory) Option {
	return func(e *Engine) { e.newWindow = fn }
}

func WithDriver(fn DriverFactory) Option {
	return func(e *Engine) { e.newDriver = fn }
}

// WithResources sets the file system assets are served from when the
// configuration names no asset directory.
func WithResources(fsys fs.FS) Option {
	return func(e *Engine) { e.resources = fsys }
}

type Engine struct {
	currentStage Stage
	gameInstance *Game
	isRunning    bool
	isSuspended  bool
	window       Window
	driver       opengl.Driver
	renderer     *renderer.Renderer
	assetManager *assets.AssetManager
	jobSystem    *systems.JobSystem
	width        uint32
	height       uint32
	clock        *core.Clock
	lastTime     float64

	newWindow WindowFactory
	newDriver DriverFactory
	resources fs.FS
}

func New(g *Game, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, errors.New("engine needs a game instance")
	}
	if g.Config == nil {
		g.Config = core.DefaultConfig()
	}
	if err := g.Config.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		currentStage: EngineStageUninitialized,
		gameInstance: g,
		clock:        core.NewClock(),
		isRunning:    true,
		isSuspended:  false,
		width:        uint32(g.Config.Window.Width),
		height:       uint32(g.Config.Window.Height),
		lastTime:     0,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.newWindow == nil || e.newDriver == nil {
		return nil, errors.New("engine needs a window and a driver factory")
	}
	return e, nil
}

func (e *Engine) Stage() Stage {
	return e.currentStage
}

// Initialize brings up every subsystem in dependency order and then runs
// the game's initialization. On error the caller still has to call
// Shutdown to release what was created.
func (e *Engine) Initialize() error {
	if e.currentStage != EngineStageUninitialized {
		return fmt.Errorf("cannot initialize engine in stage %s", e.currentStage)
	}
	e.currentStage = EngineStageInitializing
	cfg := e.gameInstance.Config

	if err := core.LogSetLevel(cfg.Log.Level); err != nil {
		return err
	}

	// initialize input
	if err := core.InputInitialize(); err != nil {
		return err
	}

	// initialize events
	if !core.EventSystemInitialize() {
		return fmt.Errorf("failed to initialize the event system")
	}

	// register some events
	core.EventRegister(core.EVENT_CODE_APPLICATION_QUIT, e, e.onEvent)
	core.EventRegister(core.EVENT_CODE_KEY_PRESSED, e, e.onKey)
	core.EventRegister(core.EVENT_CODE_KEY_RELEASED, e, e.onKey)
	core.EventRegister(core.EVENT_CODE_RESIZED, e, e.onResized)

	window, err := e.newWindow(cfg)
	if err != nil {
		return err
	}
	e.window = window

	driver, err := e.newDriver()
	if err != nil {
		return err
	}
	e.driver = driver

	e.renderer = renderer.New(driver, cfg.Render)
	w, h := window.FramebufferSize()
	if err := e.renderer.OnResize(w, h); err != nil {
		return err
	}
	e.width, e.height = uint32(w), uint32(h)

	am, err := assets.NewAssetManager(cfg.Assets, e.resources)
	if err != nil {
		return err
	}
	e.assetManager = am

	js, err := systems.NewJobSystem(min(runtime.NumCPU(), maxJobWorkers), jobQueueSize)
	if err != nil {
		return err
	}
	e.jobSystem = js

	if err := core.MetricsInitialize(); err != nil {
		return err
	}

	e.gameInstance.Systems = &Systems{
		Driver:   e.driver,
		Renderer: e.renderer,
		Assets:   e.assetManager,
		Window:   e.window,
		Jobs:     e.jobSystem,
	}

	if e.gameInstance.FnInitialize != nil {
		if err := e.gameInstance.FnInitialize(); err != nil {
			return fmt.Errorf("game initialize: %w", err)
		}
	}
	if e.gameInstance.FnOnResize != nil {
		if err := e.gameInstance.FnOnResize(e.width, e.height); err != nil {
			return fmt.Errorf("game resize: %w", err)
		}
	}

	e.currentStage = EngineStageInitialized
	return nil
}

// Run drives the frame loop until the window closes, a quit event arrives
// or ctx is done. An error from the game stops the loop and is returned.
func (e *Engine) Run(ctx context.Context) error {
	if e.currentStage != EngineStageInitialized {
		return fmt.Errorf("cannot run engine in stage %s", e.currentStage)
	}
	e.currentStage = EngineStageRunning

	e.clock.Start()
	e.clock.Update()
	e.lastTime = e.clock.Elapsed()

	for e.isRunning {
		select {
		case <-ctx.Done():
			core.LogInfo("context done, leaving the frame loop: %s", ctx.Err())
			e.isRunning = false
			continue
		default:
		}
		if e.window.ShouldClose() {
			e.isRunning = false
			continue
		}

		// listeners run here, including the quit and resize handlers
		core.EventProcess()
		if !e.isRunning {
			continue
		}

		if err := e.forwardAssetChanges(); err != nil {
			return err
		}
		e.jobSystem.Update()

		if !e.isSuspended {
			// Update clock and get delta time.
			e.clock.Update()
			currentTime := e.clock.Elapsed()
			delta := currentTime - e.lastTime
			frameStartTime := e.window.GetAbsoluteTime()

			if e.gameInstance.FnUpdate != nil {
				if err := e.gameInstance.FnUpdate(delta); err != nil {
					core.LogError("game update failed, shutting down: %s", err)
					return fmt.Errorf("game update: %w", err)
				}
			}

			e.renderer.BeginFrame()
			if e.gameInstance.FnRender != nil {
				if err := e.gameInstance.FnRender(delta); err != nil {
					core.LogError("game render failed, shutting down: %s", err)
					return fmt.Errorf("game render: %w", err)
				}
			}
			e.window.SwapBuffers()

			core.MetricsUpdate(e.window.GetAbsoluteTime() - frameStartTime)

			// input state is copied last, after everything this frame recorded
			core.InputUpdate(delta)
			e.lastTime = currentTime
		}

		e.window.PumpMessages()
	}
	return nil
}

func (e *Engine) forwardAssetChanges() error {
	for _, p := range e.assetManager.PollChanges() {
		core.LogDebug("asset changed: %s", p)
		core.EventFire(core.EventContext{
			Type: core.EVENT_CODE_ASSET_CHANGED,
			Data: &core.AssetEvent{Path: p},
		})
		if e.gameInstance.FnOnAssetChanged == nil {
			continue
		}
		if err := e.gameInstance.FnOnAssetChanged(p); err != nil {
			return fmt.Errorf("game asset change %q: %w", p, err)
		}
	}
	return nil
}

// Shutdown releases the game first and then every subsystem in reverse
// order of creation. It is safe to call after a failed Initialize.
func (e *Engine) Shutdown() error {
	if e.currentStage == EngineStageShutdown {
		return nil
	}
	e.currentStage = EngineStageShuttingDown

	var errs []error
	if e.gameInstance.FnShutdown != nil && e.gameInstance.Systems != nil {
		if err := e.gameInstance.FnShutdown(); err != nil {
			errs = append(errs, fmt.Errorf("game shutdown: %w", err))
		}
	}
	if e.jobSystem != nil {
		if err := e.jobSystem.Shutdown(); err != nil {
			errs = append(errs, err)
		}
	}
	if e.assetManager != nil {
		if err := e.assetManager.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := core.EventSystemShutdown(); err != nil {
		errs = append(errs, err)
	}
	if err := core.InputShutdown(); err != nil {
		errs = append(errs, err)
	}
	if e.window != nil {
		if err := e.window.Shutdown(); err != nil {
			errs = append(errs, err)
		}
	}

	e.currentStage = EngineStageShutdown
	return errors.Join(errs...)
}

// GetFramebufferSize returns the width and height (in this order)
// of the application Framebuffer
func (e *Engine) GetFramebufferSize() (uint32, uint32) {
	return e.width, e.height
}

func (e *Engine) onEvent(context core.EventContext) bool {
	switch context.Type {
	case core.EVENT_CODE_APPLICATION_QUIT:
		core.LogInfo("EVENT_CODE_APPLICATION_QUIT received, shutting down.")
		e.isRunning = false
		e.window.SetShouldClose(true)
		return true
	}
	return false
}

func (e *Engine) onKey(context core.EventContext) bool {
	ke, ok := context.Data.(*core.KeyEvent)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", context.Type)
		return false
	}

	if context.Type == core.EVENT_CODE_KEY_PRESSED && ke.KeyCode == core.KEY_ESCAPE {
		// other listeners may care about the quit as well
		core.EventFire(core.EventContext{
			Type: core.EVENT_CODE_APPLICATION_QUIT,
		})
		// Block anything else from processing this.
		return true
	}
	core.LogDebug("key %#x pressed=%t", ke.KeyCode, context.Type == core.EVENT_CODE_KEY_PRESSED)
	return false
}

func (e *Engine) onResized(context core.EventContext) bool {
	se, ok := context.Data.(*core.SystemEvent)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", context.Type)
		return false
	}

	width := se.WindowWidth
	height := se.WindowHeight
	if width == e.width && height == e.height {
		return false
	}
	e.width = width
	e.height = height
	core.LogDebug("Window resize: %d, %d", width, height)

	// Handle minimization
	if width == 0 || height == 0 {
		core.LogInfo("Window minimized, suspending application.")
		e.isSuspended = true
		return false
	}
	if e.isSuspended {
		core.LogInfo("Window restored, resuming application.")
		e.isSuspended = false
	}
	if err := e.renderer.OnResize(int(width), int(height)); err != nil {
		core.LogError("%s", err)
	}
	if e.gameInstance.FnOnResize != nil {
		if err := e.gameInstance.FnOnResize(width, height); err != nil {
			core.LogError("game resize: %s", err)
		}
	}
	return false
}
