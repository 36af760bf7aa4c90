package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/oglc/engine/core"
	"github.com/spaghettifunk/oglc/engine/renderer/opengl"
	"github.com/spaghettifunk/oglc/engine/renderer/opengl/opengltest"
)

type fakeWindow struct {
	width, height int
	closed        bool
	maxPumps      int
	pumps         int
	swaps         int
	shutdowns     int
	now           float64
	onPump        func(n int)
}

func (w *fakeWindow) ShouldClose() bool {
	return w.closed || (w.maxPumps > 0 && w.pumps >= w.maxPumps)
}

func (w *fakeWindow) SetShouldClose(v bool) { w.closed = v }
func (w *fakeWindow) SwapBuffers()          { w.swaps++ }

func (w *fakeWindow) PumpMessages() {
	w.pumps++
	if w.onPump != nil {
		w.onPump(w.pumps)
	}
}

func (w *fakeWindow) FramebufferSize() (int, int) { return w.width, w.height }

func (w *fakeWindow) GetAbsoluteTime() float64 {
	w.now += 0.016
	return w.now
}

func (w *fakeWindow) Shutdown() error {
	w.shutdowns++
	return nil
}

type recorder struct {
	inits    int
	updates  int
	renders  int
	resizes  []string
	changed  []string
	shutdown int
}

func (r *recorder) game(cfg *core.Config) *Game {
	return &Game{
		Config:       cfg,
		FnInitialize: func() error { r.inits++; return nil },
		FnUpdate:     func(float64) error { r.updates++; return nil },
		FnRender:     func(float64) error { r.renders++; return nil },
		FnOnResize: func(w, h uint32) error {
			r.resizes = append(r.resizes, fmt.Sprintf("%dx%d", w, h))
			return nil
		},
		FnOnAssetChanged: func(p string) error { r.changed = append(r.changed, p); return nil },
		FnShutdown:       func() error { r.shutdown++; return nil },
	}
}

func newTestEngine(t *testing.T, g *Game, win *fakeWindow) (*Engine, *opengltest.Driver) {
	t.Helper()
	drv := opengltest.New()
	e, err := New(g,
		WithWindow(func(*core.Config) (Window, error) { return win, nil }),
		WithDriver(func() (opengl.Driver, error) { return drv, nil }),
		WithResources(fstest.MapFS{
			"shaders/a.vert": {Data: []byte("#version 330 core\n")},
		}),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = e.Shutdown() })
	require.NoError(t, e.Initialize())
	return e, drv
}

func TestEngineRunsFrames(t *testing.T) {
	rec := &recorder{}
	g := rec.game(nil)
	win := &fakeWindow{width: 800, height: 600, maxPumps: 3}
	e, drv := newTestEngine(t, g, win)

	assert.Equal(t, EngineStageInitialized, e.Stage())
	require.NotNil(t, g.Systems)
	assert.Same(t, drv, g.Systems.Driver)
	assert.Equal(t, 1, rec.inits)
	assert.Equal(t, []string{"800x600"}, rec.resizes)
	assert.Equal(t, [4]int32{0, 0, 800, 600}, drv.ViewportRect)

	require.NoError(t, e.Run(context.Background()))
	assert.Equal(t, 3, rec.updates)
	assert.Equal(t, 3, rec.renders)
	assert.Equal(t, 3, win.swaps)
	assert.Equal(t, 3, drv.Clears)
	assert.Equal(t, uint64(3), g.Systems.Renderer.Frames())

	require.NoError(t, e.Shutdown())
	assert.Equal(t, EngineStageShutdown, e.Stage())
	assert.Equal(t, 1, rec.shutdown)
	assert.Equal(t, 1, win.shutdowns)

	require.NoError(t, e.Shutdown())
	assert.Equal(t, 1, win.shutdowns)
}

func TestEngineEscapeQuits(t *testing.T) {
	rec := &recorder{}
	win := &fakeWindow{width: 800, height: 600, maxPumps: 10}
	win.onPump = func(n int) {
		if n == 1 {
			require.NoError(t, core.InputProcessKey(core.KEY_ESCAPE, true))
		}
	}
	e, _ := newTestEngine(t, rec.game(nil), win)

	require.NoError(t, e.Run(context.Background()))
	assert.Equal(t, 1, rec.updates)
	assert.True(t, win.closed)
}

func TestEngineGameErrorStopsLoop(t *testing.T) {
	errBoom := errors.New("boom")
	rec := &recorder{}
	g := rec.game(nil)
	g.FnRender = func(float64) error {
		rec.renders++
		if rec.renders == 2 {
			return errBoom
		}
		return nil
	}
	win := &fakeWindow{width: 800, height: 600, maxPumps: 10}
	e, _ := newTestEngine(t, g, win)

	err := e.Run(context.Background())
	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, 2, rec.updates)
	assert.Equal(t, 1, win.swaps)
}

func TestEngineContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rec := &recorder{}
	g := rec.game(nil)
	g.FnUpdate = func(float64) error {
		rec.updates++
		if rec.updates == 2 {
			cancel()
		}
		return nil
	}
	win := &fakeWindow{width: 800, height: 600, maxPumps: 10}
	e, _ := newTestEngine(t, g, win)

	require.NoError(t, e.Run(ctx))
	assert.Equal(t, 2, rec.updates)
}

func TestEngineResizeAndMinimize(t *testing.T) {
	post := func(w, h uint32) {
		require.NoError(t, core.EventPost(core.EventContext{
			Type: core.EVENT_CODE_RESIZED,
			Data: &core.SystemEvent{WindowWidth: w, WindowHeight: h},
		}))
	}
	rec := &recorder{}
	win := &fakeWindow{width: 800, height: 600, maxPumps: 6}
	win.onPump = func(n int) {
		switch n {
		case 1:
			post(1024, 768)
		case 2:
			post(0, 0)
		case 4:
			post(640, 480)
		}
	}
	e, drv := newTestEngine(t, rec.game(nil), win)

	require.NoError(t, e.Run(context.Background()))
	// frames three and four are skipped while minimized
	assert.Equal(t, 4, rec.updates)
	assert.Equal(t, []string{"800x600", "1024x768", "640x480"}, rec.resizes)
	assert.Equal(t, [4]int32{0, 0, 640, 480}, drv.ViewportRect)

	w, h := e.GetFramebufferSize()
	assert.Equal(t, uint32(640), w)
	assert.Equal(t, uint32(480), h)
}

func TestEngineForwardsAssetChanges(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "shaders"), 0o755))
	shader := filepath.Join(dir, "shaders", "a.frag")
	require.NoError(t, os.WriteFile(shader, []byte("v1"), 0o644))

	cfg := core.DefaultConfig()
	cfg.Assets = core.AssetsConfig{Dir: dir, Watch: true}

	rec := &recorder{}
	g := rec.game(cfg)
	g.FnUpdate = func(float64) error {
		rec.updates++
		if rec.updates == 1 {
			return os.WriteFile(shader, []byte("v2"), 0o644)
		}
		return nil
	}
	g.FnOnAssetChanged = func(p string) error {
		rec.changed = append(rec.changed, p)
		g.Systems.Window.SetShouldClose(true)
		return nil
	}
	win := &fakeWindow{width: 800, height: 600, maxPumps: 500}
	win.onPump = func(int) { time.Sleep(10 * time.Millisecond) }
	e, _ := newTestEngine(t, g, win)

	require.NoError(t, e.Run(context.Background()))
	require.NotEmpty(t, rec.changed)
	assert.Equal(t, "shaders/a.frag", rec.changed[0])
}

func TestEngineNeedsFactories(t *testing.T) {
	_, err := New(&Game{})
	assert.Error(t, err)

	_, err = New(nil)
	assert.Error(t, err)

	cfg := core.DefaultConfig()
	cfg.Window.Width = 0
	_, err = New(&Game{Config: cfg},
		WithWindow(func(*core.Config) (Window, error) { return &fakeWindow{}, nil }),
		WithDriver(func() (opengl.Driver, error) { return opengltest.New(), nil }),
	)
	assert.ErrorIs(t, err, core.ErrInvalidConfig)
}

func TestEngineRunBeforeInitialize(t *testing.T) {
	e, err := New(&Game{},
		WithWindow(func(*core.Config) (Window, error) { return &fakeWindow{}, nil }),
		WithDriver(func() (opengl.Driver, error) { return opengltest.New(), nil }),
	)
	require.NoError(t, err)
	assert.Error(t, e.Run(context.Background()))
	assert.Equal(t, "uninitialized", e.Stage().String())
}
