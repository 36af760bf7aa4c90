package testbed

import (
	"context"
	"io/fs"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/oglc/engine"
	"github.com/spaghettifunk/oglc/engine/core"
	"github.com/spaghettifunk/oglc/engine/renderer/opengl"
	"github.com/spaghettifunk/oglc/engine/renderer/opengl/opengltest"
	"github.com/spaghettifunk/oglc/engine/resources"
)

type headlessWindow struct {
	frames int
	pumps  int
	closed bool
}

func (w *headlessWindow) ShouldClose() bool           { return w.closed || w.pumps >= w.frames }
func (w *headlessWindow) SetShouldClose(v bool)       { w.closed = v }
func (w *headlessWindow) SwapBuffers()                {}
func (w *headlessWindow) PumpMessages()               { w.pumps++ }
func (w *headlessWindow) FramebufferSize() (int, int) { return 800, 600 }
func (w *headlessWindow) GetAbsoluteTime() float64    { return float64(w.pumps) / 60 }
func (w *headlessWindow) Shutdown() error             { return nil }

// builtins copies the embedded resources into a map the test can edit.
func builtins(t *testing.T) fstest.MapFS {
	t.Helper()
	out := fstest.MapFS{}
	err := fs.WalkDir(resources.FS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(resources.FS, p)
		if err != nil {
			return err
		}
		out[p] = &fstest.MapFile{Data: data}
		return nil
	})
	require.NoError(t, err)
	return out
}

func start(t *testing.T, name string, fsys fs.FS, frames int) (*engine.Game, *engine.Engine, *opengltest.Driver) {
	t.Helper()
	g, err := New(name, nil)
	require.NoError(t, err)

	drv := opengltest.New()
	e, err := engine.New(g,
		engine.WithWindow(func(*core.Config) (engine.Window, error) { return &headlessWindow{frames: frames}, nil }),
		engine.WithDriver(func() (opengl.Driver, error) { return drv, nil }),
		engine.WithResources(fsys),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = e.Shutdown() })
	require.NoError(t, e.Initialize())
	return g, e, drv
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"quad", "textures", "triangle"}, Names())
}

func TestNewUnknownTutorial(t *testing.T) {
	_, err := New("teapot", nil)
	assert.ErrorContains(t, err, "teapot")

	cfg := core.DefaultConfig()
	cfg.Tutorial = "quad"
	g, err := New("", cfg)
	require.NoError(t, err)
	assert.IsType(t, &quad{}, g.State)
}

func TestTutorialsRunAndRelease(t *testing.T) {
	draws := map[string]string{
		"triangle": "arrays triangles 0 3",
		"quad":     "elements triangles 6 uint32",
		"textures": "elements triangles 6 uint32",
	}
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			_, e, drv := start(t, name, resources.FS, 2)

			require.NoError(t, e.Run(context.Background()))
			require.Len(t, drv.Draws, 2)
			assert.Equal(t, draws[name], drv.Draws[0])

			require.NoError(t, e.Shutdown())
			assert.Empty(t, drv.Live, "objects left after shutdown")
		})
	}
}

func TestTexturesUploadsTransform(t *testing.T) {
	g, e, drv := start(t, "textures", resources.FS, 1)
	assert.InDelta(t, 800.0/600.0, g.State.(*textures).camera.Aspect, 1e-6)
	require.NoError(t, e.Run(context.Background()))

	assert.Equal(t, int32(0), drv.Uniforms[drv.Locations["tex"]])
	m, ok := drv.Uniforms[drv.Locations["transform"]].([]float32)
	require.True(t, ok)
	assert.Len(t, m, 16)
	assert.Equal(t, float32(1), m[15])

	assert.Equal(t, "3 float32 stride=32 offset=0", drv.Attribs[0])
	assert.Equal(t, "2 float32 stride=32 offset=16", drv.Attribs[1])
	assert.Equal(t, opengl.RGB, drv.TexFormat)
}

func TestTexturesReloadKeepsProgramOnFailure(t *testing.T) {
	fsys := builtins(t)
	g, _, drv := start(t, "textures", fsys, 1)
	state := g.State.(*textures)

	before, err := state.program.Handle()
	require.NoError(t, err)
	good := fsys[texturedFragmentShader].Data

	fsys[texturedFragmentShader] = &fstest.MapFile{Data: []byte("#version 330 core\nsyntax error\n")}
	require.NoError(t, g.FnOnAssetChanged(texturedFragmentShader))
	h, err := state.program.Handle()
	require.NoError(t, err)
	assert.Equal(t, before, h)
	assert.Zero(t, drv.Released[before])

	fsys[texturedFragmentShader] = &fstest.MapFile{Data: good}
	require.NoError(t, g.FnOnAssetChanged(texturedFragmentShader))
	h, err = state.program.Handle()
	require.NoError(t, err)
	assert.NotEqual(t, before, h)
	assert.Equal(t, 1, drv.Released[before])

	oldTexture, err := state.texture.Handle()
	require.NoError(t, err)
	require.NoError(t, g.FnOnAssetChanged(containerTexture))
	require.Eventually(t, func() bool {
		g.Systems.Jobs.Update()
		return drv.Released[oldTexture] == 1
	}, 5*time.Second, 5*time.Millisecond)

	// a broken image keeps the current texture
	current, err := state.texture.Handle()
	require.NoError(t, err)
	fsys[containerTexture] = &fstest.MapFile{Data: []byte("not an image")}
	require.NoError(t, g.FnOnAssetChanged(containerTexture))
	require.Eventually(t, func() bool { return g.Systems.Jobs.Update() == 1 }, 5*time.Second, 5*time.Millisecond)
	h, err = state.texture.Handle()
	require.NoError(t, err)
	assert.Equal(t, current, h)

	require.NoError(t, g.FnOnAssetChanged("shaders/unrelated.vert"))
}
