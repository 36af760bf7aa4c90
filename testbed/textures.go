package testbed

import (
	"strings"
	"unsafe"

	"github.com/spaghettifunk/oglc/engine"
	"github.com/spaghettifunk/oglc/engine/core"
	"github.com/spaghettifunk/oglc/engine/math"
	"github.com/spaghettifunk/oglc/engine/renderer"
	"github.com/spaghettifunk/oglc/engine/renderer/components"
	"github.com/spaghettifunk/oglc/engine/renderer/metadata"
	"github.com/spaghettifunk/oglc/engine/renderer/opengl"
	"github.com/spaghettifunk/oglc/engine/systems"
)

const (
	texturedVertexShader   = "shaders/textured.vert"
	texturedFragmentShader = "shaders/textured.frag"
	containerTexture       = "textures/texture.png"

	// radians per second
	spinSpeed = 0.5
	// world units per second
	panSpeed = 1.0
)

type texturedVertex struct {
	Pos math.Vec3
	UV  math.Vec2
}

// textures draws a textured quad that spins around the view axis. The
// arrow keys pan the camera. Editing its shaders or its image on disk
// reloads them while it runs.
type textures struct {
	game    *engine.Game
	camera  *components.Camera
	program *opengl.ShaderProgram
	texture *opengl.Texture2D
	mesh    *renderer.Mesh
	angle   float32
}

func newTextures(g *engine.Game) {
	t := &textures{game: g, camera: components.NewCamera()}
	g.State = t
	g.FnInitialize = t.initialize
	g.FnUpdate = t.update
	g.FnRender = t.render
	g.FnOnResize = t.onResize
	g.FnOnAssetChanged = t.onAssetChanged
	g.FnShutdown = t.shutdown
}

func (t *textures) initialize() error {
	var err error
	if t.program, err = t.buildProgram(); err != nil {
		return err
	}
	if t.texture, err = t.loadTexture(); err != nil {
		return err
	}

	vertices := []texturedVertex{
		{Pos: math.NewVec3[float32](0.5, 0.5, 0.0), UV: math.NewVec2[float32](1.0, 1.0)},
		{Pos: math.NewVec3[float32](0.5, -0.5, 0.0), UV: math.NewVec2[float32](1.0, 0.0)},
		{Pos: math.NewVec3[float32](-0.5, -0.5, 0.0), UV: math.NewVec2[float32](0.0, 0.0)},
		{Pos: math.NewVec3[float32](-0.5, 0.5, 0.0), UV: math.NewVec2[float32](0.0, 1.0)},
	}
	indices := []uint32{
		0, 1, 3,
		1, 2, 3,
	}
	var v texturedVertex
	t.mesh, err = renderer.NewMesh(t.game.Systems.Driver, vertices, indices,
		renderer.Attribute{Location: 0, Size: 3, Type: opengl.Float32, Offset: unsafe.Offsetof(v.Pos)},
		renderer.Attribute{Location: 1, Size: 2, Type: opengl.Float32, Offset: unsafe.Offsetof(v.UV)},
	)
	return err
}

func (t *textures) buildProgram() (*opengl.ShaderProgram, error) {
	drv := t.game.Systems.Driver
	fsys := t.game.Systems.Assets.FS()

	vs, err := opengl.ShaderFromResource(drv, opengl.VertexShader, fsys, texturedVertexShader)
	if err != nil {
		return nil, err
	}
	defer vs.Close()
	fs, err := opengl.ShaderFromResource(drv, opengl.FragmentShader, fsys, texturedFragmentShader)
	if err != nil {
		return nil, err
	}
	defer fs.Close()

	program, err := opengl.ProgramConfig{Activate: true}.Link(drv, vs, fs)
	if err != nil {
		return nil, err
	}
	if err := program.SetInt("tex", 0); err != nil {
		program.Close()
		return nil, err
	}
	return program, nil
}

// decodeTexture reads and decodes the image. It is safe to call away from
// the graphics thread.
func (t *textures) decodeTexture() (*metadata.Texture, error) {
	am := t.game.Systems.Assets
	res, err := am.LoadAsset(containerTexture, metadata.ResourceTypeTexture, &metadata.TextureLoadParams{
		Name:  "container",
		FlipY: true,
	})
	if err != nil {
		return nil, err
	}
	defer am.UnloadAsset(metadata.ResourceTypeTexture, res)
	return res.Data.(*metadata.Texture), nil
}

func (t *textures) uploadTexture(tex *metadata.Texture) (*opengl.Texture2D, error) {
	img := tex.Image
	return opengl.NewTexture2D(t.game.Systems.Driver, int(img.Width), int(img.Height), int(img.ChannelCount), img.Pixels, opengl.DefaultTextureOptions())
}

func (t *textures) loadTexture() (*opengl.Texture2D, error) {
	tex, err := t.decodeTexture()
	if err != nil {
		return nil, err
	}
	return t.uploadTexture(tex)
}

func (t *textures) update(deltaTime float64) error {
	t.angle += float32(deltaTime) * spinSpeed
	if t.angle > math.K_PI_2 {
		t.angle -= math.K_PI_2
	}

	step := float32(deltaTime) * panSpeed
	if core.InputIsKeyDown(core.KEY_LEFT) {
		t.camera.MoveLeft(step)
	}
	if core.InputIsKeyDown(core.KEY_RIGHT) {
		t.camera.MoveRight(step)
	}
	if core.InputIsKeyDown(core.KEY_UP) {
		t.camera.MoveUp(step)
	}
	if core.InputIsKeyDown(core.KEY_DOWN) {
		t.camera.MoveDown(step)
	}
	return nil
}

func (t *textures) onResize(width, height uint32) error {
	t.camera.SetViewport(width, height)
	return nil
}

func (t *textures) transform() math.Mat4 {
	return math.Mul(t.camera.ViewProjection(), math.RotationZ(t.angle))
}

func (t *textures) render(float64) error {
	if err := t.program.Use(); err != nil {
		return err
	}
	if err := t.texture.Bind(0); err != nil {
		return err
	}
	if err := t.program.SetMat4("transform", t.transform()); err != nil {
		return err
	}
	return t.game.Systems.Renderer.Draw(t.mesh)
}

// onAssetChanged swaps in rebuilt objects. When a rebuild fails the
// previous object keeps being used.
func (t *textures) onAssetChanged(path string) error {
	switch {
	case path == texturedVertexShader || path == texturedFragmentShader:
		program, err := t.buildProgram()
		if err != nil {
			core.LogWarn("keeping the previous program, reload of %s failed: %s", path, err)
			return nil
		}
		t.program.Close()
		t.program = program
		core.LogInfo("reloaded shader program after %s changed", path)
	case path == containerTexture:
		// decoding happens on a worker, only the upload needs this thread
		return t.game.Systems.Jobs.Submit(systems.JobTask{
			Name: "decode " + path,
			Run: func() (interface{}, error) {
				return t.decodeTexture()
			},
			OnComplete: func(result interface{}) {
				texture, err := t.uploadTexture(result.(*metadata.Texture))
				if err != nil {
					core.LogWarn("keeping the previous texture, upload of %s failed: %s", path, err)
					return
				}
				t.texture.Close()
				t.texture = texture
				core.LogInfo("reloaded texture %s", path)
			},
			OnFailure: func(err error) {
				core.LogWarn("keeping the previous texture, reload of %s failed: %s", path, err)
			},
		})
	case strings.HasPrefix(path, "shaders/"):
		core.LogDebug("%s is not used by this tutorial", path)
	}
	return nil
}

func (t *textures) shutdown() error {
	if t.mesh != nil {
		t.mesh.Close()
	}
	if t.texture != nil {
		t.texture.Close()
	}
	if t.program != nil {
		t.program.Close()
	}
	return nil
}
