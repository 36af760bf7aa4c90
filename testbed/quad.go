package testbed

import (
	"github.com/spaghettifunk/oglc/engine"
	"github.com/spaghettifunk/oglc/engine/math"
	"github.com/spaghettifunk/oglc/engine/renderer"
	"github.com/spaghettifunk/oglc/engine/renderer/opengl"
)

// quad draws an indexed rectangle through the owning wrappers.
type quad struct {
	game    *engine.Game
	program *opengl.ShaderProgram
	mesh    *renderer.Mesh
}

func newQuad(g *engine.Game) {
	q := &quad{game: g}
	g.State = q
	g.FnInitialize = q.initialize
	g.FnRender = q.render
	g.FnShutdown = q.shutdown
}

func (q *quad) initialize() error {
	drv := q.game.Systems.Driver
	fsys := q.game.Systems.Assets.FS()

	vs, err := opengl.ShaderFromResource(drv, opengl.VertexShader, fsys, "shaders/triangle.vert")
	if err != nil {
		return err
	}
	defer vs.Close()
	fs, err := opengl.ShaderFromResource(drv, opengl.FragmentShader, fsys, "shaders/triangle.frag")
	if err != nil {
		return err
	}
	defer fs.Close()

	if q.program, err = opengl.NewShaderProgram(drv, vs, fs); err != nil {
		return err
	}

	vertices := []math.Vec3{
		math.NewVec3[float32](0.5, 0.5, 0.0),
		math.NewVec3[float32](0.5, -0.5, 0.0),
		math.NewVec3[float32](-0.5, -0.5, 0.0),
		math.NewVec3[float32](-0.5, 0.5, 0.0),
	}
	indices := []uint32{
		0, 1, 3,
		1, 2, 3,
	}
	q.mesh, err = renderer.NewMesh(drv, vertices, indices,
		renderer.Attribute{Location: 0, Size: 3, Type: opengl.Float32},
	)
	return err
}

func (q *quad) render(float64) error {
	if err := q.program.Use(); err != nil {
		return err
	}
	return q.game.Systems.Renderer.Draw(q.mesh)
}

func (q *quad) shutdown() error {
	if q.mesh != nil {
		q.mesh.Close()
	}
	if q.program != nil {
		q.program.Close()
	}
	return nil
}
