package opengl_test

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/oglc/engine/core"
	"github.com/spaghettifunk/oglc/engine/renderer/opengl"
	"github.com/spaghettifunk/oglc/engine/renderer/opengl/opengltest"
)

const (
	vertexSrc = `#version 330 core
layout (location = 0) in vec3 aPos;
void main() { gl_Position = vec4(aPos, 1.0); }
`
	fragmentSrc = `#version 330 core
out vec4 FragColor;
void main() { FragColor = vec4(1.0, 0.5, 0.2, 1.0); }
`
	brokenSrc = `#version 330 core
syntax error
`
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	core.LogSetOutput(&buf)
	t.Cleanup(func() { core.LogSetOutput(os.Stderr) })
	return &buf
}

func TestShaderFromString(t *testing.T) {
	drv := opengltest.New()

	s, err := opengl.ShaderFromString(drv, opengl.VertexShader, vertexSrc)
	require.NoError(t, err)
	defer s.Close()

	assert.True(t, s.Ready())
	assert.Equal(t, opengl.VertexShader, s.Kind())
	h, err := s.Handle()
	require.NoError(t, err)
	assert.NotZero(t, h)
	assert.Equal(t, vertexSrc, drv.Sources[h])
	assert.Equal(t, "shader", drv.Live[h])
}

func TestShaderCompileFailureReleasesObject(t *testing.T) {
	logs := captureLog(t)
	drv := opengltest.New()

	s, err := opengl.ShaderFromString(drv, opengl.FragmentShader, brokenSrc)
	require.Error(t, err)
	assert.Nil(t, s)
	assert.True(t, errors.Is(err, core.ErrShaderCompile))

	var cerr *opengl.CompileError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, opengl.FragmentShader, cerr.Kind)
	assert.Contains(t, cerr.Log, "unexpected IDENTIFIER")
	assert.Contains(t, logs.String(), "unexpected IDENTIFIER")

	assert.Empty(t, drv.Live)
	assert.Equal(t, 1, drv.Count("Delete shader"))
}

func TestShaderUnknownKind(t *testing.T) {
	drv := opengltest.New()

	_, err := opengl.ShaderFromString(drv, opengl.ShaderKind(42), vertexSrc)
	assert.ErrorIs(t, err, core.ErrUnknownShaderKind)
	_, err = opengl.ShaderFromResource(drv, 0, fstest.MapFS{}, "missing.vert")
	assert.ErrorIs(t, err, core.ErrUnknownShaderKind)

	assert.Empty(t, drv.Calls)
}

func TestShaderFromCString(t *testing.T) {
	drv := opengltest.New()

	s, err := opengl.ShaderFromCString(drv, opengl.VertexShader, vertexSrc+"\x00syntax error")
	require.NoError(t, err)
	h, _ := s.Handle()
	assert.Equal(t, vertexSrc, drv.Sources[h])

	b, err := opengl.ShaderFromBytes(drv, opengl.FragmentShader, []byte(fragmentSrc))
	require.NoError(t, err)
	h, _ = b.Handle()
	assert.Equal(t, fragmentSrc, drv.Sources[h])
}

func TestShaderFromResource(t *testing.T) {
	drv := opengltest.New()
	fsys := fstest.MapFS{
		"shaders/quad.vert": {Data: []byte(vertexSrc)},
		"shaders/bad.frag":  {Data: []byte(brokenSrc)},
	}
	captureLog(t)

	s, err := opengl.ShaderFromResource(drv, opengl.VertexShader, fsys, "shaders/quad.vert")
	require.NoError(t, err)
	assert.True(t, s.Ready())

	_, err = opengl.ShaderFromResource(drv, opengl.VertexShader, fsys, "shaders/none.vert")
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, err = opengl.ShaderFromResource(drv, opengl.FragmentShader, fsys, "shaders/bad.frag")
	assert.ErrorIs(t, err, core.ErrShaderCompile)
	assert.Contains(t, err.Error(), "shaders/bad.frag")
}

func TestShaderMove(t *testing.T) {
	drv := opengltest.New()

	src, err := opengl.ShaderFromString(drv, opengl.VertexShader, vertexSrc)
	require.NoError(t, err)
	h, _ := src.Handle()

	dst := src.Move()
	assert.False(t, src.Ready())
	_, err = src.Handle()
	assert.ErrorIs(t, err, core.ErrHandleNotAssigned)

	got, err := dst.Handle()
	require.NoError(t, err)
	assert.Equal(t, h, got)
	assert.Equal(t, opengl.VertexShader, dst.Kind())

	require.NoError(t, src.Close())
	require.NoError(t, dst.Close())
	require.NoError(t, dst.Close())
	assert.Equal(t, 1, drv.Released[h])
	assert.Empty(t, drv.Live)
}

func TestShaderZeroValue(t *testing.T) {
	var s opengl.Shader
	assert.False(t, s.Ready())
	_, err := s.Handle()
	assert.ErrorIs(t, err, core.ErrHandleNotAssigned)
	assert.NoError(t, s.Close())
	assert.False(t, s.Move().Ready())
}
