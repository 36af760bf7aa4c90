package loaders

import (
	"io/fs"
	"path"

	"github.com/spaghettifunk/oglc/engine/renderer/metadata"
)

// ShaderLoader reads GLSL source as raw bytes.
type ShaderLoader struct{}

func (sl *ShaderLoader) Load(fsys fs.FS, name string, params interface{}) (*metadata.Resource, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}
	return &metadata.Resource{
		Name:     path.Base(name),
		FullPath: name,
		DataSize: uint64(len(data)),
		Data:     data,
	}, nil
}

func (sl *ShaderLoader) Unload(*metadata.Resource) error {
	return nil
}
