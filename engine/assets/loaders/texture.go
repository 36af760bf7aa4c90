package loaders

import (
	"io/fs"

	"github.com/google/uuid"

	"github.com/spaghettifunk/oglc/engine/renderer/metadata"
)

// TextureLoader decodes an image and wraps it as a named texture.
type TextureLoader struct {
	images ImageLoader
}

// Load accepts nil or *metadata.TextureLoadParams. Textures without a name
// get a random one.
func (tl *TextureLoader) Load(fsys fs.FS, name string, params interface{}) (*metadata.Resource, error) {
	var p metadata.TextureLoadParams
	if tp, ok := params.(*metadata.TextureLoadParams); ok && tp != nil {
		p = *tp
	}
	if p.Name == "" {
		p.Name = uuid.NewString()
	}

	res, err := tl.images.Load(fsys, name, &metadata.ImageResourceParams{FlipY: p.FlipY})
	if err != nil {
		return nil, err
	}
	img := res.Data.(*metadata.ImageResourceData)

	tex := &metadata.Texture{
		Name:  p.Name,
		Image: img,
	}
	if img.ChannelCount == 4 {
		tex.Flags |= metadata.TextureFlagHasTransparency
	}
	if p.FlipY {
		tex.Flags |= metadata.TextureFlagFlippedY
	}

	res.Name = p.Name
	res.Data = tex
	return res, nil
}

func (tl *TextureLoader) Unload(*metadata.Resource) error {
	return nil
}
