package loaders

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"path"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/spaghettifunk/oglc/engine/core"
	"github.com/spaghettifunk/oglc/engine/renderer/metadata"
)

type ImageLoader struct{}

// DecodeImage turns an encoded image into tightly packed 8-bit pixels.
// Opaque images come out as RGB, everything else as non-premultiplied RGBA.
func DecodeImage(data []byte, flipY bool) (*metadata.ImageResourceData, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", core.ErrImageDecode, err)
	}

	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%w: empty %s image", core.ErrImageDecode, format)
	}
	rgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)

	channels := 4
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		channels = 3
	}

	width, height := b.Dx(), b.Dy()
	pixels := make([]uint8, 0, width*height*channels)
	for y := 0; y < height; y++ {
		row := y
		if flipY {
			row = height - 1 - y
		}
		line := rgba.Pix[row*rgba.Stride : row*rgba.Stride+width*4]
		if channels == 4 {
			pixels = append(pixels, line...)
			continue
		}
		for x := 0; x < width; x++ {
			pixels = append(pixels, line[x*4], line[x*4+1], line[x*4+2])
		}
	}

	return &metadata.ImageResourceData{
		ChannelCount: uint8(channels),
		Width:        uint32(width),
		Height:       uint32(height),
		Pixels:       pixels,
	}, nil
}

// Load decodes name. params may be nil or *metadata.ImageResourceParams.
func (il *ImageLoader) Load(fsys fs.FS, name string, params interface{}) (*metadata.Resource, error) {
	flip := false
	if p, ok := params.(*metadata.ImageResourceParams); ok && p != nil {
		flip = p.FlipY
	}

	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}
	img, err := DecodeImage(data, flip)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return &metadata.Resource{
		Name:     path.Base(name),
		FullPath: name,
		DataSize: uint64(len(img.Pixels)),
		Data:     img,
	}, nil
}

func (il *ImageLoader) Unload(*metadata.Resource) error {
	return nil
}
