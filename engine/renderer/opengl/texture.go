package opengl

import (
	"fmt"

	"github.com/spaghettifunk/oglc/engine/core"
)

type TextureOptions struct {
	MinFilter TextureFilter
	MagFilter TextureFilter
	WrapS     TextureWrap
	WrapT     TextureWrap
	// Mipmaps generates the full mipmap chain after the upload.
	Mipmaps bool
}

// DefaultTextureOptions samples with trilinear filtering and repeats.
func DefaultTextureOptions() TextureOptions {
	return TextureOptions{
		MinFilter: FilterLinearMipmapLinear,
		MagFilter: FilterLinear,
		WrapS:     WrapRepeat,
		WrapT:     WrapRepeat,
		Mipmaps:   true,
	}
}

// Texture2D owns one 2D texture object. It must not be copied.
type Texture2D struct {
	resource
	drv    TextureDriver
	width  int
	height int
	format PixelFormat
}

// NewTexture2D uploads tightly packed 8-bit pixels. The channel count picks
// the pixel format. The texture is left bound to the active unit.
func NewTexture2D(drv TextureDriver, width, height, channels int, pixels []byte, opts TextureOptions) (*Texture2D, error) {
	format, ok := PixelFormatForChannels(channels)
	if !ok {
		return nil, fmt.Errorf("%w: %d channels", ErrTextureFormat, channels)
	}
	if width <= 0 || height <= 0 || len(pixels) != width*height*channels {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d %s", ErrTextureFormat, len(pixels), width, height, format)
	}
	if opts.MagFilter.UsesMipmaps() {
		return nil, fmt.Errorf("%w: magnification filter cannot use mipmaps", ErrTextureFormat)
	}

	handle := drv.GenTexture()
	if handle == 0 {
		return nil, core.ErrUnknown
	}
	drv.BindTexture2D(handle)
	drv.TexWrap2D(opts.WrapS, opts.WrapT)
	drv.TexFilter2D(opts.MinFilter, opts.MagFilter)
	// rows of RGB data are rarely 4-byte aligned
	drv.UnpackAlignment(1)
	drv.TexImage2D(int32(width), int32(height), format, pixels)
	if opts.Mipmaps || opts.MinFilter.UsesMipmaps() {
		drv.GenerateMipmap2D()
	}

	t := &Texture2D{drv: drv, width: width, height: height, format: format}
	t.own(handle, drv.DeleteTexture)
	return t, nil
}

// Bind makes the texture current on the given texture unit.
func (t *Texture2D) Bind(unit uint32) error {
	if !t.Ready() {
		return core.ErrHandleNotAssigned
	}
	t.drv.ActiveTexture(unit)
	t.drv.BindTexture2D(t.handle)
	return nil
}

func (t *Texture2D) Width() int          { return t.width }
func (t *Texture2D) Height() int         { return t.height }
func (t *Texture2D) Format() PixelFormat { return t.format }

// Move transfers ownership to a new Texture2D and leaves t as the sentinel.
func (t *Texture2D) Move() *Texture2D {
	out := &Texture2D{drv: t.drv, width: t.width, height: t.height, format: t.format}
	t.moveTo(&out.resource)
	return out
}
