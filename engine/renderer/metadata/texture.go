package metadata

type TextureFlag uint8

const (
	/** @brief Indicates if the texture has transparency. */
	TextureFlagHasTransparency TextureFlag = 0x1
	/** @brief Indicates if the pixels were flipped so row 0 is the bottom. */
	TextureFlagFlippedY TextureFlag = 0x2
)

/** @brief Parameters used when loading a texture. */
type TextureLoadParams struct {
	/** @brief The texture name. A random one is generated when empty. */
	Name string
	/** @brief Flip rows so the image matches OpenGL's bottom-left origin. */
	FlipY bool
}

/**
 * @brief Represents a texture before it is uploaded.
 */
type Texture struct {
	/** @brief The texture Name. */
	Name string
	/** @brief Holds various Flags for this texture. */
	Flags TextureFlag
	/** @brief The texture Generation. Incremented every time the data is reloaded. */
	Generation uint32
	/** @brief The decoded pixels. */
	Image *ImageResourceData
}

func (t *Texture) HasTransparency() bool {
	return t.Flags&TextureFlagHasTransparency != 0
}
