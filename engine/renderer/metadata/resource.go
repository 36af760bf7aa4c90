package metadata

type ResourceType int

/** @brief Pre-defined resource types. */
const (
	/** @brief Files no loader handles. */
	ResourceTypeNone ResourceType = iota
	/** @brief Text resource type. */
	ResourceTypeText
	/** @brief Decoded image pixels. */
	ResourceTypeImage
	/** @brief Image pixels with a texture name and flags. */
	ResourceTypeTexture
	/** @brief GLSL source text. */
	ResourceTypeShader
	/** @brief Custom resource type. Used by loaders outside the core engine. */
	ResourceTypeCustom
)

func (t ResourceType) String() string {
	switch t {
	case ResourceTypeText:
		return "text"
	case ResourceTypeImage:
		return "image"
	case ResourceTypeTexture:
		return "texture"
	case ResourceTypeShader:
		return "shader"
	case ResourceTypeCustom:
		return "custom"
	}
	return "none"
}

/**
 * @brief A generic structure for a resource. All resource loaders
 * load data into these.
 */
type Resource struct {
	/** @brief The name of the resource. */
	Name string
	/** @brief The path of the resource inside the asset file system. */
	FullPath string
	/** @brief The size of the resource data in bytes. */
	DataSize uint64
	/** @brief The resource data. */
	Data interface{}
}
