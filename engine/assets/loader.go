package assets

import (
	"io/fs"

	"github.com/spaghettifunk/oglc/engine/renderer/metadata"
)

// Loader turns one file of the asset file system into a resource. params
// is loader specific and may be nil.
type Loader interface {
	Load(fsys fs.FS, path string, params interface{}) (*metadata.Resource, error)
	Unload(resource *metadata.Resource) error
}
