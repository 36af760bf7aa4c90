// Package resources embeds the built-in shaders and textures so the
// tutorials run without an asset directory.
package resources

import "embed"

// FS holds shaders/ and textures/.
//
//go:embed shaders textures
var FS embed.FS
