// Package assets embeds the locale files and reference data shipped with the portal.
package assets

import (
	"embed"
	"io/fs"
	"os"
)

//go:embed locales/*.yaml data/*.json
var embedded embed.FS

const (
	LocalesDir = "locales"
	DataDir    = "data"
)

// FS returns the embedded assets, or the directory dir when it is not empty.
// An override directory must mirror the embedded layout.
func FS(dir string) fs.FS {
	if dir == "" {
		return embedded
	}
	return os.DirFS(dir)
}
