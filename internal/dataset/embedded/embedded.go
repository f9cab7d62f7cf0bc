// Package embedded carries a copy of the dataset compiled into the binary, used
// by the bundled runtime where neither a filesystem nor a backend is reachable.
package embedded

import (
	"embed"
	"io/fs"
)

// DefaultAsset is the name of the bundled dataset inside FS.
const DefaultAsset = "mockdata.json"

//go:embed mockdata.json
var assets embed.FS

// FS exposes the bundled assets.
func FS() fs.FS {
	return assets
}
