// Package levels bundles the default level file played when no -levels flag
// is given.
package levels

import (
	"embed"

	"github.com/automoto/pixel-platformer/shared/leveldata"
)

// DefaultFile is the bundled file's name inside FS.
const DefaultFile = "levels.json"

//go:embed levels.json
var FS embed.FS

// Default decodes the bundled level file.
func Default() (*leveldata.File, error) {
	return leveldata.LoadFS(FS, DefaultFile)
}

// Load reads the level file at path, or the bundled file when path is empty.
func Load(path string) (*leveldata.File, error) {
	if path == "" {
		return Default()
	}
	return leveldata.LoadFile(path)
}
