package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/followtheleader/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// MustLoadLayout parses the embedded scene map.
func MustLoadLayout(path string) *leveldata.SceneLayout {
	layout, err := leveldata.LoadSceneLayout(assetFS, path)
	if err != nil {
		panic(fmt.Sprintf("Failed to load scene %s: %v", path, err))
	}
	return layout
}
