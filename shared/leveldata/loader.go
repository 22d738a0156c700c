package leveldata

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// Object group names in the TMX file.
const (
	GroupZombieSpawn = "ZombieSpawn"
	GroupEnemySpawn  = "EnemySpawn"
)

// LoadSceneLayout parses a TMX file and returns the scene layout. It takes an
// fs.FS so callers can pass embed.FS or os.DirFS.
func LoadSceneLayout(fsys fs.FS, tmxPath string) (*SceneLayout, error) {
	sceneMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	layout := &SceneLayout{
		Width:  sceneMap.Width * sceneMap.TileWidth,
		Height: sceneMap.Height * sceneMap.TileHeight,
	}
	if layout.Width <= 0 || layout.Height <= 0 {
		return nil, fmt.Errorf("TMX %s: scene size %dx%d is empty", tmxPath, layout.Width, layout.Height)
	}

	for _, og := range sceneMap.ObjectGroups {
		if len(og.Objects) == 0 {
			continue
		}
		// Only the first object of each group is used.
		o := og.Objects[0]
		spawn := &SpawnPoint{X: o.X, Y: o.Y, Name: o.Name}

		switch og.Name {
		case GroupZombieSpawn:
			layout.ZombieSpawn = spawn
		case GroupEnemySpawn:
			layout.EnemySpawn = spawn
		}
	}

	return layout, nil
}
