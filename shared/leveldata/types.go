// Package leveldata parses the scene layout from a TMX file.
// It has no dependencies on ebitengine, donburi, or resolv. Pure data only.
package leveldata

// SceneLayout holds the scene size and actor spawn points parsed from a TMX file.
type SceneLayout struct {
	Width  int
	Height int

	ZombieSpawn *SpawnPoint // nil when the map has no ZombieSpawn object
	EnemySpawn  *SpawnPoint // nil when the map has no EnemySpawn object
}

// SpawnPoint is an actor's starting position, in scene coordinates.
type SpawnPoint struct {
	X, Y float64
	Name string
}
