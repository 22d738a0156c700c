package scenes

import (
	"sync"
	"time"

	"github.com/automoto/followtheleader/archetypes"
	"github.com/automoto/followtheleader/components"
	cfg "github.com/automoto/followtheleader/config"
	"github.com/automoto/followtheleader/logging"
	"github.com/automoto/followtheleader/mathutil"
	"github.com/automoto/followtheleader/shared/gamemath"
	"github.com/automoto/followtheleader/shared/leveldata"
	"github.com/automoto/followtheleader/systems"
	"github.com/automoto/followtheleader/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// GameScene is the single gameplay scene: a zombie chasing touches and an enemy on patrol.
// The host calls OnTouch for each touch/drag and OnFrame once per frame; Update is the
// ebiten adapter that does both.
type GameScene struct {
	ecs    *ecs.ECS
	layout *leveldata.SceneLayout
	once   sync.Once

	// now is the frame timestamp source.
	now func() time.Time
}

func NewGameScene(layout *leveldata.SceneLayout) *GameScene {
	return &GameScene{layout: layout, now: time.Now}
}

// Size is the scene's logical size in pixels.
func (gs *GameScene) Size() (int, int) {
	return gs.layout.Width, gs.layout.Height
}

func (gs *GameScene) Update() {
	gs.once.Do(gs.configure)

	if p, ok := systems.PollTouch(); ok {
		gs.OnTouch(p)
	}
	gs.OnFrame(seconds(gs.now()))
}

// OnTouch handles a touch begin or drag at p, in scene coordinates.
func (gs *GameScene) OnTouch(p mathutil.Point) {
	gs.once.Do(gs.configure)
	systems.HandleTouch(gs.ecs, p)
}

// OnFrame advances the simulation to the given timestamp, in seconds.
func (gs *GameScene) OnFrame(timestamp float64) {
	gs.once.Do(gs.configure)
	systems.SetFrameTime(gs.ecs, timestamp)
	gs.ecs.Update()
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Background.ClearColor)

	if gs.ecs == nil {
		return
	}
	gs.ecs.DrawLayer(archetypes.LayerBackground, screen)
	gs.ecs.DrawLayer(archetypes.LayerActors, screen)
	gs.ecs.DrawLayer(archetypes.LayerDebug, screen)
}

// GobDecode always panics: a scene cannot be restored from serialized state.
func (gs *GameScene) GobDecode([]byte) error {
	panic("scenes: GameScene cannot be decoded; build it with NewGameScene")
}

func (gs *GameScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Input-driven systems
	ecs.AddSystem(systems.UpdateDebugToggle)

	// Simulation, in frame order
	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateZombies)
	ecs.AddSystem(systems.UpdatePatrol)
	ecs.AddSystem(systems.UpdateCollisions)

	// Add renderers
	ecs.AddRenderer(archetypes.LayerBackground, systems.DrawBackground)
	ecs.AddRenderer(archetypes.LayerActors, systems.DrawActors)
	ecs.AddRenderer(archetypes.LayerDebug, systems.DrawDebug)

	gs.ecs = ecs

	width, height := float64(gs.layout.Width), float64(gs.layout.Height)
	scene := factory.CreateScene(gs.ecs, width, height)
	playfield := components.Playfield.Get(scene)

	spaceEntry := factory.CreateSpace(gs.ecs, gs.layout.Width, gs.layout.Height, 64, 64)
	space := components.Space.Get(spaceEntry)

	factory.CreateBackground(gs.ecs, gs.layout.Width, gs.layout.Height)

	zombieX, zombieY := cfg.Zombie.StartX, cfg.Zombie.StartY
	if s := gs.layout.ZombieSpawn; s != nil {
		zombieX, zombieY = s.X, s.Y
	}
	zombie := factory.CreateZombie(gs.ecs, zombieX, zombieY)
	space.Add(components.Object.Get(zombie).Object)

	enemySpawn := gamemath.EnemySpawn(width, height, float64(cfg.Enemy.Width))
	if s := gs.layout.EnemySpawn; s != nil {
		enemySpawn = mathutil.Point{X: s.X, Y: s.Y}
	}
	enemy := factory.CreateEnemy(gs.ecs, enemySpawn.X, enemySpawn.Y, playfield)
	space.Add(components.Object.Get(enemy).Object)

	logging.L().Info("scene configured",
		zap.Int("width", gs.layout.Width),
		zap.Int("height", gs.layout.Height),
		zap.Float64("playableY", playfield.Playable.Y),
		zap.Float64("playableHeight", playfield.Playable.H),
	)
}

func seconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}
