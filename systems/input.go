package systems

import (
	"github.com/automoto/followtheleader/components"
	cfg "github.com/automoto/followtheleader/config"
	"github.com/automoto/followtheleader/mathutil"
	"github.com/automoto/followtheleader/shared/gamemath"
	"github.com/automoto/followtheleader/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for touch IDs to avoid allocations
var touchIDs []ebiten.TouchID

// Pointer state from the previous poll, used to report only begins and drags.
var pointer gamemath.PointerTracker

// PollTouch reports a touch event when a touch (or left mouse press) begins or the
// held pointer moves. Positions are in scene coordinates.
func PollTouch() (mathutil.Point, bool) {
	x, y, down := pointerPosition()
	return pointer.Observe(x, y, down)
}

// pointerPosition prefers the first active touch and falls back to the mouse.
func pointerPosition() (x, y int, down bool) {
	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	if len(touchIDs) > 0 {
		x, y = ebiten.TouchPosition(touchIDs[0])
		return x, y, true
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y = ebiten.CursorPosition()
		return x, y, true
	}
	return 0, 0, false
}

// HandleTouch stores the touch target and steers every zombie toward it.
func HandleTouch(ecs *ecs.ECS, p mathutil.Point) {
	entry, ok := sceneEntry(ecs)
	if !ok {
		return
	}
	touch := components.Touch.Get(entry)
	touch.Target = p
	touch.Set = true

	tags.Zombie.Each(ecs.World, func(e *donburi.Entry) {
		actor := components.Actor.Get(e)
		motion := components.Motion.Get(e)
		motion.Velocity = gamemath.SteeringVelocity(actor.Position, p, motion.Speed)
	})
}

// UpdateDebugToggle flips the debug overlay on F1.
func UpdateDebugToggle(ecs *ecs.ECS) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		cfg.Debug.Enabled = !cfg.Debug.Enabled
	}
}
