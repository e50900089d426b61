package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/pixel-shooter/core"
	"github.com/automoto/pixel-shooter/input"
	"github.com/automoto/pixel-shooter/shared/gamemath"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls keyboard, mouse and gamepads and forwards the result to
// the loop's input holder. Layout maps the window 1:1 onto the arena, so the
// cursor position is already in arena space.
func UpdateInput(e *ecs.ECS) {
	f := frameOf(e)
	if f == nil {
		return
	}

	// Swap buffers: current becomes previous, then zero out current
	f.Previous = f.Current
	f.Current = [ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				f.Current[actionID] = true
			}
		}
		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				f.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					f.Current[actionID] = true
				}
			}
		}
	}

	if f.justPressed(ActionBack) {
		f.Controller.Submit(core.Leave{})
		return
	}

	holder := f.Controller.Input()
	if stick := analogStick(gamepadIDs); stick != gamemath.Zero {
		holder.SetMove(stick)
	} else {
		holder.SetKeys(
			f.Current[ActionMoveUp],
			f.Current[ActionMoveDown],
			f.Current[ActionMoveLeft],
			f.Current[ActionMoveRight],
		)
	}

	// Held fire queues a shot every frame; the weapon cooldown in the
	// simulation decides which ones leave the barrel.
	if f.Current[ActionFire] {
		x, y := ebiten.CursorPosition()
		holder.Fire(gamemath.Vec2{X: float64(x), Y: float64(y)})
	}
	if f.Current[ActionFireNearest] && f.Snapshot != nil {
		if target, ok := f.Snapshot.NearestEnemy(); ok {
			holder.Fire(target)
		}
	}
}

// analogStick returns the first left stick outside the deadzone.
func analogStick(gamepads []ebiten.GamepadID) gamemath.Vec2 {
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		raw := gamemath.Vec2{
			X: ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal),
			Y: ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical),
		}
		if stick := input.Deadzone(raw, Input.AnalogDeadzone); stick != gamemath.Zero {
			return stick
		}
	}
	return gamemath.Zero
}

// ReleaseInput clears held movement so the player stops when the game scene
// is left while a key is down.
func ReleaseInput(e *ecs.ECS) {
	if f := frameOf(e); f != nil {
		f.Controller.Input().Reset()
		f.Current = [ActionCount]bool{}
		f.Previous = [ActionCount]bool{}
	}
}
