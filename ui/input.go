package ui

import (
	"snake-grid/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var keyDirections = map[int32]types.Direction{
	rl.KeyUp:    types.Up,
	rl.KeyDown:  types.Down,
	rl.KeyLeft:  types.Left,
	rl.KeyRight: types.Right,
	rl.KeyW:     types.Up,
	rl.KeyS:     types.Down,
	rl.KeyA:     types.Left,
	rl.KeyD:     types.Right,
}

// DirectionForKey maps arrow keys and WASD to a direction. Any other key yields false.
func DirectionForKey(key int32) (types.Direction, bool) {
	dir, ok := keyDirections[key]
	return dir, ok
}

// LastKeyPressed drains this frame's key queue and returns the most recent key, or 0.
func LastKeyPressed() int32 {
	var last int32
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		last = key
	}
	return last
}
