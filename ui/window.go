package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// ExitKey is handed to raylib as the quit key. KeyNull disables it; Escape is
// ignored like any other unmapped key.
const ExitKey = rl.KeyNull

// OpenWindow creates the game window and sets frame pacing.
func OpenWindow(width, height, fps int) {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(width), int32(height), "Snake")
	rl.SetExitKey(ExitKey)
	rl.SetTargetFPS(int32(fps))
}
