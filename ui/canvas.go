package ui

import (
	"errors"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrTextureNotLoaded is returned when raylib hands back an empty texture.
var ErrTextureNotLoaded = errors.New("texture not loaded")

// Canvas is the set of drawing primitives the renderer needs.
type Canvas interface {
	Size() (width, height float32)
	Clear(c rl.Color)
	Rect(x, y, w, h float32, c rl.Color)
	Line(x1, y1, x2, y2, thick float32, c rl.Color)
	Texture(tex rl.Texture2D, dst rl.Rectangle, tint rl.Color)
	Text(text string, x, y, fontSize int32, c rl.Color)
}

// Screen draws straight to the raylib window.
type Screen struct{}

// Present wraps draw in BeginDrawing/EndDrawing. EndDrawing waits for the next frame.
func (s Screen) Present(draw func(Canvas)) {
	rl.BeginDrawing()
	draw(s)
	rl.EndDrawing()
}

func (Screen) Size() (float32, float32) {
	return float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
}

func (Screen) Clear(c rl.Color) {
	rl.ClearBackground(c)
}

func (Screen) Rect(x, y, w, h float32, c rl.Color) {
	rl.DrawRectangleRec(rl.NewRectangle(x, y, w, h), c)
}

func (Screen) Line(x1, y1, x2, y2, thick float32, c rl.Color) {
	rl.DrawLineEx(rl.NewVector2(x1, y1), rl.NewVector2(x2, y2), thick, c)
}

func (Screen) Texture(tex rl.Texture2D, dst rl.Rectangle, tint rl.Color) {
	src := rl.NewRectangle(0, 0, float32(tex.Width), float32(tex.Height))
	rl.DrawTexturePro(tex, src, dst, rl.NewVector2(0, 0), 0, tint)
}

func (Screen) Text(text string, x, y, fontSize int32, c rl.Color) {
	rl.DrawText(text, x, y, fontSize, c)
}

// LoadTexture loads an image from path into GPU memory. The window must
// already be open.
func LoadTexture(path string) (rl.Texture2D, error) {
	if _, err := os.Stat(path); err != nil {
		return rl.Texture2D{}, fmt.Errorf("failed to load texture %q: %w", path, err)
	}
	tex := rl.LoadTexture(path)
	if tex.ID == 0 {
		return tex, fmt.Errorf("failed to load texture %q: %w", path, ErrTextureNotLoaded)
	}
	return tex, nil
}
