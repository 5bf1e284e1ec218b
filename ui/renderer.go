package ui

import (
	"fmt"

	"snake-grid/game"
	"snake-grid/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	borderPadding = 10 // Padding around game area
	lineThickness = 2
	scoreFontSize = 20
)

var (
	backgroundColor = rl.LightGray
	fieldColor      = rl.White
	gridColor       = rl.LightGray
	headColor       = rl.DarkGreen
	bodyColor       = rl.Lime
	scoreColor      = rl.DarkGray
)

// Layout is the on-screen placement of the square play field.
type Layout struct {
	OffsetX  float32
	OffsetY  float32
	Size     float32 // Side of the white field
	CellSize float32
}

// NewLayout centres the field in a width x height window.
func NewLayout(width, height float32) Layout {
	size := min(width, height)
	offsetX := (width-size)/2 + borderPadding
	offsetY := (height-size)/2 + borderPadding
	return Layout{
		OffsetX:  offsetX,
		OffsetY:  offsetY,
		Size:     size - borderPadding*2,
		CellSize: (height - offsetY*2) / types.Squares,
	}
}

// Cell returns the top-left corner of grid cell p.
func (l Layout) Cell(p types.Point) (float32, float32) {
	return l.OffsetX + float32(p.X)*l.CellSize, l.OffsetY + float32(p.Y)*l.CellSize
}

type Renderer struct {
	fruit rl.Texture2D
}

func NewRenderer(fruit rl.Texture2D) *Renderer {
	return &Renderer{fruit: fruit}
}

// Draw paints one frame of g onto c. It only reads g.
func (r *Renderer) Draw(c Canvas, g *game.Game) {
	width, height := c.Size()
	l := NewLayout(width, height)

	c.Clear(backgroundColor)
	c.Rect(l.OffsetX, l.OffsetY, l.Size, l.Size, fieldColor)

	// Grid lines
	for i := 1; i < types.Squares; i++ {
		y := l.OffsetY + l.CellSize*float32(i)
		c.Line(l.OffsetX, y, width-l.OffsetX, y, lineThickness, gridColor)
	}
	for i := 1; i < types.Squares; i++ {
		x := l.OffsetX + l.CellSize*float32(i)
		c.Line(x, l.OffsetY, x, height-l.OffsetY, lineThickness, gridColor)
	}

	hx, hy := l.Cell(g.Snake.Head)
	c.Rect(hx, hy, l.CellSize, l.CellSize, headColor)

	for i := 0; i < g.Snake.Body.Len(); i++ {
		x, y := l.Cell(g.Snake.Body.At(i))
		c.Rect(x, y, l.CellSize, l.CellSize, bodyColor)
	}

	fx, fy := l.Cell(g.Fruit)
	c.Texture(r.fruit, rl.NewRectangle(fx, fy, l.CellSize, l.CellSize), rl.White)

	c.Text(fmt.Sprintf("SCORE: %d", g.Score), borderPadding, borderPadding, scoreFontSize, scoreColor)
}
