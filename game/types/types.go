package types

// Squares is the side length of the play area.
const Squares = 12

// Game constants
const (
	InitialSpeed = 0.3 // Seconds between ticks at the start of a game
	SpeedFactor  = 0.9 // Applied to speed every time a fruit is eaten
)

// Point is a cell coordinate on the grid.
type Point struct {
	X, Y int
}

func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// NewSquareGrid returns the fixed Squares x Squares play area.
func NewSquareGrid() Grid {
	return Grid{Width: Squares, Height: Squares}
}

// Contains reports whether p lies in [0, Width) x [0, Height).
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells returns the number of cells on the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}
