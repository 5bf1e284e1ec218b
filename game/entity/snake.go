package entity

import (
	"snake-grid/game/types"
)

// Snake is a head cell, its heading and the trailing body.
type Snake struct {
	Head      types.Point
	Direction types.Direction
	Body      *Body
}

func NewSnake(startPos types.Point, dir types.Direction) *Snake {
	return &Snake{
		Head:      startPos,
		Direction: dir,
		Body:      NewBody(),
	}
}

// SetDirection turns the snake unless dir would reverse it onto its own neck.
// It reports whether the direction changed.
func (s *Snake) SetDirection(dir types.Direction) bool {
	if !dir.Valid() || dir == s.Direction.Opposite() {
		return false
	}
	s.Direction = dir
	return true
}

// Advance moves the old head into the body and steps the head one cell.
func (s *Snake) Advance() types.Point {
	s.Body.PushFront(s.Head)
	s.Head = s.Head.Add(s.Direction.Delta())
	return s.Head
}

// RemoveTail drops the last body segment.
func (s *Snake) RemoveTail() {
	s.Body.PopBack()
}

// Occupies reports whether p is the head or any body segment.
func (s *Snake) Occupies(p types.Point) bool {
	return s.Head == p || s.Body.Contains(p)
}

func (s *Snake) Len() int {
	return s.Body.Len() + 1
}
