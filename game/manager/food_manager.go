package manager

import (
	"snake-grid/game/entity"
	"snake-grid/game/types"

	"golang.org/x/exp/rand"
)

type FoodManager struct {
	grid       types.Grid
	rng        *rand.Rand
	avoidSnake bool
}

// NewFoodManager draws fruit from a generator seeded with seed. With
// avoidSnake unset, fruit may land on the snake.
func NewFoodManager(grid types.Grid, seed uint64, avoidSnake bool) *FoodManager {
	return &FoodManager{
		grid:       grid,
		rng:        rand.New(rand.NewSource(seed)),
		avoidSnake: avoidSnake,
	}
}

// GenerateFood picks each axis uniformly in [0, Width) and [0, Height).
func (fm *FoodManager) GenerateFood(snake *entity.Snake) types.Point {
	if !fm.avoidSnake || snake == nil || snake.Len() >= fm.grid.Cells() {
		return fm.randomPoint()
	}
	for {
		food := fm.randomPoint()
		if !snake.Occupies(food) {
			return food
		}
	}
}

func (fm *FoodManager) randomPoint() types.Point {
	return types.Point{
		X: fm.rng.Intn(fm.grid.Width),
		Y: fm.rng.Intn(fm.grid.Height),
	}
}
