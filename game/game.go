package game

import (
	"time"

	"snake-grid/game/entity"
	"snake-grid/game/manager"
	"snake-grid/game/types"
)

// Config holds the knobs a game is created with. The zero value is not
// usable; start from DefaultConfig.
type Config struct {
	Speed      float64 // Initial seconds between ticks
	Seed       uint64
	CatchUp    bool // Run every elapsed tick instead of at most one per Update
	AvoidSnake bool // Never spawn fruit on the snake
}

// DefaultConfig returns the stock tick speed and a time-based seed.
func DefaultConfig() Config {
	return Config{
		Speed: types.InitialSpeed,
		Seed:  uint64(time.Now().UnixNano()),
	}
}

// Game is the whole mutable state of one play session, owned by the frame loop.
type Game struct {
	Grid  types.Grid
	Snake *entity.Snake
	Fruit types.Point
	Score int
	Speed float64

	catchUp      bool
	lastTick     time.Time
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
}

// NewGame places the snake at (0,0) heading right with no body and draws the first fruit.
func NewGame(cfg Config, now time.Time) *Game {
	grid := types.NewSquareGrid()
	g := &Game{
		Grid:         grid,
		Snake:        entity.NewSnake(types.Point{X: 0, Y: 0}, types.Right),
		Speed:        cfg.Speed,
		catchUp:      cfg.CatchUp,
		lastTick:     now,
		collisionMgr: manager.NewCollisionManager(grid),
		foodMgr:      manager.NewFoodManager(grid, cfg.Seed, cfg.AvoidSnake),
		stateMgr:     manager.NewStateManager(now),
	}
	g.Fruit = g.foodMgr.GenerateFood(g.Snake)
	return g
}

// HandleInput turns the snake, refusing a straight reversal. It is a no-op once the game is over.
func (g *Game) HandleInput(dir types.Direction) {
	if g.IsGameOver() {
		return
	}
	g.Snake.SetDirection(dir)
}

// Interval is the current tick period.
func (g *Game) Interval() time.Duration {
	return time.Duration(g.Speed * float64(time.Second))
}

// maxCatchUp bounds the ticks one Update may run in catch-up mode.
const maxCatchUp = 16

// Update runs a tick if more than Interval has passed since the last one and
// returns how many ticks ran. Without catch-up that is at most one.
func (g *Game) Update(now time.Time) int {
	ticks := 0
	for !g.IsGameOver() && now.Sub(g.lastTick) > g.Interval() {
		if !g.catchUp || ticks == maxCatchUp-1 {
			g.lastTick = now
		} else {
			g.lastTick = g.lastTick.Add(g.Interval())
		}
		g.Tick(now)
		ticks++
		if g.lastTick.Equal(now) {
			break
		}
	}
	return ticks
}

// Tick advances the simulation by one step.
func (g *Game) Tick(now time.Time) {
	if g.IsGameOver() {
		return
	}

	head := g.Snake.Advance()

	if g.collisionMgr.IsFoodCollision(head, g.Fruit) {
		g.Fruit = g.foodMgr.GenerateFood(g.Snake)
		g.Score++
		g.Speed *= types.SpeedFactor
	} else {
		g.Snake.RemoveTail()
	}

	g.stateMgr.RecordTick(g.Score)
	if c := g.collisionMgr.CheckCollision(g.Snake); c != manager.NoCollision {
		g.stateMgr.End(now, c)
	}
}

func (g *Game) IsGameOver() bool {
	return g.stateMgr.IsGameOver()
}

func (g *Game) Phase() manager.Phase {
	return g.stateMgr.Phase()
}

func (g *Game) Record() manager.SessionRecord {
	return g.stateMgr.Record()
}
