package manager

import (
	"encoding/json"
	"testing"
	"time"

	"snake-grid/game/entity"
	"snake-grid/game/types"
)

func TestCheckCollision(t *testing.T) {
	cm := NewCollisionManager(types.NewSquareGrid())

	tests := []struct {
		name string
		head types.Point
		body []types.Point
		want CollisionType
	}{
		{"free cell", types.Point{X: 5, Y: 5}, nil, NoCollision},
		{"corner", types.Point{X: 11, Y: 11}, nil, NoCollision},
		{"right wall", types.Point{X: 12, Y: 5}, nil, WallCollision},
		{"left wall", types.Point{X: -1, Y: 5}, nil, WallCollision},
		{"top wall", types.Point{X: 5, Y: -1}, nil, WallCollision},
		{"bottom wall", types.Point{X: 5, Y: 12}, nil, WallCollision},
		{"own body", types.Point{X: 5, Y: 5}, []types.Point{{X: 5, Y: 6}, {X: 5, Y: 5}}, SelfCollision},
		{"wall wins over body", types.Point{X: 12, Y: 0}, []types.Point{{X: 12, Y: 0}}, WallCollision},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := entity.NewSnake(tt.head, types.Right)
			s.Body = entity.NewBody(tt.body...)
			if got := cm.CheckCollision(s); got != tt.want {
				t.Errorf("CheckCollision() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGenerateFoodInBounds(t *testing.T) {
	grid := types.NewSquareGrid()
	fm := NewFoodManager(grid, 42, false)
	s := entity.NewSnake(types.Point{}, types.Right)

	seen := make(map[types.Point]bool)
	for i := 0; i < 5000; i++ {
		p := fm.GenerateFood(s)
		if !grid.Contains(p) {
			t.Fatalf("food %v outside grid", p)
		}
		seen[p] = true
	}
	// 5000 uniform draws over 144 cells should reach every cell.
	if len(seen) != grid.Cells() {
		t.Errorf("reached %d of %d cells", len(seen), grid.Cells())
	}
}

func TestGenerateFoodDeterministicPerSeed(t *testing.T) {
	a := NewFoodManager(types.NewSquareGrid(), 7, false)
	b := NewFoodManager(types.NewSquareGrid(), 7, false)
	for i := 0; i < 50; i++ {
		if pa, pb := a.GenerateFood(nil), b.GenerateFood(nil); pa != pb {
			t.Fatalf("draw %d: %v != %v", i, pa, pb)
		}
	}
}

func TestGenerateFoodAvoidSnake(t *testing.T) {
	grid := types.Grid{Width: 3, Height: 3}
	fm := NewFoodManager(grid, 1, true)

	// Fill every cell but (2,2).
	s := entity.NewSnake(types.Point{X: 0, Y: 0}, types.Right)
	for _, p := range []types.Point{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}} {
		s.Body.PushBack(p)
	}
	for i := 0; i < 20; i++ {
		if p := fm.GenerateFood(s); p != (types.Point{X: 2, Y: 2}) {
			t.Fatalf("food spawned on snake at %v", p)
		}
	}

	// A full board falls back to an unconstrained draw instead of spinning.
	s.Body.PushBack(types.Point{X: 2, Y: 2})
	if p := fm.GenerateFood(s); !grid.Contains(p) {
		t.Fatalf("food %v outside grid", p)
	}
}

func TestStateManagerIsTerminal(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sm := NewStateManager(start)
	if sm.Phase() != Running {
		t.Fatalf("initial phase = %v", sm.Phase())
	}

	sm.RecordTick(0)
	sm.RecordTick(1)
	sm.End(start.Add(3*time.Second), WallCollision)
	sm.End(start.Add(9*time.Second), SelfCollision)
	sm.RecordTick(5)

	if !sm.IsGameOver() {
		t.Fatal("expected game over")
	}
	rec := sm.Record()
	if rec.Ticks != 2 || rec.Score != 1 {
		t.Errorf("ticks=%d score=%d, want 2 and 1", rec.Ticks, rec.Score)
	}
	if rec.Collision != WallCollision || rec.Cause != "wall" {
		t.Errorf("cause = %v/%q, want first collision kept", rec.Collision, rec.Cause)
	}
	if rec.Duration() != 3*time.Second {
		t.Errorf("Duration() = %v", rec.Duration())
	}
	if rec.UUID == "" {
		t.Error("empty session id")
	}

	data, err := rec.JSON()
	if err != nil {
		t.Fatal(err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded["cause"] != "wall" || decoded["score"] != float64(1) {
		t.Errorf("unexpected record JSON %s", data)
	}
}
