package main

import (
	"log"
	"os"
	"time"

	"snake-grid/game"
	"snake-grid/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	log.SetPrefix("snake: ")
	log.SetFlags(log.LstdFlags | log.Lmsgprefix)

	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ui.OpenWindow(cfg.Width, cfg.Height, cfg.FPS)
	defer rl.CloseWindow()

	fruit, err := ui.LoadTexture(cfg.Asset)
	if err != nil {
		rl.CloseWindow()
		log.Fatalf("startup: %v", err)
	}
	defer rl.UnloadTexture(fruit)

	g := game.NewGame(cfg.Game, time.Now())
	log.Printf("session %s started (seed %d)", g.Record().UUID, cfg.Game.Seed)

	run(g, ui.NewRenderer(fruit), ui.Screen{})

	rec := g.Record()
	if g.IsGameOver() {
		log.Printf("game over: %s collision, score %d after %d ticks (%s)",
			rec.Cause, rec.Score, rec.Ticks, rec.Duration().Round(time.Millisecond))
	} else {
		log.Printf("window closed with score %d", g.Score)
	}
	if data, err := rec.JSON(); err == nil {
		log.Printf("record %s", data)
	}
}

// run drives input, the tick gate and the draw pass once per frame until the
// game ends or the window is closed.
func run(g *game.Game, renderer *ui.Renderer, screen ui.Screen) {
	for !rl.WindowShouldClose() {
		if g.IsGameOver() {
			return
		}

		if dir, ok := ui.DirectionForKey(ui.LastKeyPressed()); ok {
			g.HandleInput(dir)
		}

		g.Update(time.Now())

		if g.IsGameOver() {
			return
		}

		screen.Present(func(c ui.Canvas) {
			renderer.Draw(c, g)
		})
	}
}
