package main

import (
	"errors"
	"flag"
	"fmt"
	"math"

	"snake-grid/game"
)

const (
	defaultAsset = "apple.png"
	maxSpeed     = 60 // Seconds; keeps Interval well inside time.Duration
)

type Config struct {
	Asset  string
	Width  int
	Height int
	FPS    int
	Game   game.Config
}

// parseConfig reads flags from args. With no arguments it returns the defaults.
func parseConfig(args []string) (Config, error) {
	fs := flag.NewFlagSet("snake", flag.ContinueOnError)

	cfg := Config{Game: game.DefaultConfig()}
	var seed uint64
	fs.StringVar(&cfg.Asset, "asset", defaultAsset, "Path to the fruit sprite")
	fs.IntVar(&cfg.Width, "width", 800, "Window width in pixels")
	fs.IntVar(&cfg.Height, "height", 600, "Window height in pixels")
	fs.IntVar(&cfg.FPS, "fps", 60, "Target frames per second")
	fs.Float64Var(&cfg.Game.Speed, "speed", cfg.Game.Speed, "Initial seconds between ticks (lower = faster)")
	fs.Uint64Var(&seed, "seed", 0, "Fruit RNG seed (0 = time based)")
	fs.BoolVar(&cfg.Game.CatchUp, "catchup", false, "Run every missed tick after a stall instead of just one")
	fs.BoolVar(&cfg.Game.AvoidSnake, "avoid-snake", false, "Never spawn fruit under the snake")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if seed != 0 {
		cfg.Game.Seed = seed
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var errs []error
	if c.Asset == "" {
		errs = append(errs, errors.New("asset path is empty"))
	}
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height))
	}
	if c.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps %d must be positive", c.FPS))
	}
	if s := c.Game.Speed; math.IsNaN(s) || math.IsInf(s, 0) || s <= 0 || s > maxSpeed {
		errs = append(errs, fmt.Errorf("speed %v must be in (0, %d]", s, maxSpeed))
	}
	return errors.Join(errs...)
}
