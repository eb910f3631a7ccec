// Package config provides YAML-based configuration loading for the game.
package config

import "fmt"

// Board size limits offered by the UI. The engine itself accepts any size
// >= 2; these bound what the CLI lets players pick.
const (
	MinBoardSize = 3
	MaxBoardSize = 8
)

// Config contains all game configuration.
type Config struct {
	Board BoardConfig `yaml:"board"`
	Tiles TilesConfig `yaml:"tiles"`
}

// BoardConfig defines the playing grid.
type BoardConfig struct {
	Size int `yaml:"size"` // side length, UI range 3-8
}

// TilesConfig defines tile spawning and the win condition.
type TilesConfig struct {
	Target          int     `yaml:"target"`           // win tile, 0 = endless
	FourProbability float64 `yaml:"four_probability"` // chance a spawn is a 4
	InitialSpawns   int     `yaml:"initial_spawns"`   // tiles seeded at start
}

// Validate checks the configuration for values the engine would reject.
func (c Config) Validate() error {
	if c.Board.Size < 2 {
		return fmt.Errorf("config: board size %d is below minimum 2", c.Board.Size)
	}
	if c.Tiles.FourProbability < 0 || c.Tiles.FourProbability > 1 {
		return fmt.Errorf("config: four_probability %v outside [0, 1]", c.Tiles.FourProbability)
	}
	if c.Tiles.InitialSpawns < 1 {
		return fmt.Errorf("config: initial_spawns %d must be at least 1", c.Tiles.InitialSpawns)
	}
	if c.Tiles.Target < 0 {
		return fmt.Errorf("config: target %d must not be negative", c.Tiles.Target)
	}
	return nil
}
