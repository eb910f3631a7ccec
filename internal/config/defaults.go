package config

import (
	_ "embed"
)

//go:embed defaults/2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Size: 4,
		},
		Tiles: TilesConfig{
			Target:          2048,
			FourProbability: 0.1,
			InitialSpawns:   2,
		},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for writing a starter
// config file.
func DefaultYAML() []byte {
	return defaultYAML
}
