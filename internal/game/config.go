package game

import (
	"fmt"

	"github.com/samdwyer/terracreatures/internal/world"
)

// Config holds game configuration options. Field tags are read by
// config.ParseEnv under the TERRACREATURES_ prefix.
type Config struct {
	// Seed for random number generation. Used for reproducible map generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `env:"SEED" envDefault:"0"`

	MapWidth  int `env:"MAP_WIDTH" envDefault:"20"`
	MapHeight int `env:"MAP_HEIGHT" envDefault:"15"`

	// FPS is the update/render rate of Run.
	FPS int `env:"FPS" envDefault:"30"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		MapWidth:  world.DefaultWidth,
		MapHeight: world.DefaultHeight,
		FPS:       30,
	}
}

// Validate rejects dimensions and rates the game cannot run with.
func (c Config) Validate() error {
	if c.MapWidth < 3 || c.MapHeight < 3 {
		return fmt.Errorf("map size %dx%d is too small", c.MapWidth, c.MapHeight)
	}
	if c.FPS <= 0 || c.FPS > 240 {
		return fmt.Errorf("fps %d out of range (1-240)", c.FPS)
	}
	return nil
}
