package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width    int
	Height   int
	CellSize int
	TPS      int
	Seed     int64
	Pattern  string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 64, Height: 64, CellSize: 10, TPS: 10, Seed: 42, Pattern: "demo"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "board height in cells")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels (GUI build)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for board reset")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "initial pattern: demo, random or empty")
}

// Map converts the board-shape options into the simulation factory's
// key/value form.
func (c *Config) Map() map[string]string {
	return map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"pattern": c.Pattern,
	}
}
