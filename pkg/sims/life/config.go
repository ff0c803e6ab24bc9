package life

import (
	"strconv"

	"torus-life/pkg/core"
)

// Config holds parameters for the Life simulation.
type Config struct {
	Width   int
	Height  int
	Pattern string
}

// DefaultConfig returns the default configuration: the original 64x64 demo
// board.
func DefaultConfig() Config {
	return Config{Width: 64, Height: 64, Pattern: "demo"}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok && v != "" {
		c.Pattern = v
	}
	return c
}

// SeedForPattern maps a pattern name to its seed rule. Unknown names fall
// back to the demo pattern.
func SeedForPattern(pattern string) SeedFunc {
	switch pattern {
	case "random":
		return RandomSeed
	case "empty":
		return AllDead
	default:
		return DefaultSeed
	}
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		l, err := New(c.Width, c.Height, SeedForPattern(c.Pattern))
		if err != nil {
			return nil
		}
		return l
	})
}
