package app

import (
	"flag"
	"testing"
)

func TestConfigBindAndMap(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)

	err := fs.Parse([]string{"-w", "32", "-h", "16", "-tps", "30", "-seed", "7", "-pattern", "random"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Width != 32 || cfg.Height != 16 || cfg.TPS != 30 || cfg.Seed != 7 || cfg.Pattern != "random" {
		t.Fatalf("parsed config = %+v", cfg)
	}

	m := cfg.Map()
	if m["w"] != "32" || m["h"] != "16" || m["pattern"] != "random" {
		t.Fatalf("Map() = %v", m)
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	if cfg.Width != 64 || cfg.Height != 64 || cfg.CellSize != 10 || cfg.Pattern != "demo" {
		t.Fatalf("defaults = %+v, want the 64x64 demo board", cfg)
	}
}
