//go:build !ebiten

package main

import (
	"flag"
	"log"

	"torus-life/internal/app"
	"torus-life/internal/term"
	"torus-life/pkg/core"
	_ "torus-life/pkg/sims/life"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()["life"]
	if !ok {
		log.Fatal("life simulation not registered")
	}
	board, ok := factory(cfg.Map()).(term.Board)
	if !ok {
		log.Fatal("life factory returned an unusable board")
	}
	board.Reset(cfg.Seed)

	ui, err := term.New(board, cfg.TPS, cfg.Seed)
	if err != nil {
		log.Fatal(err)
	}
	ui.Run()
}
