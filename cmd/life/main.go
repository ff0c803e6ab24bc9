//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"torus-life/internal/app"
	"torus-life/pkg/core"
	_ "torus-life/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()["life"]
	if !ok {
		log.Fatal("life simulation not registered")
	}
	board, ok := factory(cfg.Map()).(app.Board)
	if !ok {
		log.Fatal("life factory returned an unusable board")
	}
	board.Reset(cfg.Seed)

	game := app.New(board, cfg.CellSize, cfg.Seed)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("torus-life — " + board.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
