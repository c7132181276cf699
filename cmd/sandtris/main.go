//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"sandtris/internal/app"
	"sandtris/internal/sims/sand"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	opts := app.NewOptions()
	opts.Bind(flag.CommandLine)
	flag.Parse()

	cfg, err := opts.SandConfig()
	if err != nil {
		log.Fatalf("invalid options: %v", err)
	}
	world, err := sand.New(cfg)
	if err != nil {
		log.Fatalf("creating world: %v", err)
	}

	game := app.New(world, opts)

	ebiten.SetWindowTitle("SANDTRIS")
	ebiten.SetTPS(opts.TPS)
	ebiten.SetWindowSize(opts.ScreenWidth, opts.ScreenHeight)
	ebiten.SetFullscreen(opts.Fullscreen)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
