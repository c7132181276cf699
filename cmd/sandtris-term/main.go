package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"sandtris/internal/app"
	"sandtris/internal/core"
	"sandtris/internal/sims/sand"
	"sandtris/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	opts := app.NewOptions()
	opts.Bind(flag.CommandLine)
	frame := flag.Duration("frame", 33*time.Millisecond, "terminal redraw interval")
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}

	if err := run(screen, opts, *frame); err != nil {
		screen.Fini()
		log.Fatal(err)
	}
	screen.Fini()
}

func run(screen tcell.Screen, opts *app.Options, frame time.Duration) error {
	w, h := screen.Size()
	cfg, err := term.ConfigFor(w, h, opts)
	if err != nil {
		return err
	}
	world, err := sand.New(cfg)
	if err != nil {
		return err
	}
	driver := app.NewDriver(world, opts, core.SystemClock{})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return term.New(screen, world, driver).Run(ctx, frame)
}
