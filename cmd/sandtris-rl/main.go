package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"sandtris/internal/app"
	"sandtris/internal/rlapp"
	"sandtris/internal/sims/sand"
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

	if err := rlapp.Run(world, opts); err != nil {
		if errors.Is(err, rlapp.ErrNoRaylib) {
			fmt.Fprintln(os.Stderr, "Re-run with `go run -tags raylib ./cmd/sandtris-rl` (needs cgo and the raylib system libraries).")
			os.Exit(2)
		}
		log.Fatal(err)
	}
}
