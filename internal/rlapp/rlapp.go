//go:build raylib

// Package rlapp draws the sand world in a raylib window.
package rlapp

import (
	"fmt"
	"image/color"

	"sandtris/internal/app"
	"sandtris/internal/core"
	"sandtris/internal/render"
	"sandtris/internal/sims/sand"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var wheat = color.RGBA{R: 245, G: 222, B: 179, A: 255}

// Run opens a window and drives world until the window is closed.
func Run(world *sand.World, opts *app.Options) error {
	rl.InitWindow(int32(opts.ScreenWidth), int32(opts.ScreenHeight), "SANDTRIS")
	defer rl.CloseWindow()
	if !rl.IsWindowReady() {
		return fmt.Errorf("rlapp: window initialisation failed")
	}
	rl.SetTargetFPS(int32(opts.TPS))
	if opts.Fullscreen && !rl.IsWindowFullscreen() {
		rl.ToggleFullscreen()
	}

	driver := app.NewDriver(world, opts, core.SystemClock{})
	lines := render.GridLines(world.Size().W*opts.GrainSize, world.Size().H*opts.GrainSize, opts.GrainSize)
	for !rl.WindowShouldClose() {
		driver.Frame(app.Input{
			TogglePause:      rl.IsKeyReleased(rl.KeySpace),
			ToggleGrid:       rl.IsKeyReleased(rl.KeyG),
			StepOnce:         rl.IsKeyReleased(rl.KeyDown),
			ToggleFullscreen: rl.IsKeyPressed(rl.KeyF),
			Reset:            rl.IsKeyReleased(rl.KeyR),
		})
		if driver.Fullscreen() != rl.IsWindowFullscreen() {
			rl.ToggleFullscreen()
		}

		rl.BeginDrawing()
		rl.ClearBackground(render.Background)
		drawSand(world.Grid(), int32(opts.GrainSize))
		if driver.GridOn() {
			for _, l := range lines {
				rl.DrawLine(int32(l.X0), int32(l.Y0), int32(l.X1), int32(l.Y1), render.GridColor)
			}
		}
		rl.DrawText(fmt.Sprintf("Sand Count: %d", world.Count()), 10, 10, 20, wheat)
		rl.EndDrawing()
	}
	return nil
}

func drawSand(g *sand.Grid, size int32) {
	cells := g.Cells()
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			c := cells[g.Index(y, x)]
			if !c.Full {
				continue
			}
			rl.DrawRectangle(int32(x)*size, int32(y)*size, size, size, c.Color)
		}
	}
}
