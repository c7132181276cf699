//go:build ebiten

package app

import (
	"sandtris/internal/core"
	"sandtris/internal/render"
	"sandtris/internal/sims/sand"
	"sandtris/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a sand world to the ebiten.Game interface.
type Game struct {
	world   *sand.World
	driver  *Driver
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	width, height int
	scale         int
}

// New constructs a Game for the provided world.
func New(world *sand.World, opts *Options) *Game {
	size := world.Size()
	driver := NewDriver(world, opts, core.SystemClock{})
	return &Game{
		world:   world,
		driver:  driver,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(size.W*opts.GrainSize, size.H*opts.GrainSize, opts.GrainSize),
		hud:     ui.NewHUD(driver),
		width:   opts.ScreenWidth,
		height:  opts.ScreenHeight,
		scale:   opts.GrainSize,
	}
}

// Driver exposes the frame driver.
func (g *Game) Driver() *Driver { return g.driver }

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.driver.Frame(Input{
		TogglePause:      inpututil.IsKeyJustPressed(ebiten.KeySpace),
		ToggleGrid:       inpututil.IsKeyJustPressed(ebiten.KeyG),
		ToggleFullscreen: inpututil.IsKeyJustPressed(ebiten.KeyF),
		StepOnce:         inpututil.IsKeyJustPressed(ebiten.KeyArrowDown),
		Reset:            inpututil.IsKeyJustPressed(ebiten.KeyR),
	})
	if g.driver.Fullscreen() != ebiten.IsFullscreen() {
		ebiten.SetFullscreen(g.driver.Fullscreen())
	}
	g.hud.Update()
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.Background)
	g.painter.Blit(screen, g.world.Grid(), render.Background, g.scale)
	g.overlay.Draw(screen, g.driver.GridOn())
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
