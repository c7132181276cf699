//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"sandtris/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	counterColor = color.RGBA{R: 245, G: 222, B: 179, A: 255}
	labelColor   = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	pausedColor  = color.RGBA{R: 230, G: 120, B: 90, A: 255}
)

// HUD draws the sand counter, the run state and the adjustable controls in
// the top-left corner of the window.
type HUD struct {
	provider core.ParameterProvider
	setter   core.IntParameterSetter
	snapshot core.ParameterSnapshot
	controls []hudControlState
}

type hudControlState struct {
	control   core.ParameterControl
	value     int
	hasValue  bool
	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// NewHUD constructs a HUD reading its values from provider. Controls are
// enabled when provider also lists and accepts them.
func NewHUD(provider core.ParameterProvider) *HUD {
	h := &HUD{provider: provider}
	if cp, ok := provider.(core.ParameterControlsProvider); ok {
		for i, ctrl := range cp.ParameterControls() {
			top := controlsTop + i*lineHeight
			minus := image.Rect(panelPadding+labelWidth, top, panelPadding+labelWidth+buttonSize, top+buttonSize)
			plus := minus.Add(image.Pt(buttonSize+valueWidth, 0))
			h.controls = append(h.controls, hudControlState{control: ctrl, top: top, minusRect: minus, plusRect: plus})
		}
	}
	if setter, ok := provider.(core.IntParameterSetter); ok {
		h.setter = setter
	}
	return h
}

// Update refreshes the cached snapshot and handles clicks on the controls.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	h.snapshot = h.provider.Parameters()
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok {
			state.hasValue = false
			continue
		}
		v, err := strconv.Atoi(param.Value)
		state.value = v
		state.hasValue = err == nil
	}
	h.handleInput()
}

func (h *HUD) handleInput() {
	if h.setter == nil || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	pt := image.Pt(ebiten.CursorPosition())
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		direction := 0
		switch {
		case pt.In(state.minusRect):
			direction = -1
		case pt.In(state.plusRect):
			direction = 1
		default:
			continue
		}
		target := state.control.Clamp(state.value + direction*state.control.Step)
		if target != state.value && h.setter.SetIntParameter(state.control.Key, target) {
			state.value = target
		}
		return
	}
}

// Draw paints the HUD onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil {
		return
	}
	face := basicfont.Face7x13
	count := "--"
	if p, ok := h.snapshot.Lookup("grains"); ok {
		count = p.Value
	}
	text.Draw(screen, fmt.Sprintf("Sand Count: %s", count), face, panelPadding, panelPadding+headerBaseline, counterColor)

	if p, ok := h.snapshot.Lookup("running"); ok && p.Value != "true" {
		text.Draw(screen, "PAUSED (space to run, down to step)", face, panelPadding, panelPadding+headerBaseline+infoSpacing, pausedColor)
	}

	for i := range h.controls {
		state := &h.controls[i]
		text.Draw(screen, state.control.Label, face, panelPadding, state.top+labelBaseline, labelColor)
		value := "--"
		if state.hasValue {
			value = strconv.Itoa(state.value)
		}
		text.Draw(screen, value, face, state.minusRect.Max.X+buttonGap, state.top+labelBaseline, labelColor)
		drawButton(screen, state.minusRect, "-", state.hasValue && state.value > state.control.Min)
		drawButton(screen, state.plusRect, "+", state.hasValue && state.value < state.control.Max)
	}
}

func drawButton(dst *ebiten.Image, rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	vector.DrawFilledRect(dst, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), bg, false)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(dst, label, face, x, y, fg)
}

const (
	panelPadding   = 10
	headerBaseline = 13
	infoSpacing    = 18
	lineHeight     = 22
	labelBaseline  = 13
	labelWidth     = 80
	buttonSize     = 16
	buttonGap      = 6
	valueWidth     = 48
	controlsTop    = panelPadding + headerBaseline + 2*infoSpacing
)
