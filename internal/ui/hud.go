//go:build ebiten

package ui

import (
	"image/color"

	"life-heatmap/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding   = 10
	headerBaseline = 14
	lineSpacing    = 16
	groupSpacing   = 8
)

// HUD renders the run parameters in a panel to the right of the heatmap.
type HUD struct {
	title    string
	snapshot core.ParameterSnapshot
	width    int
	panel    *ebiten.Image
}

// NewHUD constructs a HUD for the provided parameters and panel width.
func NewHUD(title string, snapshot core.ParameterSnapshot, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{title: title, snapshot: snapshot, width: width}
}

// Width returns the panel width in screen pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Draw paints the panel with its left edge at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.render()
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

// render draws the static parameter text once; the snapshot never changes.
func (h *HUD) render() {
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for _, group := range h.snapshot.Groups {
		y += lineSpacing + groupSpacing
		text.Draw(h.panel, group.Name, face, panelPadding, y, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		for _, p := range group.Params {
			y += lineSpacing
			text.Draw(h.panel, p.Label+": "+p.Value, face, panelPadding*2, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		}
	}
}
