//go:build ebiten

package app

import (
	"errors"
	"image"

	"life-heatmap/internal/core"
	"life-heatmap/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 220

// GUIAvailable reports whether Preview can open a window in this build.
const GUIAvailable = true

// Viewer adapts a rendered heatmap to the ebiten.Game interface.
type Viewer struct {
	img   *ebiten.Image
	hud   *ui.HUD
	w, h  int
	scale int
}

// NewViewer constructs a Viewer showing img at an integer scale.
func NewViewer(img *image.RGBA, snapshot core.ParameterSnapshot, scale int) *Viewer {
	if scale <= 0 {
		scale = 1
	}
	b := img.Bounds()
	return &Viewer{
		img:   ebiten.NewImageFromImage(img),
		hud:   ui.NewHUD("Life heatmap", snapshot, hudWidth),
		w:     b.Dx(),
		h:     b.Dy(),
		scale: scale,
	}
}

// Update closes the window on q or Escape.
func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the heatmap and the parameter panel.
func (v *Viewer) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(v.scale), float64(v.scale))
	screen.DrawImage(v.img, op)
	v.hud.Draw(screen, v.w*v.scale, v.h*v.scale)
}

// Layout returns the logical screen size.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.w*v.scale + v.hud.Width(), v.h * v.scale
}

// Preview opens a window showing img until it is closed.
func Preview(img *image.RGBA, snapshot core.ParameterSnapshot) error {
	b := img.Bounds()
	scale := previewScale(b.Dx(), b.Dy())
	v := NewViewer(img, snapshot, scale)
	w, h := v.Layout(0, 0)

	ebiten.SetWindowTitle("life heatmap")
	ebiten.SetWindowSize(w, h)
	if err := ebiten.RunGame(v); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
