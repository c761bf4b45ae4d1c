//go:build !ebiten

package app

import (
	"image"

	"life-heatmap/internal/core"
)

// GUIAvailable reports whether Preview can open a window in this build.
const GUIAvailable = false

// Preview always reports that the GUI build tag is missing.
func Preview(*image.RGBA, core.ParameterSnapshot) error {
	return ErrNoGUI
}
