// Package output writes rendered heatmaps to disk.
package output

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// TimeLayout names files day-month-year-hour-minute-second.
const TimeLayout = "02-01-2006-15-04-05"

// Filename returns the image name for a run finished at t.
func Filename(t time.Time) string {
	return t.Format(TimeLayout) + ".png"
}

// WritePNG encodes img into dir under a name derived from now and returns
// the absolute path. The image is written to a temporary file first and
// renamed into place, so a failed write leaves nothing behind.
func WritePNG(dir string, img image.Image, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	path, err := filepath.Abs(filepath.Join(dir, Filename(now)))
	if err != nil {
		return "", fmt.Errorf("resolve output path: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".heatmap-*.png")
	if err != nil {
		return "", fmt.Errorf("create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := png.Encode(tmp, img); err != nil {
		tmp.Close()
		return "", fmt.Errorf("encode png: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("move image into place: %w", err)
	}
	return path, nil
}
