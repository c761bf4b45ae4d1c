// Package render turns accumulated heat counters into raster images.
package render

import (
	"image"

	"golang.org/x/image/draw"

	"life-heatmap/internal/heat"
)

// DefaultStrength leaves counters unamplified.
const DefaultStrength = 1

// Heatmap maps every counter to luminance min(255, count*strength), written
// to the red, green and blue channels with full opacity. Strengths below 1
// are treated as DefaultStrength. The buffer is only read.
func Heatmap(b *heat.Buffer, strength int) *image.RGBA {
	if strength < 1 {
		strength = DefaultStrength
	}
	size := b.Size()
	img := image.NewRGBA(image.Rect(0, 0, size.W, size.H))
	fillLuminanceRGBA(img.Pix, b.Counts(), strength)
	return img
}

// Upscale enlarges img by an integer factor with nearest-neighbour sampling
// so that each cell stays a crisp square. Factors below 2 return img as is.
func Upscale(img *image.RGBA, factor int) *image.RGBA {
	if factor < 2 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
