package app

// previewMax bounds the preview window's longer side in screen pixels.
const previewMax = 1024

// previewScale picks the largest integer zoom that keeps a w x h image
// within previewMax. Images already larger are shown unscaled.
func previewScale(w, h int) int {
	longest := max(w, h)
	if longest <= 0 {
		return 1
	}
	return max(1, previewMax/longest)
}
