package imaging

import (
	"github.com/anthonynsimon/bild/transform"
)

// Resize resamples g to the given dimensions using a Lanczos filter.
//
// A non-positive width or height is computed from the other dimension so
// the aspect ratio is preserved, never dropping below one pixel. If both
// are non-positive, or the target equals the source size, g is returned
// unchanged.
func Resize(g *Grid, width, height int) *Grid {
	if width <= 0 && height <= 0 {
		return g
	}
	if width <= 0 {
		width = g.Width * height / g.Height
		if width < 1 {
			width = 1
		}
	}
	if height <= 0 {
		height = g.Height * width / g.Width
		if height < 1 {
			height = 1
		}
	}
	if width == g.Width && height == g.Height {
		return g
	}

	resized := transform.Resize(g.ToImage(), width, height, transform.Lanczos)
	return FromImage(resized)
}
