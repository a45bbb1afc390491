package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Crop extracts the rectangular region r from g.
//
// The region uses the grid's own coordinate space, (0,0) at the top-left,
// with r.Max exclusive. A region that leaves the grid or is empty is an
// error; cropping the full bounds returns g unchanged.
func Crop(g *Grid, r image.Rectangle) (*Grid, error) {
	bounds := image.Rect(0, 0, g.Width, g.Height)

	if !r.In(bounds) {
		return nil, fmt.Errorf("crop region (%d,%d)-(%d,%d) outside image bounds (0,0)-(%d,%d)",
			r.Min.X, r.Min.Y, r.Max.X, r.Max.Y, g.Width, g.Height)
	}
	if r.Dx() <= 0 || r.Dy() <= 0 {
		return nil, fmt.Errorf("invalid crop region: width and height must be positive")
	}
	if r == bounds {
		return g, nil
	}

	return FromImage(imaging.Crop(g.ToImage(), r)), nil
}
