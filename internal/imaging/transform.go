package imaging

// Options selects the pixel transforms applied between decoding and
// emission. The zero value applies none.
type Options struct {
	// Darken halves every channel value, dimming the image so the LED
	// strips do not run at full brightness.
	Darken bool
}

// Transform applies opts to g.
//
// Darkening divides each channel value by two using unsigned integer
// division: the remainder is discarded, so 255 becomes 127, 1 becomes 0,
// and every result lands in [0, 127]. Because Pix is nothing but channel
// values, the per-pixel transform is a single pass over the backing slice.
//
// A darkened result is a new grid; the source grid is never modified.
// When no transform is selected, Transform returns g itself.
func Transform(g *Grid, opts Options) *Grid {
	if !opts.Darken {
		return g
	}

	out := NewGrid(g.Width, g.Height)
	for i, v := range g.Pix {
		out.Pix[i] = v / 2
	}
	return out
}
