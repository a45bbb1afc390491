package imaging

import (
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorFrequency represents a color and how often it occurs in a grid.
type ColorFrequency struct {
	// Hex is the quantized color as "#rrggbb".
	Hex string

	// RGB is the quantized color's components.
	RGB RGB

	// Percentage of pixels that quantize to this color (0-100).
	Percentage float64
}

// StatsResult summarizes the colors of a grid.
type StatsResult struct {
	// Mean is the arithmetic mean of each channel over all pixels.
	Mean RGB

	// MeanHex is Mean as "#rrggbb".
	MeanHex string

	// Lightness is the CIE L* of the mean color, 0 (black) to 100
	// (white). Useful for judging how hard an asset will drive the
	// LEDs before darkening.
	Lightness float64

	// Dominant lists the most frequent colors, largest share first.
	Dominant []ColorFrequency
}

// Stats computes a color summary of g.
//
// Dominant colors are grouped by quantizing each channel down to a
// multiple of 16 before counting, so near-identical shades fold into one
// entry. At most count entries are returned (5 if count is not positive),
// sorted by share and then by hex value so ties come out in a stable
// order.
func Stats(g *Grid, count int) *StatsResult {
	if count <= 0 {
		count = 5
	}

	total := g.Width * g.Height
	if total == 0 {
		return &StatsResult{MeanHex: "#000000"}
	}

	var sumR, sumG, sumB uint64
	counts := make(map[RGB]int)

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := g.At(x, y)
			sumR += uint64(c.R)
			sumG += uint64(c.G)
			sumB += uint64(c.B)

			q := RGB{R: c.R / 16 * 16, G: c.G / 16 * 16, B: c.B / 16 * 16}
			counts[q]++
		}
	}

	mean := RGB{
		R: uint8(sumR / uint64(total)),
		G: uint8(sumG / uint64(total)),
		B: uint8(sumB / uint64(total)),
	}
	meanColor := toColorful(mean)
	l, _, _ := meanColor.Lab()

	dominant := make([]ColorFrequency, 0, len(counts))
	for q, n := range counts {
		dominant = append(dominant, ColorFrequency{
			Hex:        toColorful(q).Hex(),
			RGB:        q,
			Percentage: float64(n) / float64(total) * 100,
		})
	}
	sort.Slice(dominant, func(i, j int) bool {
		if dominant[i].Percentage != dominant[j].Percentage {
			return dominant[i].Percentage > dominant[j].Percentage
		}
		return dominant[i].Hex < dominant[j].Hex
	})
	if len(dominant) > count {
		dominant = dominant[:count]
	}

	return &StatsResult{
		Mean:      mean,
		MeanHex:   meanColor.Hex(),
		Lightness: l * 100,
		Dominant:  dominant,
	}
}

func toColorful(c RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}
