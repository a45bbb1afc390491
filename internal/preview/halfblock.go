// Package preview renders pixel grids as ANSI truecolor art for quick
// terminal inspection before an asset is baked into the firmware.
package preview

import (
	"fmt"
	"image"
	"strings"

	"golang.org/x/image/draw"

	"github.com/sokosun/oreore-poi/internal/imaging"
)

// Render converts g to lines of half-block characters.
//
// Each output cell is a lower-half block (U+2584) whose background color
// is the upper pixel and whose foreground color is the lower pixel, so a
// terminal row carries two pixel rows. Grids wider than maxCols are scaled
// down proportionally with Catmull-Rom resampling first.
//
// Every returned line is self-contained and ends with an SGR reset, safe
// to print with plain fmt.Println. An empty grid or a non-positive maxCols
// yields no lines.
func Render(g *imaging.Grid, maxCols int) []string {
	if g.Width == 0 || g.Height == 0 || maxCols <= 0 {
		return nil
	}

	targetW := g.Width
	targetH := g.Height
	if targetW > maxCols {
		targetH = targetH * maxCols / targetW
		targetW = maxCols
		if targetH < 1 {
			targetH = 1
		}
	}

	scaled := g
	if targetW != g.Width || targetH != g.Height {
		dst := image.NewNRGBA(image.Rect(0, 0, targetW, targetH))
		src := g.ToImage()
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
		scaled = imaging.FromImage(dst)
	}

	lines := make([]string, 0, (targetH+1)/2)
	for y := 0; y < targetH; y += 2 {
		var b strings.Builder
		for x := 0; x < targetW; x++ {
			top := scaled.At(x, y)

			// Odd-height grids leave the last foreground black.
			var bottom imaging.RGB
			if y+1 < targetH {
				bottom = scaled.At(x, y+1)
			}

			fmt.Fprintf(&b, "\x1b[48;2;%d;%d;%dm\x1b[38;2;%d;%d;%dm▄",
				top.R, top.G, top.B, bottom.R, bottom.G, bottom.B)
		}
		b.WriteString("\x1b[0m")
		lines = append(lines, b.String())
	}

	return lines
}
