package imaging

import (
	"image"

	"github.com/disintegration/imaging"
)

// RGB is a single pixel as three 8-bit channel values.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// Grid is a decoded image normalized to 3-channel 8-bit RGB.
//
// Pixels are stored row-major in Pix as R, G, B byte triples, so
// Pix[3*(y*Width+x)] is the red channel of the pixel at (x, y). This is
// the same byte layout the emitted arrays use, and the layout the firmware
// walks when it streams a row out to the LED strips.
type Grid struct {
	// Width is the image width in pixels.
	Width int

	// Height is the image height in pixels.
	Height int

	// Pix holds the channel bytes; its length is always 3*Width*Height.
	Pix []uint8
}

// NewGrid returns an all-black grid of the given dimensions.
func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, 3*width*height),
	}
}

// At returns the pixel at (x, y).
//
// Coordinates are 0-based with the origin at the top-left corner: X grows
// rightward, Y grows downward. Out-of-range coordinates panic, matching
// slice indexing.
func (g *Grid) At(x, y int) RGB {
	i := g.offset(x, y)
	return RGB{R: g.Pix[i], G: g.Pix[i+1], B: g.Pix[i+2]}
}

// Set stores the pixel at (x, y).
func (g *Grid) Set(x, y int, c RGB) {
	i := g.offset(x, y)
	g.Pix[i] = c.R
	g.Pix[i+1] = c.G
	g.Pix[i+2] = c.B
}

func (g *Grid) offset(x, y int) int {
	return 3 * (y*g.Width + x)
}

// FromImage converts any decoded image to a Grid.
//
// The image is first cloned to NRGBA form, which resolves palette lookups,
// expands grayscale to three channels and truncates 16-bit channels to
// their high byte. The alpha channel is then discarded outright: pixels
// are not composited against a background, so a fully transparent red
// pixel still contributes (255, 0, 0).
func FromImage(img image.Image) *Grid {
	nrgba := imaging.Clone(img)

	bounds := nrgba.Bounds()
	g := NewGrid(bounds.Dx(), bounds.Dy())
	for y := 0; y < g.Height; y++ {
		src := nrgba.Pix[y*nrgba.Stride:]
		dst := g.Pix[3*y*g.Width:]
		for x := 0; x < g.Width; x++ {
			dst[3*x] = src[4*x]
			dst[3*x+1] = src[4*x+1]
			dst[3*x+2] = src[4*x+2]
		}
	}
	return g
}

// ToImage renders the grid as an opaque NRGBA image, for handing pixels
// back to libraries that operate on image.Image.
func (g *Grid) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.Width, g.Height))
	for y := 0; y < g.Height; y++ {
		src := g.Pix[3*y*g.Width:]
		dst := img.Pix[y*img.Stride:]
		for x := 0; x < g.Width; x++ {
			dst[4*x] = src[3*x]
			dst[4*x+1] = src[3*x+1]
			dst[4*x+2] = src[3*x+2]
			dst[4*x+3] = 0xff
		}
	}
	return img
}
