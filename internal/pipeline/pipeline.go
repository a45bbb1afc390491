package pipeline

import (
	"image"
	"io"

	"github.com/sokosun/oreore-poi/internal/carray"
	"github.com/sokosun/oreore-poi/internal/imaging"
)

// Options controls a full image-to-array conversion.
type Options struct {
	// Crop bounds the conversion to a sub-rectangle of the source,
	// applied before any resampling. The zero rectangle disables
	// cropping.
	Crop image.Rectangle

	// Darken halves every channel value before emission.
	Darken bool

	// Width and Height resample the image before the transform runs.
	// Zero keeps the source dimension; if only one is set the other is
	// derived so the aspect ratio holds.
	Width  int
	Height int
}

// Result reports what a conversion emitted.
type Result struct {
	// Width and Height are the emitted grid's dimensions in pixels,
	// after any cropping and resampling.
	Width  int
	Height int
}

// Run converts the image at path into a C array named name, written to w.
//
// Stages run in a fixed order: decode and normalize to RGB, crop if
// requested, resample if requested, darken if requested, emit. Nothing is
// written to w until the image has decoded, so a failure in the early
// stages leaves w untouched.
func Run(path, name string, w io.Writer, opts Options) (*Result, error) {
	g, err := imaging.Load(path)
	if err != nil {
		return nil, err
	}

	if !opts.Crop.Empty() {
		g, err = imaging.Crop(g, opts.Crop)
		if err != nil {
			return nil, err
		}
	}

	if opts.Width > 0 || opts.Height > 0 {
		g = imaging.Resize(g, opts.Width, opts.Height)
	}

	g = imaging.Transform(g, imaging.Options{Darken: opts.Darken})

	if err := carray.Emit(w, name, g); err != nil {
		return nil, err
	}

	return &Result{Width: g.Width, Height: g.Height}, nil
}
