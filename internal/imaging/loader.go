package imaging

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"

	_ "github.com/sergeymakinen/go-bmp" // Register BMP format decoder
	_ "golang.org/x/image/webp"         // Register WebP format decoder
)

// DecodeError reports an image file that could not be opened or decoded.
//
// It wraps the underlying cause, so callers can distinguish a missing file
// from a corrupt one with errors.Is/errors.As while still matching the
// whole class with a single errors.As(*DecodeError) check.
type DecodeError struct {
	// Path is the file path as the caller supplied it.
	Path string

	// Err is the underlying open or decode failure.
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Load reads the image file at path and normalizes it to an RGB grid.
//
// Supported formats are PNG, JPEG, GIF, BMP and WebP, detected by content
// rather than file extension. Whatever color model the decoder produces
// (palette, grayscale, alpha-carrying, 16-bit) is converted to plain
// 3-channel 8-bit RGB; see FromImage for the conversion rules.
//
// Any failure to open or decode the file is returned as a *DecodeError
// wrapping the cause. Nothing is cached: each call reads the file again.
func Load(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	return FromImage(img), nil
}

// Info contains metadata about an image file.
type Info struct {
	// Width is the image width in pixels.
	Width int

	// Height is the image height in pixels.
	Height int

	// Format is the registered decoder name: "png", "jpeg", "gif",
	// "bmp" or "webp".
	Format string

	// ColorDepth indicates the bit depth per channel: "8-bit" or "16-bit".
	ColorDepth string

	// HasAlpha indicates whether the file carries an alpha channel.
	// The loader discards alpha either way.
	HasAlpha bool

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64
}

// Describe reports metadata about an image file without decoding its
// pixels.
//
// Only the header is parsed, so Describe stays cheap on large files.
// Format detection is by content, and depth and alpha presence derive
// from the color model the decoder advertises. Open and parse failures
// come back as *DecodeError.
func Describe(path string) (*Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	hasAlpha := false
	colorDepth := "8-bit"
	switch cfg.ColorModel {
	case color.NRGBAModel, color.NYCbCrAModel:
		hasAlpha = true
	case color.NRGBA64Model, color.RGBA64Model:
		hasAlpha = cfg.ColorModel == color.NRGBA64Model
		colorDepth = "16-bit"
	case color.Gray16Model:
		colorDepth = "16-bit"
	}

	return &Info{
		Width:         cfg.Width,
		Height:        cfg.Height,
		Format:        format,
		ColorDepth:    colorDepth,
		HasAlpha:      hasAlpha,
		FileSizeBytes: stat.Size(),
	}, nil
}
