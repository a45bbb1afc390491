// Package imaging loads raster images and prepares their pixels for array
// emission.
//
// The package normalizes every supported input format to a Grid: a
// row-major sequence of 8-bit R, G, B triples, the byte layout the
// generated firmware arrays use. On top of the Grid it provides the
// darkening transform applied before emission, Lanczos resampling for
// fitting assets to a strip's LED count, and the color summary behind
// poikit identify.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left
// corner: X increases rightward, Y increases downward. Rows are emitted
// top to bottom, which the firmware maps onto successive LED refreshes.
//
// # Color Normalization
//
// Decoders hand back whatever model the file uses (palette, grayscale,
// YCbCr, 16-bit, alpha-carrying). Everything is reduced to 3x8-bit RGB:
// 16-bit channels keep their high byte, and alpha is dropped without
// compositing, so transparent pixels keep their stored color values.
// Embedded color profiles are ignored.
//
// # Error Handling
//
// Failures to open or decode a file are reported as *DecodeError wrapping
// the cause. Pure pixel operations (Transform, Resize, Stats) cannot fail
// and return no error.
package imaging
