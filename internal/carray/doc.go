// Package carray renders pixel grids as C array source text.
//
// The emitted declaration is a fixed dialect the poi firmware consumes
// verbatim: a constexpr uint8_t array of [height][3*width] channel bytes,
// one brace-wrapped line of lowercase hex values per pixel row. Emit
// reproduces that dialect byte for byte; none of the layout is
// configurable.
package carray
