package carray

import (
	"bufio"
	"fmt"
	"io"

	"github.com/sokosun/oreore-poi/internal/imaging"
)

// Emit writes g to w as a C array declaration named name.
//
// The output is an include line, the declaration header sized
// [height][3*width], one line per pixel row and a closing brace:
//
//	#include <stdint.h>
//	constexpr uint8_t src[1][3] = {
//	  { 0x7f, 0x40, 0x00  }
//	};
//
// Each row line carries the row's channel values as lowercase 0x-prefixed
// hex pairs separated by ", ", with two spaces before the closing brace.
// Every row line except the last ends with a comma. The firmware build
// includes this text directly, so the spacing is load-bearing: a changed
// byte shows up as a diff in generated headers.
//
// Emit does not validate name as a C identifier; that is the caller's
// lookout.
func Emit(w io.Writer, name string, g *imaging.Grid) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "#include <stdint.h>")
	fmt.Fprintf(bw, "constexpr uint8_t %s[%d][%d] = {\n", name, g.Height, 3*g.Width)

	for y := 0; y < g.Height; y++ {
		bw.WriteString("  {")
		for x := 0; x < g.Width; x++ {
			c := g.At(x, y)
			fmt.Fprintf(bw, " 0x%02x, 0x%02x, 0x%02x", c.R, c.G, c.B)
			if x != g.Width-1 {
				bw.WriteByte(',')
			}
		}
		if y != g.Height-1 {
			bw.WriteString("  },\n")
		} else {
			bw.WriteString("  }\n")
		}
	}

	fmt.Fprintln(bw, "};")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write array %s: %w", name, err)
	}
	return nil
}
