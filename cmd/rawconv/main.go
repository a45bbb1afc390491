// rawconv converts a raster image into a C array of RGB channel bytes,
// written to stdout for inclusion in a firmware build.
//
// Usage:
//
//	rawconv [image-path] > src.h
//
// With no argument it converts ./src.png into an array named src. With an
// argument, the file at that path is converted and the array is named
// after the path truncated at its first dot. The argument is always
// treated as a path; rawconv has no flags. Extra arguments are ignored.
//
// Channel values are halved on the way out so full-white assets do not
// drive the LED strips at full power. Diagnostics go to stderr and the
// exit status is non-zero when the image cannot be read; the array text is
// the only thing ever written to stdout.
package main

import (
	"log"
	"os"

	"github.com/sokosun/oreore-poi/internal/carray"
	"github.com/sokosun/oreore-poi/internal/pipeline"
)

func main() {
	// Diagnostics go to stderr (stdout carries the generated array).
	log.SetOutput(os.Stderr)
	log.SetFlags(0)

	path, name := resolveTarget(os.Args)

	if _, err := pipeline.Run(path, name, os.Stdout, pipeline.Options{Darken: true}); err != nil {
		log.Fatal(err)
	}
}

// resolveTarget picks the image path and array name from the process
// argument list. Without an argument the conversion targets ./src.png and
// names the array src; otherwise the first argument is the path and the
// name is that path truncated at its first dot.
func resolveTarget(argv []string) (path, name string) {
	if len(argv) >= 2 {
		return argv[1], carray.ArrayName(argv[1])
	}
	return "src.png", "src"
}
