package imaging

import (
	"bytes"
	"testing"
)

func TestTransform_Darken(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(0, 0, RGB{255, 128, 0})
	g.Set(1, 0, RGB{1, 2, 3})
	g.Set(0, 1, RGB{254, 127, 64})
	g.Set(1, 1, RGB{100, 200, 50})

	out := Transform(g, Options{Darken: true})

	want := []struct {
		x, y int
		c    RGB
	}{
		{0, 0, RGB{127, 64, 0}},
		{1, 0, RGB{0, 1, 1}},
		{0, 1, RGB{127, 63, 32}},
		{1, 1, RGB{50, 100, 25}},
	}
	for _, w := range want {
		if got := out.At(w.x, w.y); got != w.c {
			t.Errorf("darkened pixel (%d,%d): got %v, want %v", w.x, w.y, got, w.c)
		}
	}
}

func TestTransform_DarkenLeavesSource(t *testing.T) {
	g := NewGrid(1, 1)
	g.Set(0, 0, RGB{255, 255, 255})
	before := append([]uint8(nil), g.Pix...)

	out := Transform(g, Options{Darken: true})

	if out == g {
		t.Fatal("Transform with Darken should return a new grid")
	}
	if !bytes.Equal(g.Pix, before) {
		t.Errorf("source grid was modified: got %v, want %v", g.Pix, before)
	}
}

func TestTransform_Identity(t *testing.T) {
	g := NewGrid(2, 1)
	g.Set(0, 0, RGB{255, 128, 0})

	out := Transform(g, Options{})

	if out != g {
		t.Error("Transform without options should return the source grid")
	}
}

func TestTransform_DarkenRange(t *testing.T) {
	// One pixel per possible channel value; halving must floor and stay
	// within [0, 127].
	g := NewGrid(256, 1)
	for x := 0; x < 256; x++ {
		v := uint8(x)
		g.Set(x, 0, RGB{v, v, v})
	}

	out := Transform(g, Options{Darken: true})

	for x := 0; x < 256; x++ {
		want := uint8(x) / 2
		got := out.At(x, 0)
		if got.R != want || got.G != want || got.B != want {
			t.Fatalf("value %d: got %v, want all %d", x, got, want)
		}
		if got.R > 127 {
			t.Fatalf("value %d: darkened channel %d exceeds 127", x, got.R)
		}
	}
}
