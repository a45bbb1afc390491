package imaging

import (
	"math"
	"testing"
)

func TestStats_Uniform(t *testing.T) {
	g := NewGrid(4, 4)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			g.Set(x, y, RGB{255, 0, 0})
		}
	}

	stats := Stats(g, 5)

	if stats.Mean != (RGB{255, 0, 0}) {
		t.Errorf("Mean: got %v, want {255 0 0}", stats.Mean)
	}
	if stats.MeanHex != "#ff0000" {
		t.Errorf("MeanHex: got %q, want %q", stats.MeanHex, "#ff0000")
	}
	// CIE L* of pure red is about 53.2.
	if math.Abs(stats.Lightness-53.2) > 1.0 {
		t.Errorf("Lightness: got %.2f, want about 53.2", stats.Lightness)
	}
	if len(stats.Dominant) != 1 {
		t.Fatalf("Dominant length: got %d, want 1", len(stats.Dominant))
	}
	if stats.Dominant[0].Percentage != 100 {
		t.Errorf("dominant share: got %.1f, want 100", stats.Dominant[0].Percentage)
	}
}

func TestStats_DominantOrder(t *testing.T) {
	// 80% red, 20% green.
	g := NewGrid(10, 10)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if y < 8 {
				g.Set(x, y, RGB{255, 0, 0})
			} else {
				g.Set(x, y, RGB{0, 255, 0})
			}
		}
	}

	stats := Stats(g, 5)

	if len(stats.Dominant) != 2 {
		t.Fatalf("Dominant length: got %d, want 2", len(stats.Dominant))
	}
	if stats.Dominant[0].Hex != "#f00000" || stats.Dominant[0].Percentage != 80 {
		t.Errorf("first dominant: got %s %.1f%%, want #f00000 80%%",
			stats.Dominant[0].Hex, stats.Dominant[0].Percentage)
	}
	if stats.Dominant[1].Hex != "#00f000" || stats.Dominant[1].Percentage != 20 {
		t.Errorf("second dominant: got %s %.1f%%, want #00f000 20%%",
			stats.Dominant[1].Hex, stats.Dominant[1].Percentage)
	}
}

func TestStats_QuantizationGroups(t *testing.T) {
	// Shades within one 16-step bucket fold into a single entry.
	g := NewGrid(3, 1)
	g.Set(0, 0, RGB{240, 0, 0})
	g.Set(1, 0, RGB{248, 4, 8})
	g.Set(2, 0, RGB{255, 15, 15})

	stats := Stats(g, 5)

	if len(stats.Dominant) != 1 {
		t.Fatalf("Dominant length: got %d, want 1", len(stats.Dominant))
	}
	if stats.Dominant[0].Hex != "#f00000" {
		t.Errorf("dominant hex: got %q, want %q", stats.Dominant[0].Hex, "#f00000")
	}
}

func TestStats_CountCap(t *testing.T) {
	g := NewGrid(3, 1)
	g.Set(0, 0, RGB{255, 0, 0})
	g.Set(1, 0, RGB{0, 255, 0})
	g.Set(2, 0, RGB{0, 0, 255})

	stats := Stats(g, 2)

	if len(stats.Dominant) != 2 {
		t.Errorf("Dominant length: got %d, want 2", len(stats.Dominant))
	}
}

func TestStats_MeanAveragesChannels(t *testing.T) {
	g := NewGrid(2, 1)
	g.Set(0, 0, RGB{100, 0, 50})
	g.Set(1, 0, RGB{200, 50, 150})

	stats := Stats(g, 5)

	if stats.Mean != (RGB{150, 25, 100}) {
		t.Errorf("Mean: got %v, want {150 25 100}", stats.Mean)
	}
	if stats.MeanHex != "#961964" {
		t.Errorf("MeanHex: got %q, want %q", stats.MeanHex, "#961964")
	}
}
