package asset

import "testing"

// TestGlyphCoverage verifies every rune the readouts draw has a bitmap
func TestGlyphCoverage(t *testing.T) {
	for _, r := range "0123456789-BINGO" {
		if _, ok := GlyphFor(r); !ok {
			t.Errorf("Missing glyph for %q", r)
		}
	}
	if _, ok := GlyphFor('x'); ok {
		t.Error("Expected fallback for unmapped rune")
	}
}

// TestGlyphBitsFitWidth verifies no row uses bits beyond GlyphWidth
func TestGlyphBitsFitWidth(t *testing.T) {
	for r, g := range glyphs {
		for row, bits := range g {
			if bits>>GlyphWidth != 0 {
				t.Errorf("Glyph %q row %d overflows width: %05b", r, row, bits)
			}
		}
	}
}

func TestTextWidth(t *testing.T) {
	tests := []struct {
		s    string
		want int
	}{
		{"", 0},
		{"7", 5},
		{"42", 11},
		{"--", 11},
	}
	for _, tt := range tests {
		if got := TextWidth(tt.s); got != tt.want {
			t.Errorf("TextWidth(%q): expected %d, got %d", tt.s, tt.want, got)
		}
	}
}

// TestRasterize verifies plotted pixels stay inside the text box and match glyph bits
func TestRasterize(t *testing.T) {
	const s = "18"
	w := TextWidth(s)
	count := 0
	Rasterize(s, func(x, y int) {
		count++
		if x < 0 || x >= w || y < 0 || y >= GlyphHeight {
			t.Errorf("Pixel (%d,%d) outside %dx%d", x, y, w, GlyphHeight)
		}
	})

	want := 0
	for _, r := range s {
		g, _ := GlyphFor(r)
		for row := 0; row < GlyphHeight; row++ {
			for col := 0; col < GlyphWidth; col++ {
				if g.On(col, row) {
					want++
				}
			}
		}
	}
	if count != want {
		t.Errorf("Expected %d pixels, got %d", want, count)
	}
}
