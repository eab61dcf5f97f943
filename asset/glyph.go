package asset

// Glyph dimensions in font pixels
const (
	GlyphWidth   = 5
	GlyphHeight  = 7
	GlyphSpacing = 1
)

// Glyph is a GlyphWidth x GlyphHeight bitmap, one byte per row
// MSB-first within the low GlyphWidth bits: bit 4 = column 0
type Glyph [GlyphHeight]uint8

// glyphs covers the runes the large readouts need: digits, placeholder dash, letters
var glyphs = map[rune]Glyph{
	'0': {0b01110, 0b10001, 0b10011, 0b10101, 0b11001, 0b10001, 0b01110},
	'1': {0b00100, 0b01100, 0b00100, 0b00100, 0b00100, 0b00100, 0b01110},
	'2': {0b01110, 0b10001, 0b00001, 0b00010, 0b00100, 0b01000, 0b11111},
	'3': {0b11110, 0b00001, 0b00001, 0b01110, 0b00001, 0b00001, 0b11110},
	'4': {0b00010, 0b00110, 0b01010, 0b10010, 0b11111, 0b00010, 0b00010},
	'5': {0b11111, 0b10000, 0b11110, 0b00001, 0b00001, 0b10001, 0b01110},
	'6': {0b00110, 0b01000, 0b10000, 0b11110, 0b10001, 0b10001, 0b01110},
	'7': {0b11111, 0b00001, 0b00010, 0b00100, 0b01000, 0b01000, 0b01000},
	'8': {0b01110, 0b10001, 0b10001, 0b01110, 0b10001, 0b10001, 0b01110},
	'9': {0b01110, 0b10001, 0b10001, 0b01111, 0b00001, 0b00010, 0b01100},
	'-': {0b00000, 0b00000, 0b00000, 0b11111, 0b00000, 0b00000, 0b00000},
	'B': {0b11110, 0b10001, 0b10001, 0b11110, 0b10001, 0b10001, 0b11110},
	'I': {0b01110, 0b00100, 0b00100, 0b00100, 0b00100, 0b00100, 0b01110},
	'N': {0b10001, 0b11001, 0b10101, 0b10011, 0b10001, 0b10001, 0b10001},
	'G': {0b01110, 0b10001, 0b10000, 0b10111, 0b10001, 0b10001, 0b01111},
	'O': {0b01110, 0b10001, 0b10001, 0b10001, 0b10001, 0b10001, 0b01110},
}

// fallback renders unknown runes as a hollow box
var fallback = Glyph{0b11111, 0b10001, 0b10001, 0b10001, 0b10001, 0b10001, 0b11111}

// GlyphFor returns the bitmap for r, false if r is drawn with the fallback box
func GlyphFor(r rune) (Glyph, bool) {
	g, ok := glyphs[r]
	if !ok {
		return fallback, false
	}
	return g, true
}

// On reports whether the font pixel at (col, row) is set
func (g Glyph) On(col, row int) bool {
	if col < 0 || col >= GlyphWidth || row < 0 || row >= GlyphHeight {
		return false
	}
	return g[row]&(1<<(GlyphWidth-1-col)) != 0
}

// TextWidth returns the width in font pixels of s drawn with GlyphSpacing
func TextWidth(s string) int {
	n := 0
	for range s {
		n++
	}
	if n == 0 {
		return 0
	}
	return n*GlyphWidth + (n-1)*GlyphSpacing
}

// Rasterize walks every set font pixel of s, left to right
// plot receives font-pixel coordinates; callers scale them to their surface
func Rasterize(s string, plot func(x, y int)) {
	originX := 0
	for _, r := range s {
		g, _ := GlyphFor(r)
		for row := 0; row < GlyphHeight; row++ {
			for col := 0; col < GlyphWidth; col++ {
				if g.On(col, row) {
					plot(originX+col, row)
				}
			}
		}
		originX += GlyphWidth + GlyphSpacing
	}
}
