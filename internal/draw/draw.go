// Package draw renders to a terminal: a half-block pixel canvas for the
// playfield and a chunked writer for text overlays.
package draw

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Color is a canvas pixel color. The zero value is an unset pixel.
type Color uint8

// Canvas colors, mapped onto the 16 ANSI colors.
const (
	ColorNone Color = iota
	ColorWhite
	ColorGray
	ColorRed
	ColorGreen
	ColorYellow
	ColorOrange
	ColorBlue
	ColorMagenta
	ColorCyan
)

// ansiFG holds the SGR foreground code of each color; background is +10.
var ansiFG = [...]int{
	ColorNone:    39,
	ColorWhite:   97,
	ColorGray:    90,
	ColorRed:     91,
	ColorGreen:   92,
	ColorYellow:  93,
	ColorOrange:  33,
	ColorBlue:    94,
	ColorMagenta: 95,
	ColorCyan:    96,
}

// FG returns the SGR foreground code for c.
func (c Color) FG() int {
	if int(c) >= len(ansiFG) {
		return ansiFG[ColorNone]
	}
	return ansiFG[c]
}

// BG returns the SGR background code for c.
func (c Color) BG() int {
	return c.FG() + 10
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// ColorReset restores default terminal colors.
const ColorReset = "\033[0m"
