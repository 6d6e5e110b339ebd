package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/pixie/internal/generator"
)

// ansiCodes maps each color to its xterm 256-color palette entry.
var ansiCodes = [...]int{
	generator.Red:    160,
	generator.Green:  40,
	generator.Blue:   33,
	generator.Purple: 140,
	generator.Pink:   199,
	generator.Brown:  130,
	generator.Yellow: 226,
	generator.Black:  232,
}

var rgbColors = [...]color.RGBA{
	generator.Red:    {222, 48, 48, 255},
	generator.Green:  {109, 212, 123, 255},
	generator.Blue:   {48, 146, 227, 255},
	generator.Purple: {220, 187, 252, 255},
	generator.Pink:   {227, 97, 177, 255},
	generator.Brown:  {190, 99, 9, 255},
	generator.Yellow: {254, 255, 41, 255},
	generator.Black:  {0, 0, 0, 255},
}

// ANSICode returns the 256-color code for c. Unknown colors fall back to black.
func ANSICode(c generator.Color) int {
	if c < 0 || int(c) >= len(ansiCodes) {
		return ansiCodes[generator.Black]
	}
	return ansiCodes[c]
}

// RGB returns the opaque fill color for c. Unknown colors fall back to black.
func RGB(c generator.Color) color.RGBA {
	if c < 0 || int(c) >= len(rgbColors) {
		return rgbColors[generator.Black]
	}
	return rgbColors[c]
}

// Hex returns the RGB fill of c as a #rrggbb string.
func Hex(c generator.Color) string {
	col, _ := colorful.MakeColor(RGB(c))
	return col.Hex()
}
