package generator

import (
	"fmt"
	"strings"
)

type Color int

const (
	Red Color = iota
	Green
	Blue
	Purple
	Pink
	Brown
	Yellow
	Black
)

// Colors lists every color in selection order.
var Colors = []Color{Red, Green, Blue, Purple, Pink, Brown, Yellow, Black}

var colorNames = [...]string{"red", "green", "blue", "purple", "pink", "brown", "yellow", "black"}

const (
	numColors = 8
	// oversample spreads the color draw across several digest bytes per category.
	oversample = 10
	// ColorBits is the number of draws consumed by SelectColor.
	ColorBits = oversample * numColors
)

func (c Color) String() string {
	if c < 0 || int(c) >= len(colorNames) {
		return fmt.Sprintf("color(%d)", int(c))
	}
	return colorNames[c]
}

// ParseColor looks a color up by its case-insensitive name.
func ParseColor(name string) (Color, error) {
	for i, n := range colorNames {
		if strings.EqualFold(n, name) {
			return Color(i), nil
		}
	}
	return 0, fmt.Errorf("unknown color: %s", name)
}

// SelectColor consumes ColorBits draws from s and maps their sum modulo 8 to a Color.
func SelectColor(s *Seed) Color {
	sum := 0
	for i := 0; i < ColorBits; i++ {
		if s.Next() {
			sum++
		}
	}
	return Color(sum % numColors)
}
