package viz

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/pixie/internal/generator"
	"github.com/san-kum/pixie/internal/render"
)

const reportWidth = 48

// Inspect describes how word maps to a canvas of the given size: the digest,
// the selected color, the fill ratio and a plot of per-row density.
func Inspect(word string, size int) string {
	seed := generator.NewSeed(word)
	digest := hex.EncodeToString(seed.Digest())
	canvas := generator.NewCanvas(size, seed)

	var b strings.Builder
	b.WriteString(Title.Render(fmt.Sprintf("pixie %q", word)))
	b.WriteString("\n")
	b.WriteString(Separator(reportWidth))
	b.WriteString("\n")
	b.WriteString(Field("digest", digest[:32]))
	b.WriteString("\n")
	b.WriteString(Field("", digest[32:]))
	b.WriteString("\n")
	b.WriteString(Field("size", fmt.Sprintf("%dx%d", canvas.Size(), canvas.Size())))
	b.WriteString("\n")
	b.WriteString(Label.Render("color") + Swatch(render.Hex(canvas.Color()), canvas.Color().String()))
	b.WriteString("\n")

	cells := canvas.Size() * canvas.Size()
	ratio := 0.0
	if cells > 0 {
		ratio = float64(canvas.Filled()) / float64(cells)
	}
	b.WriteString(Label.Render("filled") + ProgressBar(ratio, 20) + fmt.Sprintf(" %d/%d", canvas.Filled(), cells))
	b.WriteString("\n")

	// asciigraph needs at least two points to draw a line.
	if density := canvas.RowDensity(); len(density) > 1 {
		b.WriteString("\n")
		b.WriteString(asciigraph.Plot(density,
			asciigraph.Height(6),
			asciigraph.Width(reportWidth-8),
			asciigraph.Precision(2),
			asciigraph.Caption("row density"),
		))
		b.WriteString("\n")
	}

	return b.String()
}
