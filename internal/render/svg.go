package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/san-kum/pixie/internal/generator"
)

// SVG renders a canvas as an SVG document with the same geometry as PNG.
type SVG struct{}

func (SVG) Render(w io.Writer, canvas *generator.Canvas) error {
	side := ImageSize(canvas.Size())
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" shape-rendering="crispEdges">
<rect width="100%%" height="100%%" fill="#ffffff"/>
<g fill="%s">
`, side, side, side, side, Hex(canvas.Color()))

	for pt, on := range canvas.All() {
		if !on {
			continue
		}
		r := CellRect(pt)
		fmt.Fprintf(bw, "<rect x=\"%d\" y=\"%d\" width=\"%d\" height=\"%d\"/>\n",
			r.Min.X, r.Min.Y, r.Dx(), r.Dy())
	}

	bw.WriteString("</g>\n</svg>\n")
	return bw.Flush()
}
