package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/pixie/internal/generator"
)

const (
	glyphOn  = "██"
	glyphOff = "  "
)

// Terminal renders a canvas as block characters framed by a box border,
// colored with ANSI 256-color escapes on a white background.
type Terminal struct{}

func (Terminal) Render(w io.Writer, canvas *generator.Canvas) error {
	bw := bufio.NewWriter(w)

	line := strings.Repeat("──", canvas.Size())
	open := fmt.Sprintf("\x1b[38;5;%d;48;5;15m", ANSICode(canvas.Color()))
	const reset = "\x1b[0m"

	fmt.Fprintf(bw, "%s┌─%s─┐%s\n", open, line, reset)
	fmt.Fprintf(bw, "%s│ ", open)

	row := 0
	for pt, on := range canvas.All() {
		if pt.Y > row {
			row = pt.Y
			fmt.Fprintf(bw, " │%s\n", reset)
			fmt.Fprintf(bw, "%s│ ", open)
		}
		if on {
			bw.WriteString(glyphOn)
		} else {
			bw.WriteString(glyphOff)
		}
	}

	fmt.Fprintf(bw, " │%s\n", reset)
	fmt.Fprintf(bw, "%s└─%s─┘%s\n", open, line, reset)

	return bw.Flush()
}
