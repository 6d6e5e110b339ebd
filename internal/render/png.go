package render

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/san-kum/pixie/internal/generator"
	"golang.org/x/image/draw"
)

const (
	// PixelEdge is the side of one canvas cell in image pixels.
	PixelEdge = 50
	// Margin is the blank border around the grid.
	Margin = PixelEdge / 2
)

// ImageSize is the side of the rendered image for a canvas of the given size.
func ImageSize(size int) int {
	return PixelEdge*size + 2*Margin
}

// CellRect is the image rectangle covered by the cell at pt.
func CellRect(pt generator.Point) image.Rectangle {
	x := Margin + pt.X*PixelEdge
	y := Margin + pt.Y*PixelEdge
	return image.Rect(x, y, x+PixelEdge, y+PixelEdge)
}

// PNG renders a canvas as a square PNG image on a white background.
type PNG struct{}

// Image draws canvas into a new RGBA image without encoding it.
func (PNG) Image(canvas *generator.Canvas) *image.RGBA {
	side := ImageSize(canvas.Size())
	img := image.NewRGBA(image.Rect(0, 0, side, side))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	fill := image.NewUniform(RGB(canvas.Color()))
	for pt, on := range canvas.All() {
		if !on {
			continue
		}
		draw.Draw(img, CellRect(pt), fill, image.Point{}, draw.Src)
	}
	return img
}

func (p PNG) Render(w io.Writer, canvas *generator.Canvas) error {
	enc := png.Encoder{CompressionLevel: png.DefaultCompression}
	return enc.Encode(w, p.Image(canvas))
}
