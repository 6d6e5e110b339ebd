// Package render draws a [generator.Canvas] to an output sink.
//
// Three renderers are available:
//
//   - [Terminal]: ANSI 256-color block art
//   - [PNG]: raster image, 50px cells with a 25px margin
//   - [SVG]: vector image with the same geometry as PNG
//
// Every renderer keeps its own palette table indexed by [generator.Color].
// Rendering only reads the canvas, so the same canvas may be rendered any
// number of times with identical output.
package render
