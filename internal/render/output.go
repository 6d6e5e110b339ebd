package render

import (
	"io"
	"os"

	"github.com/san-kum/pixie/internal/generator"
)

// Stdout is the destination name meaning standard output.
const Stdout = "-"

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// Open returns a writer for dest, creating or truncating the file.
// Stdout is returned as-is and is never closed.
func Open(dest string) (io.WriteCloser, error) {
	if dest == Stdout {
		return nopCloser{os.Stdout}, nil
	}

	f, err := os.OpenFile(dest, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return nil, &OutputError{Dest: dest, Op: "cannot open", Err: err}
	}
	return f, nil
}

// ToFile renders canvas with r into dest.
func ToFile(r Renderer, dest string, canvas *generator.Canvas) (err error) {
	w, err := Open(dest)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = &OutputError{Dest: dest, Op: "cannot close", Err: cerr}
		}
	}()

	if err := r.Render(w, canvas); err != nil {
		return &OutputError{Dest: dest, Op: "cannot generate " + formatName(r) + " to", Err: err}
	}
	return nil
}

func formatName(r Renderer) string {
	switch r.(type) {
	case PNG:
		return "PNG"
	case SVG:
		return "SVG"
	case Terminal:
		return "text"
	default:
		return "image"
	}
}
