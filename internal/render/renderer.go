package render

import (
	"fmt"
	"io"
	"sort"

	"github.com/san-kum/pixie/internal/generator"
)

// Renderer writes a canvas to w.
type Renderer interface {
	Render(w io.Writer, canvas *generator.Canvas) error
}

var renderers = map[string]Renderer{
	"term": Terminal{},
	"png":  PNG{},
	"svg":  SVG{},
}

// ForFormat returns the renderer registered under name.
func ForFormat(name string) (Renderer, error) {
	r, ok := renderers[name]
	if !ok {
		return nil, fmt.Errorf("unsupported output format '%s'", name)
	}
	return r, nil
}

// Formats lists the registered format names.
func Formats() []string {
	names := make([]string, 0, len(renderers))
	for name := range renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
