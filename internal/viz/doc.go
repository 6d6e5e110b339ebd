// Package viz styles human-facing CLI output.
//
// Rendered identicons never pass through this package; their escape codes
// are fixed by [render.Terminal]. viz only decorates messages and the
// inspect report, and lipgloss drops the styling when stdout is not a
// terminal.
package viz
