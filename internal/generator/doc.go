// Package generator turns a word into a reproducible identicon pattern.
//
// The package is built from three pieces:
//
//   - [Seed]: SHA-256 digest of the word exposed as an infinite cyclic bitstream
//   - [Canvas]: square grid with left-right mirror symmetry drawn from a Seed
//   - [Color]: one of eight named colors picked from the remaining bitstream
//
// # Example
//
//	seed := generator.NewSeed("hello")
//	canvas := generator.NewCanvas(5, seed)
//	for pt, on := range canvas.All() {
//		...
//	}
//
// # Draw Order
//
// A Seed is consumed destructively. NewCanvas draws the grid bits first and
// the color bits second; changing that order changes every output.
package generator
