package generator

import "iter"

// Point addresses a canvas cell. X is the column, Y the row.
type Point struct {
	X, Y int
}

// Canvas is an immutable square grid mirrored about its vertical center.
type Canvas struct {
	size  int
	grid  []bool
	color Color
}

// NewCanvas builds a size x size canvas from s.
//
// Only the left half of every row (columns below size/2) is drawn; each draw
// is written to the cell and its mirror. For odd sizes the center column is
// never drawn and stays false. The color is selected afterwards from the
// remaining bitstream. Negative sizes are treated as 0.
func NewCanvas(size int, s *Seed) *Canvas {
	if size < 0 {
		size = 0
	}

	c := &Canvas{
		size: size,
		grid: make([]bool, size*size),
	}

	middle := size / 2
	for index := range c.grid {
		if index%size >= middle {
			continue
		}
		value := s.Next()
		c.grid[index] = value
		c.grid[c.mirror(index)] = value
	}

	c.color = SelectColor(s)
	return c
}

func (c *Canvas) mirror(index int) int {
	return c.size*(index/c.size) + (c.size - 1) - index%c.size
}

func (c *Canvas) Size() int {
	return c.size
}

func (c *Canvas) Color() Color {
	return c.color
}

// Pixel reports the value at pt. The second result is false when pt lies
// outside the grid.
func (c *Canvas) Pixel(pt Point) (bool, bool) {
	if pt.X < 0 || pt.Y < 0 || pt.X >= c.size || pt.Y >= c.size {
		return false, false
	}
	return c.grid[pt.X+c.size*pt.Y], true
}

// All yields every cell in row-major order, x varying fastest.
// Each call starts a fresh iteration.
func (c *Canvas) All() iter.Seq2[Point, bool] {
	return func(yield func(Point, bool) bool) {
		for y := 0; y < c.size; y++ {
			for x := 0; x < c.size; x++ {
				if !yield(Point{X: x, Y: y}, c.grid[x+c.size*y]) {
					return
				}
			}
		}
	}
}

// Filled counts the cells that are on.
func (c *Canvas) Filled() int {
	n := 0
	for _, on := range c.grid {
		if on {
			n++
		}
	}
	return n
}

// RowDensity returns the fraction of filled cells for each row.
func (c *Canvas) RowDensity() []float64 {
	density := make([]float64, c.size)
	for pt, on := range c.All() {
		if on {
			density[pt.Y]++
		}
	}
	for i := range density {
		density[i] /= float64(c.size)
	}
	return density
}
