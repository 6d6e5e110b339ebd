package generator_test

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/pixie/internal/generator"
)

var _ = Describe("Canvas", func() {
	words := []string{"", "a", "hello", "world", "pixie", "Grüße", "日本語", "a much longer sentence with spaces"}
	sizes := []int{0, 1, 2, 3, 4, 5, 9, 10, 16, 33}

	Describe("symmetry", func() {
		for _, word := range words {
			for _, size := range sizes {
				It(fmt.Sprintf("mirrors %q at size %d", word, size), func() {
					c := generator.NewCanvas(size, generator.NewSeed(word))
					for pt, on := range c.All() {
						mirrored, ok := c.Pixel(generator.Point{X: size - 1 - pt.X, Y: pt.Y})
						Expect(ok).To(BeTrue())
						Expect(mirrored).To(Equal(on), "pixel %v", pt)
					}
				})
			}
		}
	})

	Describe("determinism", func() {
		It("builds identical canvases from the same word", func() {
			for _, word := range words {
				a := generator.NewCanvas(10, generator.NewSeed(word))
				b := generator.NewCanvas(10, generator.NewSeed(word))
				Expect(a.Color()).To(Equal(b.Color()))
				for pt, on := range a.All() {
					other, _ := b.Pixel(pt)
					Expect(other).To(Equal(on))
				}
			}
		})
	})

	Describe("out of range lookups", func() {
		for _, size := range sizes {
			It(fmt.Sprintf("reports absence at size %d", size), func() {
				c := generator.NewCanvas(size, generator.NewSeed("bounds"))
				for _, pt := range []generator.Point{{X: size, Y: 0}, {X: 0, Y: size}, {X: size, Y: size}} {
					_, ok := c.Pixel(pt)
					Expect(ok).To(BeFalse())
				}
			})
		}
	})

	Describe("color", func() {
		It("is drawn after the grid", func() {
			seed := generator.NewSeed("hello")
			for i := 0; i < 5*2; i++ {
				seed.Next()
			}
			want := generator.SelectColor(seed)

			c := generator.NewCanvas(5, generator.NewSeed("hello"))
			Expect(c.Color()).To(Equal(want))
		})
	})
})
