package scene

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// paletteColor returns the i'th of n evenly spaced hues, so adjacent boxes
// are visually distinct at any scene size.
func paletteColor(i, n int) colorful.Color {
	if n < 1 {
		n = 1
	}
	hue := 360. * float64(i) / float64(n)
	return colorful.Hsv(hue, 0.65, 0.9)
}

// FaceColors derives a color per mesh face from the face count and the
// provided source. It holds no state of its own; the same seeded source
// always produces the same list.
func FaceColors(n int, r *rand.Rand) []colorful.Color {
	colors := make([]colorful.Color, n)
	for i := range colors {
		colors[i] = colorful.Hsv(360.*r.Float64(), 0.4+0.4*r.Float64(), 0.7+0.3*r.Float64())
	}
	return colors
}
