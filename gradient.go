package icongen

import (
	"image"
	"image/color"
)

// GradientStops holds the four anchor colors of the vertical background
// gradient, ordered top to bottom.
type GradientStops [4]color.NRGBA

// SunsetStops is the default icon palette.
var SunsetStops = GradientStops{
	{R: 245, G: 230, B: 211, A: 255}, // soft golden cream
	{R: 229, G: 160, B: 92, A: 255},  // warm golden
	{R: 217, G: 133, B: 59, A: 255},  // primary golden orange
	{R: 184, G: 114, B: 46, A: 255},  // deep sunset gold
}

// lerpColor interpolates between two colors component-wise,
// truncating each channel to an integer.
func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
		A: 255,
	}
}

// gradientRowColor returns the uniform color of row y for a canvas of the
// given size. The first segment blends stops 0-1 over the top 30% of the
// canvas, the second stops 1-2 up to 60%, the remainder stops 2-3.
func gradientRowColor(stops GradientStops, y, size int) color.NRGBA {
	t := float64(y) / float64(size)
	switch {
	case t < 0.3:
		return lerpColor(stops[0], stops[1], t/0.3)
	case t < 0.6:
		return lerpColor(stops[1], stops[2], (t-0.3)/0.3)
	default:
		return lerpColor(stops[2], stops[3], (t-0.6)/0.4)
	}
}

// DrawGradient fills a new size×size canvas with the vertical gradient
// described by the stops. Every row is a single fully opaque color.
func DrawGradient(stops GradientStops, size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))

	for y := 0; y < size; y++ {
		c := gradientRowColor(stops, y, size)
		i := img.PixOffset(0, y)
		for x := 0; x < size; x++ {
			img.Pix[i+0] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = c.A
			i += 4
		}
	}
	return img
}
