package icongen

import (
	"image"
	"math"
)

// glowPeak is the alpha the glow approaches at its center.
const glowPeak = 40

// Glow renders a translucent white radial glow layer of the given size.
// The glow is built from concentric 2px rings around (cx, cy): the ring at
// radius r carries alpha ⌊40·(1−r/R)²⌋, so the layer brightens toward the
// center and fades to nothing at the maximum radius. A pixel takes the alpha
// of the innermost ring covering it, which keeps the falloff monotonic.
func Glow(size, cx, cy, maxRadius int) *image.NRGBA {
	layer := image.NewNRGBA(image.Rect(0, 0, size, size))

	// The innermost rendered ring: rings shrink from maxRadius in steps of 2.
	minRing := maxRadius - 2*((maxRadius-1)/2)

	for y := 0; y < size; y++ {
		i := layer.PixOffset(0, y)
		for x := 0; x < size; x++ {
			dx, dy := float64(x-cx), float64(y-cy)
			d := math.Sqrt(dx*dx + dy*dy)
			if d > float64(maxRadius) {
				i += 4
				continue
			}

			// Round the distance up to the nearest rendered ring.
			r := maxRadius - 2*int((float64(maxRadius)-d)/2)
			if r < minRing {
				r = minRing
			}

			rho := float64(r) / float64(maxRadius)
			a := uint8(glowPeak * (1 - rho) * (1 - rho))

			layer.Pix[i+0] = 0xff
			layer.Pix[i+1] = 0xff
			layer.Pix[i+2] = 0xff
			layer.Pix[i+3] = a
			i += 4
		}
	}
	return layer
}
