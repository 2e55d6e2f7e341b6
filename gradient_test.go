package icongen

import (
	"testing"
)

const gradientTestSize = 200

// lerpChannel mirrors the interpolation contract: component-wise blend,
// truncated to an integer.
func lerpChannel(a, b uint8, f float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*f)
}

func TestGradient_RowFormula(t *testing.T) {
	img := DrawGradient(SunsetStops, gradientTestSize)

	for y := 0; y < gradientTestSize; y++ {
		tt := float64(y) / float64(gradientTestSize)

		var i, j int
		var f float64
		switch {
		case tt < 0.3:
			i, j, f = 0, 1, tt/0.3
		case tt < 0.6:
			i, j, f = 1, 2, (tt-0.3)/0.3
		default:
			i, j, f = 2, 3, (tt-0.6)/0.4
		}

		wantR := lerpChannel(SunsetStops[i].R, SunsetStops[j].R, f)
		wantG := lerpChannel(SunsetStops[i].G, SunsetStops[j].G, f)
		wantB := lerpChannel(SunsetStops[i].B, SunsetStops[j].B, f)

		got := img.NRGBAAt(0, y)
		if got.R != wantR || got.G != wantG || got.B != wantB {
			t.Fatalf("row %d color expected to be (%d, %d, %d). Got (%d, %d, %d)",
				y, wantR, wantG, wantB, got.R, got.G, got.B)
		}
	}
}

func TestGradient_RowsUniformAndOpaque(t *testing.T) {
	img := DrawGradient(SunsetStops, gradientTestSize)

	for y := 0; y < gradientTestSize; y++ {
		first := img.NRGBAAt(0, y)
		if first.A != 255 {
			t.Fatalf("row %d alpha expected to be 255. Got %d", y, first.A)
		}
		for x := 1; x < gradientTestSize; x++ {
			if img.NRGBAAt(x, y) != first {
				t.Fatalf("row %d expected to be uniform, pixel %d differs", y, x)
			}
		}
	}
}
