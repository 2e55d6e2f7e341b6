package icongen

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// SplashBackground is the warm off-white shown behind the splash icon.
var SplashBackground = color.NRGBA{R: 254, G: 253, B: 251, A: 255}

// Splash draws a smaller copy of the icon centered on a plain warm canvas
// of targetSize×targetSize. The icon's own alpha channel decides where the
// background shows through. An iconSize of zero or below selects the
// default, 40% of the target size.
func Splash(icon image.Image, targetSize, iconSize int) *image.NRGBA {
	if iconSize <= 0 {
		iconSize = int(float64(targetSize) * 0.4)
	}

	canvas := imaging.New(targetSize, targetSize, SplashBackground)
	small := imaging.Resize(icon, iconSize, iconSize, imaging.Lanczos)

	return imaging.OverlayCenter(canvas, small, 1.0)
}
