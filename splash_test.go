package icongen

import (
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
)

func TestSplash_BackgroundShowsAround(t *testing.T) {
	icon := imaging.New(100, 100, color.NRGBA{R: 10, G: 20, B: 200, A: 255})
	splash := Splash(icon, 200, 0)

	if dx, dy := splash.Bounds().Dx(), splash.Bounds().Dy(); dx != 200 || dy != 200 {
		t.Fatalf("splash expected to be 200x200. Got %dx%d", dx, dy)
	}

	// Default icon fraction is 40%: an 80px copy centered at (60, 60).
	if got := splash.NRGBAAt(0, 0); got != SplashBackground {
		t.Errorf("splash corner expected to show the background %v. Got %v", SplashBackground, got)
	}
	if got := splash.NRGBAAt(100, 100); got.B < 150 {
		t.Errorf("splash center expected to show the icon. Got %v", got)
	}
	if got := splash.NRGBAAt(50, 100); got != SplashBackground {
		t.Errorf("pixel left of the pasted icon expected to show the background. Got %v", got)
	}
}

func TestSplash_TransparentIconRegions(t *testing.T) {
	// A fully transparent icon leaves the background untouched everywhere.
	icon := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	splash := Splash(icon, 128, 64)

	for _, p := range [][2]int{{0, 0}, {64, 64}, {127, 127}} {
		if got := splash.NRGBAAt(p[0], p[1]); got != SplashBackground {
			t.Errorf("pixel (%d, %d) expected to be the background %v. Got %v", p[0], p[1], SplashBackground, got)
		}
	}
}

func TestSplash_FixedIconSize(t *testing.T) {
	icon := imaging.New(64, 64, color.NRGBA{R: 200, G: 10, B: 10, A: 255})
	splash := Splash(icon, 200, 50)

	// The icon spans [75, 125) on both axes.
	if got := splash.NRGBAAt(100, 100); got.R < 150 {
		t.Errorf("splash center expected to show the icon. Got %v", got)
	}
	if got := splash.NRGBAAt(70, 100); got != SplashBackground {
		t.Errorf("pixel outside the 50px paste expected to show the background. Got %v", got)
	}
}
