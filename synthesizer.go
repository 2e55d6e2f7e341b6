package icongen

import (
	"image"

	"github.com/lenaapp/icongen/compose"
)

// Default icon geometry, matching the shipped Lena assets.
const (
	DefaultSize         = 1024
	DefaultCornerRadius = 224
	DefaultFontSize     = 520
	DefaultLetter       = "L"
)

// Synthesizer builds the app icon from scratch: a vertical sunset gradient
// clipped to a rounded square, a soft radial glow from center-top and a
// centered letter glyph with a drop shadow.
type Synthesizer struct {
	Size         int
	CornerRadius int
	Letter       string
	FontSize     float64
	FontPaths    []string
	Stops        GradientStops

	// FontUsed holds the font file the last Render resolved,
	// or the empty string when the embedded fallback was used.
	FontUsed string
}

// NewSynthesizer returns a Synthesizer preloaded with the default
// icon parameters.
func NewSynthesizer() *Synthesizer {
	return &Synthesizer{
		Size:         DefaultSize,
		CornerRadius: DefaultCornerRadius,
		Letter:       DefaultLetter,
		FontSize:     DefaultFontSize,
		FontPaths:    DefaultFontPaths,
		Stops:        SunsetStops,
	}
}

// Render produces the finished icon canvas. The rounded corner mask is
// reapplied after the glow and glyph passes, since neither of them respects
// the clipped silhouette on its own.
func (s *Synthesizer) Render() (*image.NRGBA, error) {
	img := DrawGradient(s.Stops, s.Size)
	mask := RoundedMask(s.Size, s.CornerRadius)
	ApplyMask(img, mask)

	glow := Glow(s.Size, s.Size/2, s.Size/3, s.Size/2)
	compose.New(compose.SrcOver).Draw(img, glow, image.Point{})
	ApplyMask(img, mask)

	face, fontUsed, err := ResolveFont(s.FontPaths, s.FontSize)
	if err != nil {
		return nil, err
	}
	defer face.Close()
	s.FontUsed = fontUsed

	DrawLetter(img, s.Letter, face)
	ApplyMask(img, mask)

	return img, nil
}
