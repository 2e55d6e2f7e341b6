package icongen

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// DefaultFontPaths lists the preferred fonts for the icon letter, tried in
// order. The list targets a stock macOS install; candidates that are missing
// or fail to parse are skipped.
var DefaultFontPaths = []string{
	"/System/Library/Fonts/Supplemental/Georgia Bold.ttf",
	"/System/Library/Fonts/Supplemental/Georgia.ttf",
	"/System/Library/Fonts/Supplemental/Times New Roman Bold.ttf",
	"/System/Library/Fonts/NewYork.ttf",
	"/System/Library/Fonts/Helvetica.ttc",
	"/System/Library/Fonts/SFCompact.ttf",
}

// ResolveFont returns a face for the first candidate path that loads and
// parses, together with the path it came from. When no candidate resolves,
// the embedded Go Bold face is returned with an empty path.
func ResolveFont(paths []string, size float64) (font.Face, string, error) {
	for _, fp := range paths {
		data, err := os.ReadFile(fp)
		if err != nil {
			continue
		}
		face, err := newFace(data, size)
		if err != nil {
			continue
		}
		return face, fp, nil
	}

	face, err := newFace(gobold.TTF, size)
	if err != nil {
		return nil, "", fmt.Errorf("could not load the fallback font: %w", err)
	}
	return face, "", nil
}

func newFace(data []byte, size float64) (font.Face, error) {
	fnt, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

const (
	// shadowOffset shifts the glyph shadow on both axes.
	shadowOffset = 6
	// glyphLift raises the glyph above the geometric center for optical balance.
	glyphLift = 10
)

// DrawLetter renders the letter centered on img, preceded by a soft black
// drop shadow. The rendered bounding box is measured first so that its
// center lands on the canvas center, lifted by a few pixels.
func DrawLetter(img *image.NRGBA, letter string, face font.Face) {
	bounds, _ := font.BoundString(face, letter)
	glyphW := (bounds.Max.X - bounds.Min.X).Ceil()
	glyphH := (bounds.Max.Y - bounds.Min.Y).Ceil()

	size := img.Bounds().Dx()
	x := (size-glyphW)/2 - bounds.Min.X.Floor()
	y := (size-glyphH)/2 - bounds.Min.Y.Floor() - glyphLift

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.NRGBA{A: 35}),
		Face: face,
		Dot:  fixed.P(x+shadowOffset, y+shadowOffset),
	}
	d.DrawString(letter)

	d.Src = image.NewUniform(color.NRGBA{R: 255, G: 255, B: 255, A: 245})
	d.Dot = fixed.P(x, y)
	d.DrawString(letter)
}
