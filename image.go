package icongen

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	_ "golang.org/x/image/bmp"

	"github.com/lenaapp/icongen/utils"
)

// LoadImage opens and decodes the source image file into an NRGBA canvas.
// The file content is sniffed first so that non-image files fail early with
// a clear error instead of a decoder one.
func LoadImage(src string) (*image.NRGBA, error) {
	ctype, err := utils.DetectContentType(src)
	if err != nil {
		return nil, fmt.Errorf("could not open the source file: %w", err)
	}
	if !strings.Contains(ctype, "image") {
		return nil, fmt.Errorf("the source should be an image file, got %s", ctype)
	}

	file, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("could not open the source file: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("could not decode the source file: %w", err)
	}
	return imgToNRGBA(img), nil
}

// imgToNRGBA converts any image type to *image.NRGBA with min-point at (0, 0).
func imgToNRGBA(img image.Image) *image.NRGBA {
	srcBounds := img.Bounds()
	if srcBounds.Min.X == 0 && srcBounds.Min.Y == 0 {
		if src0, ok := img.(*image.NRGBA); ok {
			return src0
		}
	}

	dstBounds := srcBounds.Sub(srcBounds.Min)
	dst := image.NewNRGBA(dstBounds)

	for dstY := 0; dstY < dstBounds.Dy(); dstY++ {
		di := dst.PixOffset(0, dstY)
		for dstX := 0; dstX < dstBounds.Dx(); dstX++ {
			c := color.NRGBAModel.Convert(img.At(srcBounds.Min.X+dstX, srcBounds.Min.Y+dstY)).(color.NRGBA)
			dst.Pix[di+0] = c.R
			dst.Pix[di+1] = c.G
			dst.Pix[di+2] = c.B
			dst.Pix[di+3] = c.A
			di += 4
		}
	}
	return dst
}

// rgbToGrayscale converts an image to grayscale mode and
// returns the pixel values as a one dimensional array.
func rgbToGrayscale(src *image.NRGBA) []uint8 {
	width, height := src.Bounds().Dx(), src.Bounds().Dy()
	gray := make([]uint8, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := src.At(x, y).RGBA()
			gray[y*width+x] = uint8(
				(0.299*float64(r) +
					0.587*float64(g) +
					0.114*float64(b)) / 256,
			)
		}
	}
	return gray
}
