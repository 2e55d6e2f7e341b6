package icongen

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/lenaapp/icongen/utils"
)

func TestProcessor_CropOffsets(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2000, 1000))
	topLeft := color.NRGBA{R: 255, A: 255}
	bottomRight := color.NRGBA{G: 255, A: 255}

	// Mark the expected crop corners: a 2000×1000 source crops to a
	// 1000×1000 square starting at x-offset 500, y-offset 0.
	src.SetNRGBA(500, 0, topLeft)
	src.SetNRGBA(1499, 999, bottomRight)

	p := NewProcessor(1024)
	squared, err := p.cropSquare(src)
	if err != nil {
		t.Fatalf("could not crop the source image: %v", err)
	}

	if dx, dy := squared.Bounds().Dx(), squared.Bounds().Dy(); dx != 1000 || dy != 1000 {
		t.Fatalf("cropped image expected to be 1000x1000. Got %dx%d", dx, dy)
	}
	if got := squared.NRGBAAt(0, 0); got != topLeft {
		t.Errorf("crop origin expected to map from (500, 0). Got %v", got)
	}
	if got := squared.NRGBAAt(999, 999); got != bottomRight {
		t.Errorf("crop end expected to map from (1499, 999). Got %v", got)
	}
}

func TestProcessor_IdempotentOnSquare(t *testing.T) {
	const size = 120
	src := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			src.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 2),
				G: uint8(y * 2),
				B: uint8((x + y) % 256),
				A: 255,
			})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("could not encode the test image: %v", err)
	}

	p := NewProcessor(size)
	got, err := p.Icon(&buf)
	if err != nil {
		t.Fatalf("could not process the source image: %v", err)
	}

	if !compareBytes(got.Pix, src.Pix, 1) {
		t.Errorf("an already square, target sized image expected to pass through unchanged")
	}
}

func TestProcessor_TargetResolution(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 300, 200))
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("could not encode the test image: %v", err)
	}

	p := NewProcessor(64)
	got, err := p.Icon(&buf)
	if err != nil {
		t.Fatalf("could not process the source image: %v", err)
	}

	if dx, dy := got.Bounds().Dx(), got.Bounds().Dy(); dx != 64 || dy != 64 {
		t.Errorf("icon expected to be 64x64 regardless of the input. Got %dx%d", dx, dy)
	}
}

func TestProcessor_UndecodableSourceIsFatal(t *testing.T) {
	p := NewProcessor(64)
	if _, err := p.Icon(bytes.NewBufferString("not an image")); err == nil {
		t.Errorf("an undecodable source expected to abort the run")
	}
}

func TestProcessor_MissingClassifier(t *testing.T) {
	p := NewProcessor(64)
	p.FaceDetect = true
	p.Classifier = "/no/such/cascade"

	if _, err := p.cropSquare(image.NewNRGBA(image.Rect(0, 0, 100, 100))); err == nil {
		t.Errorf("a missing cascade classifier expected to abort the run")
	}
}

func compareBytes(a, b []uint8, delta int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if utils.Abs(int(a[i])-int(b[i])) > delta {
			return false
		}
	}
	return true
}
