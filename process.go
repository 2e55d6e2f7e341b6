package icongen

import (
	"fmt"
	"image"
	"io"
	"os"

	"github.com/disintegration/imaging"
	pigo "github.com/esimov/pigo/core"

	"github.com/lenaapp/icongen/utils"
)

// Processor derives the icon from an existing artwork: the source is cropped
// to a square on its shorter dimension and upscaled to the target resolution
// with a Lanczos filter.
type Processor struct {
	TargetSize int
	FaceDetect bool
	FaceAngle  float64
	Classifier string

	faceDetector *pigo.Pigo
}

// NewProcessor returns a Processor producing icons at the given resolution.
func NewProcessor(targetSize int) *Processor {
	return &Processor{TargetSize: targetSize}
}

// Icon decodes the source, crops it to a square and upscales the result.
// A source that cannot be decoded is a fatal error for the run.
func (p *Processor) Icon(r io.Reader) (*image.NRGBA, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("could not decode the source image: %w", err)
	}

	squared, err := p.cropSquare(imgToNRGBA(src))
	if err != nil {
		return nil, err
	}
	return imaging.Resize(squared, p.TargetSize, p.TargetSize, imaging.Lanczos), nil
}

// cropSquare crops img to a square whose side equals the shorter dimension.
// The crop is centered geometrically, or on the dominant detected face when
// face detection is enabled.
func (p *Processor) cropSquare(img *image.NRGBA) (*image.NRGBA, error) {
	dx, dy := img.Bounds().Dx(), img.Bounds().Dy()
	side := utils.Min(dx, dy)

	if !p.FaceDetect {
		return imaging.CropCenter(img, side, side), nil
	}

	cx, cy, err := p.detectFaceCenter(img)
	if err != nil {
		return nil, err
	}
	left := utils.Clamp(cx-side/2, 0, dx-side)
	top := utils.Clamp(cy-side/2, 0, dy-side)
	return imaging.Crop(img, image.Rect(left, top, left+side, top+side)), nil
}

// detectFaceCenter runs the pigo classifier over the grayscale pixel plane
// and returns the center of the highest scoring detection cluster. When no
// face is found the geometric center is returned, so the crop degrades to
// the plain centered one.
func (p *Processor) detectFaceCenter(img *image.NRGBA) (int, int, error) {
	if p.faceDetector == nil {
		data, err := os.ReadFile(p.Classifier)
		if err != nil {
			return 0, 0, fmt.Errorf("could not read the cascade classifier: %w", err)
		}
		p.faceDetector, err = pigo.NewPigo().Unpack(data)
		if err != nil {
			return 0, 0, fmt.Errorf("error unpacking the cascade file: %w", err)
		}
	}

	dx, dy := img.Bounds().Dx(), img.Bounds().Dy()
	cParams := pigo.CascadeParams{
		MinSize:     100,
		MaxSize:     utils.Max(dx, dy),
		ShiftFactor: 0.1,
		ScaleFactor: 1.1,

		ImageParams: pigo.ImageParams{
			Pixels: rgbToGrayscale(img),
			Rows:   dy,
			Cols:   dx,
			Dim:    dx,
		},
	}

	// The result contains quadruplets representing the row, column,
	// scale and the detection score.
	faces := p.faceDetector.RunCascade(cParams, p.FaceAngle)

	// Calculate the intersection over union (IoU) of two clusters.
	faces = p.faceDetector.ClusterDetections(faces, 0.2)
	if len(faces) == 0 {
		return dx / 2, dy / 2, nil
	}

	best := faces[0]
	for _, face := range faces {
		if face.Q > best.Q {
			best = face
		}
	}
	return best.Col, best.Row, nil
}
