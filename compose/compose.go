// Package compose implements the Porter-Duff composition operators used to
// blend a source layer into a destination canvas.
// The image/draw core package implements only the source and the
// source-over-destination operators; the icon pipelines also need the
// remaining masking operators, so this package provides them.
package compose

import (
	"image"
	"image/color"
)

// The supported composition operators.
const (
	Copy    = "copy"
	SrcOver = "src_over"
	DstOver = "dst_over"
	SrcIn   = "src_in"
	DstIn   = "dst_in"
)

// Op applies one of the supported composition operators.
type Op struct {
	mode string
}

// New returns an operator for the given mode. An unrecognized mode falls
// back to source-over, the default of the classic paper.
func New(mode string) *Op {
	switch mode {
	case Copy, SrcOver, DstOver, SrcIn, DstIn:
	default:
		mode = SrcOver
	}
	return &Op{mode: mode}
}

// Mode returns the currently active composition operator.
func (op *Op) Mode() string {
	return op.mode
}

// Draw blends src into dst with the source's top-left corner placed at pt,
// writing the result back into dst. Pixels falling outside the destination
// bounds are clipped.
func (op *Op) Draw(dst, src *image.NRGBA, pt image.Point) {
	dx, dy := src.Bounds().Dx(), src.Bounds().Dy()
	db := dst.Bounds()

	for y := 0; y < dy; y++ {
		ty := pt.Y + y
		if ty < db.Min.Y || ty >= db.Max.Y {
			continue
		}
		for x := 0; x < dx; x++ {
			tx := pt.X + x
			if tx < db.Min.X || tx >= db.Max.X {
				continue
			}

			s := src.NRGBAAt(src.Bounds().Min.X+x, src.Bounds().Min.Y+y)
			d := dst.NRGBAAt(tx, ty)

			rsn, gsn, bsn, asn := normalize(s)
			rbn, gbn, bbn, abn := normalize(d)

			var rn, gn, bn, an float64

			// The alpha composition formulas, in premultiplied form.
			switch op.mode {
			case Copy:
				rn = asn * rsn
				gn = asn * gsn
				bn = asn * bsn
				an = asn
			case SrcOver:
				rn = asn*rsn + abn*rbn*(1-asn)
				gn = asn*gsn + abn*gbn*(1-asn)
				bn = asn*bsn + abn*bbn*(1-asn)
				an = asn + abn*(1-asn)
			case DstOver:
				rn = asn*rsn*(1-abn) + abn*rbn
				gn = asn*gsn*(1-abn) + abn*gbn
				bn = asn*bsn*(1-abn) + abn*bbn
				an = asn*(1-abn) + abn
			case SrcIn:
				rn = asn * rsn * abn
				gn = asn * gsn * abn
				bn = asn * bsn * abn
				an = asn * abn
			case DstIn:
				rn = abn * rbn * asn
				gn = abn * gbn * asn
				bn = abn * bbn * asn
				an = abn * asn
			}

			// Rounding keeps channels that pass through unchanged bit-exact.
			dst.SetNRGBA(tx, ty, color.NRGBA{
				R: uint8(rn*255 + 0.5),
				G: uint8(gn*255 + 0.5),
				B: uint8(bn*255 + 0.5),
				A: uint8(an*255 + 0.5),
			})
		}
	}
}

// normalize converts the color channels to the [0, 1] range.
func normalize(c color.NRGBA) (r, g, b, a float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255, float64(c.A) / 255
}
