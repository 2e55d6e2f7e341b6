package icongen

import "image"

// RoundedMask returns a binary size×size alpha mask which is 255 inside a
// rectangle with quarter-circle corners of the given radius and 0 outside.
func RoundedMask(size, radius int) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, size, size))

	for y := 0; y < size; y++ {
		i := mask.PixOffset(0, y)
		for x := 0; x < size; x++ {
			if insideRoundedRect(x, y, size, radius) {
				mask.Pix[i] = 0xff
			}
			i++
		}
	}
	return mask
}

// insideRoundedRect reports whether the pixel at (x, y) falls inside the
// rounded rectangle silhouette. The corner circle centers sit at a distance
// of radius from the outer edges of the [0, size-1] bounding box.
func insideRoundedRect(x, y, size, radius int) bool {
	cx, cy := -1, -1
	if x < radius {
		cx = radius
	} else if x > size-1-radius {
		cx = size - 1 - radius
	}
	if y < radius {
		cy = radius
	} else if y > size-1-radius {
		cy = size - 1 - radius
	}
	if cx < 0 || cy < 0 {
		return true
	}
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= radius*radius
}

// ApplyMask overwrites the alpha channel of img with the mask values,
// clipping the visible region to the mask silhouette. Both buffers must
// share the same dimensions.
func ApplyMask(img *image.NRGBA, mask *image.Alpha) {
	dx, dy := img.Bounds().Dx(), img.Bounds().Dy()

	for y := 0; y < dy; y++ {
		i := img.PixOffset(0, y)
		j := mask.PixOffset(0, y)
		for x := 0; x < dx; x++ {
			img.Pix[i+3] = mask.Pix[j]
			i += 4
			j++
		}
	}
}
