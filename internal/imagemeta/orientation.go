package imagemeta

import (
	"image"

	"github.com/disintegration/imaging"
)

// NormalizeOrientation applies the EXIF orientation transform to the pixel
// data, producing an image that displays upright without the tag. Values
// outside 2-8 (including the "normal" value 1) are a no-op.
//
// The mapping follows the EXIF 2.32 orientation table: the stored image must
// be flipped and/or rotated so that row 0 is the top and column 0 the left.
func NormalizeOrientation(img image.Image, orientation int) image.Image {
	switch orientation {
	case 2:
		return imaging.FlipH(img)
	case 3:
		return imaging.Rotate180(img)
	case 4:
		return imaging.FlipV(img)
	case 5:
		return imaging.Transpose(img)
	case 6:
		return imaging.Rotate270(img)
	case 7:
		return imaging.Transverse(img)
	case 8:
		return imaging.Rotate90(img)
	}
	return img
}
