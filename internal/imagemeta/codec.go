package imagemeta

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/tiff"
)

// Decode decodes pixel data according to the detected format.
func Decode(data []byte, format Format) (image.Image, error) {
	r := bytes.NewReader(data)
	switch format {
	case FormatJPEG:
		return jpeg.Decode(r)
	case FormatPNG:
		return png.Decode(r)
	case FormatWEBP:
		return webp.Decode(r)
	case FormatTIFF:
		return tiff.Decode(r)
	}
	return nil, fmt.Errorf("cannot decode %s data", format)
}

// Encode re-encodes pixel data in the same format, carrying no metadata.
// The stdlib JPEG and PNG encoders emit no APPn/EXIF segments and no
// ancillary text chunks; the WEBP and TIFF encoders likewise write pixel
// data only. quality applies to the lossy formats and is ignored otherwise.
func Encode(img image.Image, format Format, quality int) ([]byte, error) {
	var b bytes.Buffer
	switch format {
	case FormatJPEG:
		if err := jpeg.Encode(&b, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, err
		}
	case FormatPNG:
		if err := png.Encode(&b, img); err != nil {
			return nil, err
		}
	case FormatWEBP:
		if err := webp.Encode(&b, img, &webp.Options{Quality: float32(quality)}); err != nil {
			return nil, err
		}
	case FormatTIFF:
		if err := tiff.Encode(&b, img, nil); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("cannot encode %s data", format)
	}
	return b.Bytes(), nil
}
