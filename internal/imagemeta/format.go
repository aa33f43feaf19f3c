// Package imagemeta inspects image files for embedded metadata (EXIF
// presence, orientation, ICC color profiles) and re-encodes pixel data
// without it.
package imagemeta

import "bytes"

// Format identifies the container format of an image file. Detection is
// based on magic bytes, not the filename, so a mislabeled file is classified
// by what it actually contains.
type Format int

const (
	FormatUnrecognized Format = iota
	FormatJPEG
	FormatPNG
	FormatWEBP
	FormatTIFF
)

func (f Format) String() string {
	switch f {
	case FormatJPEG:
		return "JPEG"
	case FormatPNG:
		return "PNG"
	case FormatWEBP:
		return "WEBP"
	case FormatTIFF:
		return "TIFF"
	}
	return "unrecognized"
}

var (
	jpegMagic   = []byte{0xFF, 0xD8}
	pngMagic    = []byte{0x89, 0x50, 0x4E, 0x47}
	riffMagic   = []byte("RIFF")
	webpMagic   = []byte("WEBP")
	tiffMagicLE = []byte{0x49, 0x49, 0x2A, 0x00}
	tiffMagicBE = []byte{0x4D, 0x4D, 0x00, 0x2A}
)

// DetectFormat sniffs the format from the leading bytes of the file.
func DetectFormat(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, jpegMagic):
		return FormatJPEG
	case bytes.HasPrefix(data, pngMagic):
		return FormatPNG
	case bytes.HasPrefix(data, riffMagic) && len(data) >= 12 && bytes.Equal(data[8:12], webpMagic):
		return FormatWEBP
	case bytes.HasPrefix(data, tiffMagicLE) || bytes.HasPrefix(data, tiffMagicBE):
		return FormatTIFF
	}
	return FormatUnrecognized
}
