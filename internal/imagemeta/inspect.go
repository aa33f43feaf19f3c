package imagemeta

import (
	"bytes"
	"encoding/binary"
	"fmt"

	exif "github.com/dsoprea/go-exif/v3"
	exifcommon "github.com/dsoprea/go-exif/v3/common"
	jpegstructure "github.com/dsoprea/go-jpeg-image-structure/v2"
	pngstructure "github.com/dsoprea/go-png-image-structure/v2"
	goexif "github.com/rwcarlsen/goexif/exif"
)

// Info describes the metadata found in one image file. It lives only for
// the duration of a single pipeline pass.
type Info struct {
	Format      Format
	HasExif     bool
	Orientation int    // EXIF orientation 1-8; 1 when absent or unreadable
	ICCProfile  []byte // raw profile bytes, nil when absent
}

// Inspect determines the format of data and extracts EXIF presence, the
// orientation value, and any embedded ICC profile. Unrecognized data is an
// error: the extension classifier let something through that isn't an image.
func Inspect(data []byte) (*Info, error) {
	info := &Info{
		Format:      DetectFormat(data),
		Orientation: 1,
	}

	switch info.Format {
	case FormatJPEG:
		if err := inspectJPEG(data, info); err != nil {
			return nil, err
		}
	case FormatPNG:
		if err := inspectPNG(data, info); err != nil {
			return nil, err
		}
	case FormatTIFF:
		inspectTIFF(data, info)
	case FormatWEBP:
		inspectWEBP(data, info)
	default:
		return nil, fmt.Errorf("not a recognized image format")
	}

	return info, nil
}

func inspectJPEG(data []byte, info *Info) error {
	jmp := jpegstructure.NewJpegMediaParser()
	intfc, err := jmp.ParseBytes(data)
	if err != nil {
		return fmt.Errorf("cannot parse JPEG structure: %w", err)
	}

	sl, ok := intfc.(*jpegstructure.SegmentList)
	if !ok {
		return fmt.Errorf("unexpected JPEG parse result")
	}

	if _, rawExif, err := sl.Exif(); err == nil {
		info.HasExif = true
		info.Orientation = orientationFromExif(rawExif)
	}
	info.ICCProfile = jpegExtractICC(sl)
	return nil
}

func inspectPNG(data []byte, info *Info) error {
	pmp := pngstructure.NewPngMediaParser()
	intfc, err := pmp.ParseBytes(data)
	if err != nil {
		return fmt.Errorf("cannot parse PNG structure: %w", err)
	}

	cs, ok := intfc.(*pngstructure.ChunkSlice)
	if !ok {
		return fmt.Errorf("unexpected PNG parse result")
	}

	for _, chunk := range cs.Chunks() {
		if chunk.Type == "eXIf" {
			info.HasExif = true
			// The chunk payload is a raw EXIF block starting at the TIFF header.
			info.Orientation = orientationFromExif(chunk.Data)
		}
	}
	info.ICCProfile = pngExtractICC(cs)
	return nil
}

// inspectWEBP walks the RIFF chunks for an EXIF chunk. A WEBP is always
// re-encoded, so only EXIF presence and the orientation matter here.
func inspectWEBP(data []byte, info *Info) {
	// RIFF layout: 12-byte header, then fourCC + little-endian size + payload,
	// each chunk padded to an even length.
	offset := 12
	for offset+8 <= len(data) {
		fourCC := string(data[offset : offset+4])
		size := int(binary.LittleEndian.Uint32(data[offset+4 : offset+8]))
		start := offset + 8
		if size < 0 || start+size > len(data) {
			return
		}
		if fourCC == "EXIF" {
			info.HasExif = true
			// Some writers keep the JPEG-style "Exif\x00\x00" prefix in the chunk.
			raw := bytes.TrimPrefix(data[start:start+size], []byte("Exif\x00\x00"))
			info.Orientation = orientationFromExif(raw)
			return
		}
		offset = start + size + size%2
	}
}

// inspectTIFF reads the IFD directly from the TIFF container. A TIFF that
// goexif cannot parse is still re-encodable, so parse failures are not
// treated as errors here.
func inspectTIFF(data []byte, info *Info) {
	x, err := goexif.Decode(bytes.NewReader(data))
	if err != nil {
		return
	}
	info.HasExif = true
	if tag, err := x.Get(goexif.Orientation); err == nil {
		if v, err := tag.Int(0); err == nil && v >= 1 && v <= 8 {
			info.Orientation = v
		}
	}
}

// orientationFromExif extracts the Orientation tag value from a raw EXIF
// block, defaulting to 1 (normal) when the tag is missing or malformed.
func orientationFromExif(rawExif []byte) int {
	im, err := exifcommon.NewIfdMappingWithStandard()
	if err != nil {
		return 1
	}

	ti := exif.NewTagIndex()
	_, index, err := exif.Collect(im, ti, rawExif)
	if err != nil {
		return 1
	}

	results, err := index.RootIfd.FindTagWithName("Orientation")
	if err != nil || len(results) == 0 {
		return 1
	}

	valueRaw, err := results[0].Value()
	if err != nil {
		return 1
	}

	if values, ok := valueRaw.([]uint16); ok && len(values) > 0 {
		v := int(values[0])
		if v >= 1 && v <= 8 {
			return v
		}
	}
	return 1
}
