package imagemeta

// ICC profile extraction and reattachment. JPEG carries profiles in APP2
// segments prefixed with "ICC_PROFILE\x00" (split across segments when the
// profile exceeds one segment's payload); PNG carries a single
// zlib-compressed iCCP chunk.

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"hash/crc32"
	"io"
	"sort"

	jpegstructure "github.com/dsoprea/go-jpeg-image-structure/v2"
	pngstructure "github.com/dsoprea/go-png-image-structure/v2"
)

const (
	markerAPP0 = 0xE0
	markerAPP1 = 0xE1
	markerAPP2 = 0xE2
	markerSOI  = 0xD8

	// Marker segment length field is 16-bit and includes itself, so the
	// payload tops out at 65533 bytes; the ICC header takes 14 of those.
	jpegICCChunkSize = 65533 - len(jpegICCPrefix) - 2

	pngICCProfileName = "ICC Profile"
)

const jpegICCPrefix = "ICC_PROFILE\x00"

// jpegExtractICC reassembles the ICC profile from a JPEG's APP2 segments.
// Returns nil when no profile is embedded.
func jpegExtractICC(sl *jpegstructure.SegmentList) []byte {
	type part struct {
		seq  byte
		data []byte
	}
	var parts []part

	for _, segment := range sl.Segments() {
		if segment.MarkerId != markerAPP2 {
			continue
		}
		if !bytes.HasPrefix(segment.Data, []byte(jpegICCPrefix)) {
			continue
		}
		payload := segment.Data[len(jpegICCPrefix):]
		if len(payload) < 2 {
			continue
		}
		// payload[0] is the 1-based sequence number, payload[1] the total count.
		parts = append(parts, part{seq: payload[0], data: payload[2:]})
	}
	if len(parts) == 0 {
		return nil
	}

	sort.Slice(parts, func(i, j int) bool { return parts[i].seq < parts[j].seq })

	var profile []byte
	for _, p := range parts {
		profile = append(profile, p.data...)
	}
	return profile
}

// AttachICCJPEG inserts profile into jpegData as APP2 segments, placed after
// the leading SOI/APP0/APP1 run so viewers find it where encoders put it.
func AttachICCJPEG(jpegData, profile []byte) ([]byte, error) {
	jmp := jpegstructure.NewJpegMediaParser()
	intfc, err := jmp.ParseBytes(jpegData)
	if err != nil {
		return nil, fmt.Errorf("cannot parse encoded JPEG: %w", err)
	}
	sl, ok := intfc.(*jpegstructure.SegmentList)
	if !ok {
		return nil, fmt.Errorf("unexpected JPEG parse result")
	}

	total := (len(profile) + jpegICCChunkSize - 1) / jpegICCChunkSize
	if total > 255 {
		return nil, fmt.Errorf("ICC profile too large: %d bytes", len(profile))
	}

	var app2s []*jpegstructure.Segment
	for i := 0; i < total; i++ {
		start := i * jpegICCChunkSize
		end := start + jpegICCChunkSize
		if end > len(profile) {
			end = len(profile)
		}
		data := make([]byte, 0, len(jpegICCPrefix)+2+end-start)
		data = append(data, jpegICCPrefix...)
		data = append(data, byte(i+1), byte(total))
		data = append(data, profile[start:end]...)
		app2s = append(app2s, &jpegstructure.Segment{MarkerId: markerAPP2, Data: data})
	}

	segments := sl.Segments()
	insertAt := 0
	for insertAt < len(segments) {
		id := segments[insertAt].MarkerId
		if id == markerSOI || id == markerAPP0 || id == markerAPP1 {
			insertAt++
			continue
		}
		break
	}

	merged := make([]*jpegstructure.Segment, 0, len(segments)+len(app2s))
	merged = append(merged, segments[:insertAt]...)
	merged = append(merged, app2s...)
	merged = append(merged, segments[insertAt:]...)

	var b bytes.Buffer
	if err := jpegstructure.NewSegmentList(merged).Write(&b); err != nil {
		return nil, fmt.Errorf("failed to write JPEG with ICC profile: %w", err)
	}
	return b.Bytes(), nil
}

// pngExtractICC decompresses the profile from a PNG's iCCP chunk.
// Returns nil when no profile is embedded or the chunk is malformed.
func pngExtractICC(cs *pngstructure.ChunkSlice) []byte {
	for _, chunk := range cs.Chunks() {
		if chunk.Type != "iCCP" {
			continue
		}
		// Layout: profile name, NUL, compression method, compressed profile.
		sep := bytes.IndexByte(chunk.Data, 0)
		if sep < 0 || sep+2 > len(chunk.Data) {
			return nil
		}
		zr, err := zlib.NewReader(bytes.NewReader(chunk.Data[sep+2:]))
		if err != nil {
			return nil
		}
		profile, err := io.ReadAll(zr)
		zr.Close()
		if err != nil {
			return nil
		}
		return profile
	}
	return nil
}

// AttachICCPNG inserts profile into pngData as an iCCP chunk directly after
// IHDR, where PNG requires it (before PLTE and IDAT).
func AttachICCPNG(pngData, profile []byte) ([]byte, error) {
	pmp := pngstructure.NewPngMediaParser()
	intfc, err := pmp.ParseBytes(pngData)
	if err != nil {
		return nil, fmt.Errorf("cannot parse encoded PNG: %w", err)
	}
	cs, ok := intfc.(*pngstructure.ChunkSlice)
	if !ok {
		return nil, fmt.Errorf("unexpected PNG parse result")
	}

	var compressed bytes.Buffer
	zw := zlib.NewWriter(&compressed)
	if _, err := zw.Write(profile); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}

	data := make([]byte, 0, len(pngICCProfileName)+2+compressed.Len())
	data = append(data, pngICCProfileName...)
	data = append(data, 0, 0) // NUL separator, compression method 0 (zlib)
	data = append(data, compressed.Bytes()...)

	crc := crc32.NewIEEE()
	crc.Write([]byte("iCCP"))
	crc.Write(data)

	iccp := &pngstructure.Chunk{
		Type:   "iCCP",
		Data:   data,
		Length: uint32(len(data)),
		Crc:    crc.Sum32(),
	}

	chunks := cs.Chunks()
	merged := make([]*pngstructure.Chunk, 0, len(chunks)+1)
	for _, chunk := range chunks {
		merged = append(merged, chunk)
		if chunk.Type == "IHDR" {
			merged = append(merged, iccp)
		}
	}

	var b bytes.Buffer
	if err := pngstructure.NewChunkSlice(merged).WriteTo(&b); err != nil {
		return nil, fmt.Errorf("failed to write PNG with ICC profile: %w", err)
	}
	return b.Bytes(), nil
}
