// Package strip implements the metadata-stripping pipeline: inspect a file,
// normalize orientation, re-encode without metadata, optionally back up the
// original, and replace it atomically.
package strip

import "github.com/rbuysse/phototool/internal/imagemeta"

// EncodePolicy holds the per-format output settings applied when a file is
// re-encoded.
type EncodePolicy struct {
	Quality     int  // lossy quality; 0 means not applicable
	ReattachICC bool // reinsert a captured ICC profile after encoding
}

const webpQuality = 95

// PolicyFor maps a format to its encode policy. jpegQuality comes from
// configuration (default 95); WEBP quality is fixed. The boolean is false
// for formats the pipeline cannot emit.
//
// ICC reattachment happens only where the output format can carry a profile
// that we know how to write (JPEG APP2, PNG iCCP). The WEBP and TIFF
// encoders have no profile support, so captured profiles are dropped there.
func PolicyFor(format imagemeta.Format, jpegQuality int) (EncodePolicy, bool) {
	switch format {
	case imagemeta.FormatJPEG:
		return EncodePolicy{Quality: jpegQuality, ReattachICC: true}, true
	case imagemeta.FormatPNG:
		return EncodePolicy{ReattachICC: true}, true
	case imagemeta.FormatWEBP:
		return EncodePolicy{Quality: webpQuality}, true
	case imagemeta.FormatTIFF:
		return EncodePolicy{}, true
	}
	return EncodePolicy{}, false
}
