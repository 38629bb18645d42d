// Package format provides raster image format detection for the rtfreport
// library.
package format

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Format represents a supported raster image format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PNG indicates a Portable Network Graphics image.
	PNG
	// JPEG indicates a JPEG image.
	JPEG
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PNG:
		return "PNG"
	case JPEG:
		return "JPEG"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case PNG:
		return ".png"
	case JPEG:
		return ".jpg"
	default:
		return ""
	}
}

// BlipTag returns the RTF picture control word for the format. Unknown
// formats fall back to the PNG tag; callers should record a warning when
// relying on the fallback.
func (f Format) BlipTag() string {
	switch f {
	case JPEG:
		return `\jpegblip`
	default:
		return `\pngblip`
	}
}

// Detect determines image format from the filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".png":
		return PNG
	case ".jpg", ".jpeg":
		return JPEG
	default:
		return Unknown
	}
}

var (
	pngMagic  = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}
	jpegMagic = []byte{0xFF, 0xD8, 0xFF}
)

// DetectFromMagic checks file magic bytes to determine format. This is more
// reliable than extension-based detection and catches mislabeled files.
// Returns Unknown if the format cannot be determined from magic bytes alone.
func DetectFromMagic(data []byte) Format {
	if bytes.HasPrefix(data, pngMagic) {
		return PNG
	}
	if bytes.HasPrefix(data, jpegMagic) {
		return JPEG
	}
	return Unknown
}
