// Package image encodes rendered grayscale buffers into image containers
// for gogpu/mandelbrot.
//
// Supported containers are PNG and JPEG from the standard library, and TIFF
// and BMP from golang.org/x/image. All of them store the 8-bit gray levels
// without converting to color.
package image

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format represents an image container format.
type Format uint8

const (
	// FormatPNG is lossless PNG, the default container.
	FormatPNG Format = iota

	// FormatJPEG is baseline JPEG. It is lossy; gray levels are not
	// preserved exactly.
	FormatJPEG

	// FormatTIFF is uncompressed TIFF.
	FormatTIFF

	// FormatBMP is an 8-bit paletted BMP.
	FormatBMP

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatInfo contains metadata about a container format.
type FormatInfo struct {
	// Name is the human-readable format name.
	Name string

	// Extensions lists the file extensions mapped to the format,
	// lower case and with the leading dot. The first one is canonical.
	Extensions []string

	// Lossless indicates that decoding returns the exact gray levels.
	Lossless bool
}

// formatInfoTable contains metadata for each format.
var formatInfoTable = [formatCount]FormatInfo{
	FormatPNG: {
		Name:       "PNG",
		Extensions: []string{".png"},
		Lossless:   true,
	},
	FormatJPEG: {
		Name:       "JPEG",
		Extensions: []string{".jpg", ".jpeg"},
		Lossless:   false,
	},
	FormatTIFF: {
		Name:       "TIFF",
		Extensions: []string{".tif", ".tiff"},
		Lossless:   true,
	},
	FormatBMP: {
		Name:       "BMP",
		Extensions: []string{".bmp"},
		Lossless:   true,
	},
}

// Info returns metadata for the format.
// Returns zero FormatInfo for invalid formats.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// IsValid returns true if the format is a known container.
func (f Format) IsValid() bool {
	return f < formatCount
}

// Extension returns the canonical file extension, or "" for invalid formats.
func (f Format) Extension() string {
	if !f.IsValid() {
		return ""
	}
	return formatInfoTable[f].Extensions[0]
}

// String returns a human-readable name for the format.
func (f Format) String() string {
	if !f.IsValid() {
		return fmt.Sprintf("Format(%d)", f)
	}
	return formatInfoTable[f].Name
}

// FormatFromPath picks the container format from a file extension.
// The match is case-insensitive. Unknown extensions return
// ErrUnsupportedFormat.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	for f := range formatCount {
		for _, e := range formatInfoTable[f].Extensions {
			if e == ext {
				return f, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}
