package images

import (
	"path/filepath"
	"strings"
)

// Format represents supported image formats.
type Format string

const (
	// FormatJPEG is the JPEG image format.
	FormatJPEG Format = "jpeg"
	// FormatPNG is the PNG image format.
	FormatPNG Format = "png"
	// FormatGIF is the GIF image format.
	FormatGIF Format = "gif"
	// FormatWebP is the WebP image format.
	FormatWebP Format = "webp"
)

// FormatFromPath infers the target format from a path's extension, the same
// convention the save operation uses. The boolean reports whether the
// extension names a supported format.
func FormatFromPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return FormatJPEG, true
	case ".png":
		return FormatPNG, true
	case ".gif":
		return FormatGIF, true
	case ".webp":
		return FormatWebP, true
	default:
		return "", false
	}
}
