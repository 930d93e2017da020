// Package format provides input format detection for the outliner library.
package format

import (
	"path/filepath"
	"strings"
)

// Format represents a supported input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PDF indicates a PDF document.
	PDF
	// HTML indicates an HTML document.
	HTML
	// Text indicates a plain text document.
	Text
	// Image indicates a raster image (requires the ocr build tag).
	Image
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PDF:
		return "PDF"
	case HTML:
		return "HTML"
	case Text:
		return "Text"
	case Image:
		return "Image"
	default:
		return "Unknown"
	}
}

// Detect determines the input format from the filename extension.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return PDF
	case ".html", ".htm", ".xhtml":
		return HTML
	case ".txt", ".text", ".md":
		return Text
	case ".png", ".jpg", ".jpeg", ".tif", ".tiff", ".bmp":
		return Image
	default:
		return Unknown
	}
}
