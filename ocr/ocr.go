//go:build ocr

// Package ocr provides an OCR-backed page source for scanned documents
// and images.
//
// This package wraps the Tesseract OCR engine via gosseract. It requires
// Tesseract to be installed on the system. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"fmt"
	"os"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/tsawler/outliner/pages"
)

// Client wraps Tesseract for OCR operations.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client.
// The client should be closed when no longer needed to release resources.
func New() (*Client, error) {
	return &Client{client: gosseract.NewClient()}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// SetLanguage sets the language(s) for OCR recognition.
// Multiple languages can be specified as a "+" separated string
// (e.g., "eng+jpn"). Default is "eng" (English).
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

// RecognizeImage performs OCR on image data (PNG, TIFF, JPEG, BMP).
// Returns the recognized text with leading/trailing whitespace trimmed.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	normalized, err := NormalizeImage(imageData)
	if err != nil {
		return "", err
	}
	if err := c.client.SetImageFromBytes(normalized); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}
	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("ocr: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// OpenImages OCRs one or more image files into a page source, one page
// per image, in argument order. Recognition happens eagerly; the client
// is created and closed internally.
func OpenImages(paths ...string) (pages.Source, error) {
	client, err := New()
	if err != nil {
		return nil, err
	}
	defer client.Close()

	pageLines := make([][]string, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read image %s: %w", path, err)
		}
		text, err := client.RecognizeImage(data)
		if err != nil {
			return nil, fmt.Errorf("recognize %s: %w", path, err)
		}
		pageLines = append(pageLines, strings.Split(text, "\n"))
	}
	return pages.NewMemorySource(pageLines), nil
}
