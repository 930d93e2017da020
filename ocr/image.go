package ocr

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // register decoder
	"image/png"

	_ "golang.org/x/image/bmp"  // register decoder
	_ "golang.org/x/image/tiff" // register decoder
)

// NormalizeImage decodes image data in any supported format (PNG, JPEG,
// TIFF, BMP) and re-encodes it as PNG, the format the OCR engine handles
// most reliably. PNG input is returned unchanged.
func NormalizeImage(data []byte) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	if format == "png" {
		return data, nil
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
