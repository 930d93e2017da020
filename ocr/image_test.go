package ocr

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func testImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 60), G: uint8(y * 60), B: 0, A: 255})
		}
	}
	return img
}

func TestNormalizeImagePassesPNGThrough(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, testImage()); err != nil {
		t.Fatal(err)
	}
	input := buf.Bytes()

	got, err := NormalizeImage(input)
	if err != nil {
		t.Fatalf("NormalizeImage: %v", err)
	}
	if !bytes.Equal(got, input) {
		t.Error("PNG input should be returned unchanged")
	}
}

func TestNormalizeImageConvertsJPEG(t *testing.T) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, testImage(), nil); err != nil {
		t.Fatal(err)
	}

	got, err := NormalizeImage(buf.Bytes())
	if err != nil {
		t.Fatalf("NormalizeImage: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(got)); err != nil {
		t.Errorf("output is not valid PNG: %v", err)
	}
}

func TestNormalizeImageRejectsGarbage(t *testing.T) {
	if _, err := NormalizeImage([]byte("not an image at all")); err == nil {
		t.Error("expected decode error")
	}
}
