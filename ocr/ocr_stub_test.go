//go:build !ocr

package ocr

import (
	"errors"
	"testing"
)

func TestStubClient(t *testing.T) {
	client, err := New()
	if !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("New() error = %v, want ErrOCRNotEnabled", err)
	}
	if client != nil {
		t.Errorf("New() client = %v, want nil", client)
	}

	var c *Client
	if err := c.Close(); err != nil {
		t.Errorf("Close on nil client = %v, want nil", err)
	}
}

func TestStubOpenImages(t *testing.T) {
	src, err := OpenImages("page1.png", "page2.png")
	if !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("OpenImages error = %v, want ErrOCRNotEnabled", err)
	}
	if src != nil {
		t.Errorf("OpenImages source = %v, want nil", src)
	}
}
