package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"path/filepath"
	"strings"
	"testing"
)

func testImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	img.Set(3, 3, color.RGBA{G: 255, A: 255})
	return img
}

func TestWritePNGDecodeFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	if err := WritePNG(path, testImage()); err != nil {
		t.Fatalf("Failed to write PNG: %v", err)
	}

	img, err := DecodeFile(path)
	if err != nil {
		t.Fatalf("Failed to decode PNG: %v", err)
	}
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 8 {
		t.Errorf("Unexpected bounds: %v", img.Bounds())
	}
}

func TestDecodeJPEG(t *testing.T) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, testImage(), nil); err != nil {
		t.Fatalf("Failed to encode JPEG: %v", err)
	}

	_, format, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Failed to decode JPEG: %v", err)
	}
	if format != "jpeg" {
		t.Errorf("Expected format jpeg, got %q", format)
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, _, err := Decode(strings.NewReader("not an image")); err == nil {
		t.Error("Expected error for garbage input, got nil")
	}
}

func TestDecodeFileMissing(t *testing.T) {
	if _, err := DecodeFile(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("Expected error for missing file, got nil")
	}
}
