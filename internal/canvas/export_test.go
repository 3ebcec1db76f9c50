package canvas

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

func TestEncodePNG(t *testing.T) {
	b := newFilledBuffer(t, 6, 4, RGBA{255, 0, 0, 255})

	result, err := EncodePNG(b, 1.0)
	if err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}
	if result.MimeType != "image/png" {
		t.Errorf("MimeType: got %s", result.MimeType)
	}
	if result.Width != 6 || result.Height != 4 {
		t.Errorf("size: got %dx%d, want 6x4", result.Width, result.Height)
	}

	data, err := base64.StdEncoding.DecodeString(result.ImageBase64)
	if err != nil {
		t.Fatalf("invalid base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("invalid PNG: %v", err)
	}
	r, g, bl, a := img.At(3, 2).RGBA()
	if r>>8 != 255 || g>>8 != 0 || bl>>8 != 0 || a>>8 != 255 {
		t.Errorf("pixel: got (%d,%d,%d,%d)", r>>8, g>>8, bl>>8, a>>8)
	}
}

func TestEncodePNG_Scaled(t *testing.T) {
	b := newFilledBuffer(t, 10, 5, White)

	result, err := EncodePNG(b, 2.0)
	if err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}
	if result.Width != 20 || result.Height != 10 {
		t.Errorf("size: got %dx%d, want 20x10", result.Width, result.Height)
	}
	if b.Width() != 10 {
		t.Error("scaling must not change the canvas")
	}

	if _, err := EncodePNG(b, 0.01); err == nil {
		t.Error("EncodePNG should fail when scaling to nothing")
	}
}

func TestSavePNG(t *testing.T) {
	b := newFilledBuffer(t, 3, 3, RGBA{0, 0, 255, 255})
	_ = b.Set(1, 1, RGBA{255, 255, 0, 255})

	path := filepath.Join(t.TempDir(), "out.png")
	result, err := SavePNG(b, path)
	if err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}
	if result.Path != path || result.ImageBase64 != "" {
		t.Errorf("unexpected result: %+v", result)
	}

	img, err := imaging.Open(path)
	if err != nil {
		t.Fatalf("failed to reopen saved canvas: %v", err)
	}
	back := FromImage(img)
	if !back.Equal(b) {
		t.Error("saved canvas differs from the original")
	}
}

func TestSavePNG_BadPath(t *testing.T) {
	b := newFilledBuffer(t, 2, 2, White)
	if _, err := SavePNG(b, filepath.Join(t.TempDir(), "missing", "dir", "out.png")); err == nil {
		t.Error("SavePNG should fail for an unwritable path")
	}
}
