package canvas

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
)

// RenderResult contains the rendered canvas as a base64 PNG.
type RenderResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64,omitempty"`
	MimeType    string `json:"mime_type"`
	Path        string `json:"path,omitempty"`
	GridSpacing int    `json:"grid_spacing,omitempty"`
}

// EncodePNG renders the canvas as a base64-encoded PNG.
//
// A scale other than 1 resizes the rendered copy with Lanczos resampling; the
// canvas itself is never modified.
func EncodePNG(b *Buffer, scale float64) (*RenderResult, error) {
	if err := b.check(); err != nil {
		return nil, err
	}

	var img image.Image = b.Image()
	if scale != 1.0 && scale > 0 {
		newWidth := int(float64(b.Width()) * scale)
		newHeight := int(float64(b.Height()) * scale)
		if newWidth < 1 || newHeight < 1 {
			return nil, fmt.Errorf("scale %.3f too small for %dx%d canvas", scale, b.Width(), b.Height())
		}
		img = imaging.Resize(img, newWidth, newHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode canvas: %w", err)
	}

	return &RenderResult{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// SavePNG writes the canvas to path as a PNG file.
func SavePNG(b *Buffer, path string) (*RenderResult, error) {
	if err := b.check(); err != nil {
		return nil, err
	}
	if err := imgio.Save(path, b.Image(), imgio.PNGEncoder()); err != nil {
		return nil, fmt.Errorf("failed to save canvas: %w", err)
	}
	return &RenderResult{
		Width:    b.Width(),
		Height:   b.Height(),
		MimeType: "image/png",
		Path:     path,
	}, nil
}
