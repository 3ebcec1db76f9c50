package canvas

import (
	"errors"
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/clone"
)

var (
	// ErrOutOfBounds is returned when a coordinate falls outside [0,W)x[0,H).
	ErrOutOfBounds = errors.New("coordinates outside canvas bounds")

	// ErrSizeMismatch is returned by Restore when the snapshot was taken from
	// a canvas of different dimensions.
	ErrSizeMismatch = errors.New("snapshot size does not match canvas")

	// ErrInvalidSize is returned when a canvas is created with a non-positive
	// width or height.
	ErrInvalidSize = errors.New("canvas dimensions must be positive")

	// ErrUnavailable is returned when the canvas storage cannot be read,
	// e.g. a nil canvas or a channel array of the wrong length.
	ErrUnavailable = errors.New("canvas unavailable")
)

// RGBA is a single pixel with 8-bit channels.
type RGBA struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
	A uint8 `json:"a"` // Alpha/opacity component (0-255)
}

// White is the opaque background colour of a freshly rasterized canvas.
var White = RGBA{R: 255, G: 255, B: 255, A: 255}

// Buffer is a fixed-size RGBA pixel grid stored as a flat channel array of
// width*height*4 bytes, row-major, four bytes (R,G,B,A) per pixel.
//
// Buffer is not safe for concurrent use; callers serialize access (see the
// session package).
type Buffer struct {
	width  int
	height int
	pix    []uint8
}

// NewBuffer creates a fully transparent canvas of the given size.
func NewBuffer(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
	}, nil
}

// FromImage copies an image into a new canvas. The image's bounds origin is
// mapped to (0,0).
func FromImage(img image.Image) *Buffer {
	src := clone.AsRGBA(img)
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	b := &Buffer{
		width:  w,
		height: h,
		pix:    make([]uint8, w*h*4),
	}
	for y := 0; y < h; y++ {
		off := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		copy(b.pix[y*w*4:(y+1)*w*4], src.Pix[off:off+w*4])
	}
	return b
}

// Width returns the canvas width in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the canvas height in pixels.
func (b *Buffer) Height() int { return b.height }

// Bounds returns the canvas rectangle, always anchored at (0,0).
func (b *Buffer) Bounds() image.Rectangle { return image.Rect(0, 0, b.width, b.height) }

// In reports whether (x, y) addresses a pixel of the canvas.
func (b *Buffer) In(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the pixel at (x, y).
func (b *Buffer) Get(x, y int) (RGBA, error) {
	if !b.In(x, y) {
		return RGBA{}, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	i := (y*b.width + x) * 4
	return RGBA{R: b.pix[i], G: b.pix[i+1], B: b.pix[i+2], A: b.pix[i+3]}, nil
}

// Set writes the pixel at (x, y). The write is immediate.
func (b *Buffer) Set(x, y int, c RGBA) error {
	if !b.In(x, y) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	i := (y*b.width + x) * 4
	b.pix[i], b.pix[i+1], b.pix[i+2], b.pix[i+3] = c.R, c.G, c.B, c.A
	return nil
}

// Fill sets every pixel of the canvas to c.
func (b *Buffer) Fill(c RGBA) {
	for i := 0; i < len(b.pix); i += 4 {
		b.pix[i], b.pix[i+1], b.pix[i+2], b.pix[i+3] = c.R, c.G, c.B, c.A
	}
}

// Snapshot is a detached copy of a canvas' channel array.
//
// Pix has the same layout as the canvas it was taken from and may be mutated
// freely; nothing is visible on the canvas until the snapshot is passed to
// Restore.
type Snapshot struct {
	Width  int
	Height int
	Pix    []uint8
}

// Offset returns the index of the first channel of pixel (x, y) in Pix.
// The caller must ensure the coordinate is in bounds.
func (s *Snapshot) Offset(x, y int) int {
	return (y*s.Width + x) * 4
}

// In reports whether (x, y) addresses a pixel of the snapshot.
func (s *Snapshot) In(x, y int) bool {
	return x >= 0 && x < s.Width && y >= 0 && y < s.Height
}

// At returns the pixel at (x, y). The caller must ensure the coordinate is in
// bounds.
func (s *Snapshot) At(x, y int) RGBA {
	i := s.Offset(x, y)
	return RGBA{R: s.Pix[i], G: s.Pix[i+1], B: s.Pix[i+2], A: s.Pix[i+3]}
}

// Put writes the pixel at (x, y). The caller must ensure the coordinate is in
// bounds.
func (s *Snapshot) Put(x, y int, c RGBA) {
	i := s.Offset(x, y)
	s.Pix[i], s.Pix[i+1], s.Pix[i+2], s.Pix[i+3] = c.R, c.G, c.B, c.A
}

// Snapshot returns a deep copy of the canvas contents.
//
// It fails with ErrUnavailable when the canvas is nil or its storage does not
// match its dimensions.
func (b *Buffer) Snapshot() (*Snapshot, error) {
	if err := b.check(); err != nil {
		return nil, err
	}
	pix := make([]uint8, len(b.pix))
	copy(pix, b.pix)
	return &Snapshot{Width: b.width, Height: b.height, Pix: pix}, nil
}

// Restore replaces the whole canvas with the contents of s in one copy.
// On error the canvas is left untouched.
func (b *Buffer) Restore(s *Snapshot) error {
	if err := b.check(); err != nil {
		return err
	}
	if s == nil {
		return fmt.Errorf("%w: nil snapshot", ErrSizeMismatch)
	}
	if s.Width != b.width || s.Height != b.height || len(s.Pix) != len(b.pix) {
		return fmt.Errorf("%w: snapshot %dx%d, canvas %dx%d",
			ErrSizeMismatch, s.Width, s.Height, b.width, b.height)
	}
	copy(b.pix, s.Pix)
	return nil
}

// Equal reports whether two canvases have the same size and identical bytes.
func (b *Buffer) Equal(other *Buffer) bool {
	if b == nil || other == nil {
		return b == other
	}
	if b.width != other.width || b.height != other.height || len(b.pix) != len(other.pix) {
		return false
	}
	for i := range b.pix {
		if b.pix[i] != other.pix[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the canvas.
func (b *Buffer) Clone() *Buffer {
	pix := make([]uint8, len(b.pix))
	copy(pix, b.pix)
	return &Buffer{width: b.width, height: b.height, pix: pix}
}

// Image returns a copy of the canvas as an *image.RGBA for presentation.
func (b *Buffer) Image() *image.RGBA {
	img := image.NewRGBA(b.Bounds())
	copy(img.Pix, b.pix)
	return img
}

func (b *Buffer) check() error {
	if b == nil {
		return fmt.Errorf("%w: nil canvas", ErrUnavailable)
	}
	if b.width <= 0 || b.height <= 0 || len(b.pix) != b.width*b.height*4 {
		return fmt.Errorf("%w: %dx%d canvas holds %d bytes",
			ErrUnavailable, b.width, b.height, len(b.pix))
	}
	return nil
}
