package canvas

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// ArtworkCache provides thread-safe caching of decoded artwork so that
// reloading the same coloring page (and every reset) avoids disk reads.
//
// Images are keyed by the exact path string used to load them.
type ArtworkCache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewArtworkCache creates an empty artwork cache.
func NewArtworkCache() *ArtworkCache {
	return &ArtworkCache{
		images: make(map[string]image.Image),
	}
}

// Load retrieves artwork from the cache or decodes it from disk.
//
// Parameters:
//   - path: File path of the coloring page. Supported formats are PNG, JPEG,
//     GIF, BMP, TIFF and WebP.
//
// Returns:
//   - image.Image: The decoded artwork. Callers must not modify it, since the
//     same value is handed out on every later call for path.
//   - error: Non-nil if the file cannot be opened or decoded.
//
// Entries are keyed by the exact path string. Use Evict to force a new decode.
//
// # Errors
//
//   - Returns "failed to open artwork" if the file does not exist or cannot be read
//   - Returns "failed to decode artwork" if the file is not a supported image
func (c *ArtworkCache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open artwork: %w", err)
	}

	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to decode artwork: %w", err)
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// Evict removes one entry from the cache. Unknown paths are ignored.
func (c *ArtworkCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// Clear removes all entries from the cache.
func (c *ArtworkCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.mu.Unlock()
}

// Len returns the number of cached images.
func (c *ArtworkCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}

// ArtworkInfo describes a loaded coloring page and the canvas it was
// rasterized onto.
type ArtworkInfo struct {
	Path         string  `json:"path"`
	Format       string  `json:"format"`
	SourceWidth  int     `json:"source_width"`
	SourceHeight int     `json:"source_height"`
	Width        int     `json:"width"`
	Height       int     `json:"height"`
	Scale        float64 `json:"scale"`
	OffsetX      int     `json:"offset_x"`
	OffsetY      int     `json:"offset_y"`
}

// Rasterize renders artwork onto a new opaque white canvas of the given size.
//
// The artwork is scaled by min(width/srcWidth, height/srcHeight), so it may
// grow or shrink, and centered. Nearest-neighbour resampling is used so
// outlines stay black and flat regions stay flat; smoothing would introduce
// gradient pixels that break exact-match fills. Transparent artwork pixels
// show the white background.
//
// The result is deterministic: rasterizing the same image twice yields
// byte-identical canvases.
//
// Parameters:
//   - img: Decoded artwork, usually from ArtworkCache.Load.
//   - width, height: Canvas size in pixels. Both must be positive.
//
// Returns:
//   - *Buffer: A fresh canvas owned by the caller.
//   - error: Non-nil if the size is invalid or the artwork is empty.
//
// # Errors
//
//   - Returns ErrInvalidSize if width or height is not positive
//   - Returns error if img has an empty bounds rectangle
func Rasterize(img image.Image, width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	src := img.Bounds()
	if src.Empty() {
		return nil, fmt.Errorf("artwork has no pixels")
	}

	tw, th := fitSize(src.Dx(), src.Dy(), width, height)

	var fitted image.Image = img
	if tw != src.Dx() || th != src.Dy() {
		fitted = imaging.Resize(img, tw, th, imaging.NearestNeighbor)
	}

	bg := imaging.New(width, height, color.White)
	out := imaging.OverlayCenter(bg, fitted, 1.0)

	return FromImage(out), nil
}

// Placement reports where Rasterize puts artwork of the given source size on
// a canvas of the given size.
func Placement(srcWidth, srcHeight, width, height int) (scale float64, offsetX, offsetY int) {
	tw, th := fitSize(srcWidth, srcHeight, width, height)
	scale = math.Min(float64(width)/float64(srcWidth), float64(height)/float64(srcHeight))
	// imaging.OverlayCenter centers with integer division.
	offsetX = width/2 - tw/2
	offsetY = height/2 - th/2
	return scale, offsetX, offsetY
}

// DescribeArtwork builds the ArtworkInfo for a rasterized page.
func DescribeArtwork(path string, img image.Image, width, height int) *ArtworkInfo {
	src := img.Bounds()
	scale, ox, oy := Placement(src.Dx(), src.Dy(), width, height)

	format := "unknown"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		format = "png"
	case ".jpg", ".jpeg":
		format = "jpeg"
	case ".gif":
		format = "gif"
	case ".bmp":
		format = "bmp"
	case ".tif", ".tiff":
		format = "tiff"
	case ".webp":
		format = "webp"
	}

	return &ArtworkInfo{
		Path:         path,
		Format:       format,
		SourceWidth:  src.Dx(),
		SourceHeight: src.Dy(),
		Width:        width,
		Height:       height,
		Scale:        math.Round(scale*1000) / 1000,
		OffsetX:      ox,
		OffsetY:      oy,
	}
}

func fitSize(srcWidth, srcHeight, width, height int) (int, int) {
	scale := math.Min(float64(width)/float64(srcWidth), float64(height)/float64(srcHeight))
	tw := int(math.Round(float64(srcWidth) * scale))
	th := int(math.Round(float64(srcHeight) * scale))
	if tw < 1 {
		tw = 1
	}
	if th < 1 {
		th = 1
	}
	if tw > width {
		tw = width
	}
	if th > height {
		th = height
	}
	return tw, th
}
