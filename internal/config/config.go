// Package config reads the server settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/ironsheep/coloring-book-mcp/internal/paint"
	"github.com/ironsheep/coloring-book-mcp/internal/session"
)

// Environment variables understood by the server.
const (
	EnvArtwork   = "COLORING_BOOK_ARTWORK"
	EnvWidth     = "COLORING_BOOK_WIDTH"
	EnvHeight    = "COLORING_BOOK_HEIGHT"
	EnvIdleReset = "COLORING_BOOK_IDLE_RESET"
	EnvPalette   = "COLORING_BOOK_PALETTE"
	EnvLogLevel  = "COLORING_BOOK_LOG_LEVEL"
	EnvMaxPixels = "COLORING_BOOK_MAX_PIXELS"
)

// Default canvas size.
const (
	DefaultWidth  = 1307
	DefaultHeight = 1030

	// DefaultMaxPixels bounds canvases and scaled renders to four default
	// canvases.
	DefaultMaxPixels = 4 * DefaultWidth * DefaultHeight
)

// Config holds the server settings.
type Config struct {
	// Artwork is a coloring page loaded at startup. Empty means clients must
	// call canvas_load first.
	Artwork string

	Width  int
	Height int

	// IdleReset is the inactivity timeout; zero disables it.
	IdleReset time.Duration

	// Palette names the palette used to resolve colour identifiers.
	Palette string

	// MaxPixels is the largest width*height accepted for a canvas or a
	// scaled render.
	MaxPixels int

	Debug bool
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		IdleReset: session.DefaultIdleReset,
		Palette:   paint.PaletteClassic,
		MaxPixels: DefaultMaxPixels,
	}
}

// FromEnv returns Default overridden by the environment.
func FromEnv() (Config, error) {
	return Load(os.Getenv)
}

// Load reads settings through getenv, which lets tests supply a map.
func Load(getenv func(string) string) (Config, error) {
	cfg := Default()

	cfg.Artwork = getenv(EnvArtwork)
	cfg.Debug = getenv(EnvLogLevel) == "debug"

	if v := getenv(EnvWidth); v != "" {
		n, err := positiveInt(EnvWidth, v)
		if err != nil {
			return Config{}, err
		}
		cfg.Width = n
	}
	if v := getenv(EnvHeight); v != "" {
		n, err := positiveInt(EnvHeight, v)
		if err != nil {
			return Config{}, err
		}
		cfg.Height = n
	}

	if v := getenv(EnvMaxPixels); v != "" {
		n, err := positiveInt(EnvMaxPixels, v)
		if err != nil {
			return Config{}, err
		}
		cfg.MaxPixels = n
	}
	if !cfg.Fits(float64(cfg.Width), float64(cfg.Height)) {
		return Config{}, fmt.Errorf("%dx%d canvas exceeds %s=%d", cfg.Width, cfg.Height, EnvMaxPixels, cfg.MaxPixels)
	}

	if v := getenv(EnvIdleReset); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvIdleReset, err)
		}
		if d < 0 {
			d = 0
		}
		cfg.IdleReset = d
	}

	if v := getenv(EnvPalette); v != "" {
		if _, err := paint.LookupPalette(v); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvPalette, err)
		}
		cfg.Palette = v
	}

	return cfg, nil
}

// Fits reports whether a width x height image stays within MaxPixels.
// The product is computed in floating point so huge sizes cannot overflow.
func (c Config) Fits(width, height float64) bool {
	return width*height <= float64(c.MaxPixels)
}

func positiveInt(name, v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s: must be positive, got %d", name, n)
	}
	return n, nil
}
