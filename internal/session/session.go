package session

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ironsheep/coloring-book-mcp/internal/canvas"
	"github.com/ironsheep/coloring-book-mcp/internal/paint"
)

// DefaultIdleReset is how long a session may sit without interaction before
// the canvas is reset to the base artwork.
const DefaultIdleReset = 60 * time.Second

var (
	// ErrClosed is returned by operations on a closed session.
	ErrClosed = errors.New("session closed")

	// ErrNoArtwork is returned when no coloring page has been loaded yet.
	ErrNoArtwork = errors.New("no artwork loaded")
)

// Session is one interactive coloring session: the rasterized base artwork
// and the live canvas painted over it.
//
// Every operation holds the session lock for its whole duration, so at most
// one fill is in flight and a reset (manual or idle) waits for an active fill
// to finish. Waiting callers are queued, not rejected.
//
// Lifecycle:
//   - New: copies the base artwork and arms the idle timer
//   - Fill, Reset, Touch: count as activity and re-arm the timer
//   - idle timeout: restores the base artwork; the session stays usable
//   - Close: stops the timer for good
//
// # Errors
//
//   - New returns ErrNoArtwork if base is nil
//   - Fill and Reset return ErrClosed after Close
//   - Fill passes through canvas errors from paint.Fill
type Session struct {
	mu sync.Mutex

	base *canvas.Snapshot
	buf  *canvas.Buffer
	rnd  paint.RandomSource

	idle   time.Duration
	timer  *time.Timer
	gen    uint64
	closed bool

	fills        int
	resets       int
	idleResets   int
	lastActivity time.Time

	logger *log.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithRandom sets the source of stroke shading draws.
func WithRandom(rnd paint.RandomSource) Option {
	return func(s *Session) {
		if rnd != nil {
			s.rnd = rnd
		}
	}
}

// WithIdleReset sets the inactivity timeout. Zero or negative disables it.
func WithIdleReset(d time.Duration) Option {
	return func(s *Session) {
		s.idle = d
	}
}

// WithLogger enables debug logging of fills and resets.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// New starts a session on a copy of base. base itself is kept as the reset
// target and never painted.
func New(base *canvas.Buffer, opts ...Option) (*Session, error) {
	if base == nil {
		return nil, ErrNoArtwork
	}
	snap, err := base.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("invalid base artwork: %w", err)
	}

	s := &Session{
		base:         snap,
		buf:          base.Clone(),
		rnd:          paint.NewRandomSource(time.Now().UnixNano()),
		idle:         DefaultIdleReset,
		lastActivity: time.Now(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.mu.Lock()
	s.armLocked()
	s.mu.Unlock()

	return s, nil
}

// Fill applies one fill request to the canvas and re-arms the idle timer.
func (s *Session) Fill(req paint.FillRequest) (paint.FillResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return paint.FillResult{}, ErrClosed
	}
	s.touchLocked()

	res, err := paint.Fill(s.buf, req, s.rnd)
	if err != nil {
		return res, err
	}
	if res.Applied() {
		s.fills++
	}
	s.debugf("fill (%d,%d) %s style=%s erase=%v: %s, %d pixels",
		req.X, req.Y, req.Color, req.Style, req.Erase, res.Status, res.Filled)
	return res, nil
}

// Reset replaces the whole canvas with the base artwork, discarding every
// fill. It waits for an in-flight fill to finish.
func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	s.touchLocked()
	return s.resetLocked("manual")
}

// Touch records a non-fill interaction and re-arms the idle timer.
func (s *Session) Touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.touchLocked()
	}
}

// Close stops the idle timer. Further fills and resets fail with ErrClosed.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// Image returns a copy of the current canvas.
func (s *Session) Image() *canvas.Buffer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Clone()
}

// Sample returns the colour of one canvas pixel.
func (s *Session) Sample(x, y int) (*canvas.ColorResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.SampleColor(x, y)
}

// Regions lists the paintable regions of the current canvas.
func (s *Session) Regions(minArea, limit int) (*paint.RegionsResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return paint.Regions(s.buf, minArea, limit)
}

// Render encodes the current canvas as a base64 PNG. A positive grid draws a
// labelled coordinate grid with that spacing, in canvas pixels, over the
// rendered copy.
func (s *Session) Render(scale float64, grid int) (*canvas.RenderResult, error) {
	var (
		img *canvas.Buffer
		err error
	)
	s.mu.Lock()
	if grid > 0 {
		img, err = canvas.GridOverlay(s.buf, grid, true)
	} else {
		img = s.buf.Clone()
	}
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	res, err := canvas.EncodePNG(img, scale)
	if err != nil {
		return nil, err
	}
	res.GridSpacing = grid
	return res, nil
}

// Save writes the current canvas to a PNG file.
func (s *Session) Save(path string) (*canvas.RenderResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return canvas.SavePNG(s.buf, path)
}

// Stats describes a session.
type Stats struct {
	Width        int       `json:"width"`
	Height       int       `json:"height"`
	Fills        int       `json:"fills"`
	Resets       int       `json:"resets"`
	IdleResets   int       `json:"idle_resets"`
	IdleReset    string    `json:"idle_reset"`
	LastActivity time.Time `json:"last_activity"`
	Closed       bool      `json:"closed"`
}

// Stats returns counters and settings of the session.
func (s *Session) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	idle := "disabled"
	if s.idle > 0 {
		idle = s.idle.String()
	}
	return Stats{
		Width:        s.buf.Width(),
		Height:       s.buf.Height(),
		Fills:        s.fills,
		Resets:       s.resets,
		IdleResets:   s.idleResets,
		IdleReset:    idle,
		LastActivity: s.lastActivity,
		Closed:       s.closed,
	}
}

func (s *Session) touchLocked() {
	s.lastActivity = time.Now()
	s.armLocked()
}

// armLocked (re)starts the idle timer. Each arming gets a new generation so a
// timer that fired while a fill held the lock cannot reset that fill.
func (s *Session) armLocked() {
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.idle <= 0 || s.closed {
		return
	}
	gen := s.gen
	s.timer = time.AfterFunc(s.idle, func() { s.idleReset(gen) })
}

func (s *Session) idleReset(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || gen != s.gen {
		return
	}
	s.timer = nil
	if err := s.resetLocked("idle"); err != nil {
		log.Printf("Idle reset failed: %v", err)
		return
	}
	s.idleResets++
}

func (s *Session) resetLocked(reason string) error {
	if err := s.buf.Restore(s.base); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	s.resets++
	s.debugf("%s reset", reason)
	return nil
}

func (s *Session) debugf(format string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}
