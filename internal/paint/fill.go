package paint

import (
	"fmt"

	"github.com/ironsheep/coloring-book-mcp/internal/canvas"
)

// Status describes the outcome of a fill. Every status except StatusFilled is
// a silent no-op: the canvas is left byte-for-byte unchanged.
type Status string

const (
	StatusFilled            Status = "filled"
	StatusOutOfBounds       Status = "out_of_bounds"
	StatusInvalidColor      Status = "invalid_color"
	StatusInvalidStyle      Status = "invalid_style"
	StatusOutline           Status = "outline"
	StatusAlreadyBackground Status = "already_background"
)

// eraseTolerance is the per-channel absolute difference under which a pixel
// still belongs to the region being erased.
const eraseTolerance = 30

// FillRequest is one user interaction with the canvas.
type FillRequest struct {
	// X and Y are the seed pixel in canvas coordinates.
	X int `json:"x"`
	Y int `json:"y"`

	// Color is the fill colour as "#RRGGBB". It must parse in both modes.
	Color string `json:"color"`

	// Style selects the stroke effect; empty means StyleSolid. Ignored when
	// erasing.
	Style Style `json:"style,omitempty"`

	// Erase restores the region to opaque white instead of painting it.
	Erase bool `json:"erase,omitempty"`
}

// Bounds is the bounding box of the pixels a fill changed.
// (X1, Y1) is inclusive, (X2, Y2) is exclusive.
type Bounds struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// FillResult reports what a fill did.
type FillResult struct {
	Status Status `json:"status"`

	// Filled is the number of pixels written.
	Filled int `json:"filled"`

	// Visited is the number of pixels whose membership was evaluated,
	// including the boundary pixels that failed it.
	Visited int `json:"visited"`

	// Bounds covers the written pixels. Nil unless Status is StatusFilled.
	Bounds *Bounds `json:"bounds,omitempty"`

	// Reference is the seed pixel the region was matched against.
	Reference *canvas.RGBA `json:"reference,omitempty"`
}

// Applied reports whether the fill changed the canvas.
func (r FillResult) Applied() bool {
	return r.Status == StatusFilled
}

type point struct {
	x, y int
}

// Fill flood-fills the 4-connected region around the seed of req.
//
// The seed pixel is the match reference. In paint mode a pixel belongs to the
// region when all four channels equal the reference; in erase mode when each
// of R, G and B is within eraseTolerance of it. Near-black seeds are outlines
// and are never filled; erasing a near-white seed is a no-op.
//
// Painted pixels get the target colour shaded by the style's StrokeEffect with
// one draw from rnd per pixel. A nil rnd means no variation.
//
// The traversal runs on a snapshot of buf and is committed with a single
// Restore, so the canvas either receives the whole fill or nothing.
//
// Parameters:
//   - buf: The canvas to paint. It is modified in place.
//   - req: Seed point, colour, style and mode of the fill.
//   - rnd: Source of shading draws for the stroke effect. May be nil.
//
// Returns:
//   - FillResult: The status, pixel counts, bounds and reference colour.
//     Miss-clicks, malformed colours and guarded seeds are reported here as a
//     status other than StatusFilled, with the canvas unchanged.
//   - error: Non-nil only when the canvas itself cannot be read or written.
//
// # Errors
//
//   - Returns canvas.ErrUnavailable if buf is nil
//   - Returns error if the snapshot or the commit fails; buf is unchanged
func Fill(buf *canvas.Buffer, req FillRequest, rnd RandomSource) (FillResult, error) {
	if buf == nil {
		return FillResult{}, fmt.Errorf("fill: %w", canvas.ErrUnavailable)
	}

	ref, err := buf.Get(req.X, req.Y)
	if err != nil {
		return FillResult{Status: StatusOutOfBounds}, nil
	}

	target, ok := ParseHex(req.Color)
	if !ok {
		return FillResult{Status: StatusInvalidColor}, nil
	}

	style := req.Style
	if style == "" {
		style = StyleSolid
	}
	effect, ok := style.Effect()
	if !ok {
		return FillResult{Status: StatusInvalidStyle}, nil
	}

	if ref.IsOutline() {
		return FillResult{Status: StatusOutline, Reference: &ref}, nil
	}
	if req.Erase && ref.IsBackground() {
		return FillResult{Status: StatusAlreadyBackground, Reference: &ref}, nil
	}

	snap, err := buf.Snapshot()
	if err != nil {
		return FillResult{}, fmt.Errorf("fill: %w", err)
	}

	if rnd == nil {
		rnd = FixedSource(0.5)
	}

	member := exactMatch(ref)
	if req.Erase {
		member = tolerantMatch(ref, eraseTolerance)
	}

	w, h := snap.Width, snap.Height
	visited := newBitset(w * h)
	stack := make([]point, 0, 1024)
	stack = append(stack, point{req.X, req.Y})

	result := FillResult{Status: StatusFilled, Reference: &ref}
	minX, minY, maxX, maxY := w, h, -1, -1

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		i := p.y*w + p.x
		if visited.has(i) {
			continue
		}
		visited.set(i)
		result.Visited++

		if !member(snap.At(p.x, p.y)) {
			continue
		}

		if req.Erase {
			snap.Put(p.x, p.y, canvas.White)
		} else {
			snap.Put(p.x, p.y, effect.Shade(target, rnd.Float64()-0.5))
		}
		result.Filled++

		if p.x < minX {
			minX = p.x
		}
		if p.x > maxX {
			maxX = p.x
		}
		if p.y < minY {
			minY = p.y
		}
		if p.y > maxY {
			maxY = p.y
		}

		if p.x > 0 {
			stack = append(stack, point{p.x - 1, p.y})
		}
		if p.x < w-1 {
			stack = append(stack, point{p.x + 1, p.y})
		}
		if p.y > 0 {
			stack = append(stack, point{p.x, p.y - 1})
		}
		if p.y < h-1 {
			stack = append(stack, point{p.x, p.y + 1})
		}
	}

	if err := buf.Restore(snap); err != nil {
		return FillResult{}, fmt.Errorf("fill: commit: %w", err)
	}

	result.Bounds = &Bounds{X1: minX, Y1: minY, X2: maxX + 1, Y2: maxY + 1}
	return result, nil
}

func exactMatch(ref canvas.RGBA) func(canvas.RGBA) bool {
	return func(c canvas.RGBA) bool {
		return c == ref
	}
}

func tolerantMatch(ref canvas.RGBA, tolerance int) func(canvas.RGBA) bool {
	return func(c canvas.RGBA) bool {
		return absDiff(c.R, ref.R) <= tolerance &&
			absDiff(c.G, ref.G) <= tolerance &&
			absDiff(c.B, ref.B) <= tolerance
	}
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

// bitset marks one bit per pixel.
type bitset []byte

func newBitset(n int) bitset {
	return make(bitset, (n+7)/8)
}

func (b bitset) has(i int) bool {
	return b[i>>3]&(1<<(uint(i)&7)) != 0
}

func (b bitset) set(i int) {
	b[i>>3] |= 1 << (uint(i) & 7)
}
