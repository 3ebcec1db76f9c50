package paint

import (
	"fmt"
	"sort"

	"github.com/ironsheep/coloring-book-mcp/internal/canvas"
)

// Point is a canvas coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Region is one paintable area of the canvas: a 4-connected run of pixels
// sharing exactly the same colour, which is what a paint-mode fill seeded
// anywhere inside it would cover.
type Region struct {
	// Seed is the top-most, left-most pixel of the region. Filling there
	// covers the whole region.
	Seed Point `json:"seed"`

	// Bounds is the bounding box of the region.
	Bounds Bounds `json:"bounds"`

	// Area is the number of pixels in the region.
	Area int `json:"area"`

	// Color is the region's current colour as "#RRGGBB".
	Color string `json:"color"`

	// Background is true for regions that are still near-white.
	Background bool `json:"background"`
}

// RegionsResult lists the paintable regions of a canvas.
type RegionsResult struct {
	// Regions are sorted by area, largest first.
	Regions []Region `json:"regions"`

	// Count is len(Regions).
	Count int `json:"count"`

	// Skipped is the number of regions smaller than the minimum area.
	Skipped int `json:"skipped"`
}

// Regions finds the paintable regions of buf.
//
// Outline pixels never belong to a region. Regions smaller than minArea are
// counted in Skipped but not listed; at most limit regions are returned when
// limit is positive.
func Regions(buf *canvas.Buffer, minArea, limit int) (*RegionsResult, error) {
	snap, err := buf.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("regions: %w", err)
	}

	w, h := snap.Width, snap.Height
	visited := newBitset(w * h)
	result := &RegionsResult{Regions: make([]Region, 0)}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if visited.has(y*w + x) {
				continue
			}
			c := snap.At(x, y)
			if c.IsOutline() {
				visited.set(y*w + x)
				continue
			}

			r := labelRegion(snap, visited, x, y)
			if r.Area < minArea {
				result.Skipped++
				continue
			}
			r.Color = canvas.HexOf(c.R, c.G, c.B)
			r.Background = c.IsBackground()
			result.Regions = append(result.Regions, r)
		}
	}

	sort.SliceStable(result.Regions, func(i, j int) bool {
		return result.Regions[i].Area > result.Regions[j].Area
	})
	if limit > 0 && len(result.Regions) > limit {
		result.Regions = result.Regions[:limit]
	}
	result.Count = len(result.Regions)

	return result, nil
}

// labelRegion marks every pixel of the region containing (x, y) as visited and
// measures it. Only member pixels are marked, so neighbouring regions can
// still be labelled from their own seeds.
func labelRegion(snap *canvas.Snapshot, visited bitset, x, y int) Region {
	ref := snap.At(x, y)
	w, h := snap.Width, snap.Height

	r := Region{Seed: Point{X: x, Y: y}}
	minX, minY, maxX, maxY := x, y, x, y

	stack := []point{{x, y}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.x < 0 || p.x >= w || p.y < 0 || p.y >= h {
			continue
		}
		i := p.y*w + p.x
		if visited.has(i) || snap.At(p.x, p.y) != ref {
			continue
		}
		visited.set(i)
		r.Area++

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

		stack = append(stack,
			point{p.x - 1, p.y},
			point{p.x + 1, p.y},
			point{p.x, p.y - 1},
			point{p.x, p.y + 1},
		)
	}

	r.Bounds = Bounds{X1: minX, Y1: minY, X2: maxX + 1, Y2: maxY + 1}
	return r
}
