package paint

import (
	"errors"
	"testing"

	"github.com/ironsheep/coloring-book-mcp/internal/canvas"
)

func TestRegions_Ring(t *testing.T) {
	b := ringCanvas(t)

	result, err := Regions(b, 1, 0)
	if err != nil {
		t.Fatalf("Regions failed: %v", err)
	}
	if result.Count != 2 {
		t.Fatalf("Count: got %d, want 2", result.Count)
	}

	outer, inner := result.Regions[0], result.Regions[1]
	if outer.Area != 24 || inner.Area != 9 {
		t.Errorf("areas: got %d and %d, want 24 and 9", outer.Area, inner.Area)
	}
	if outer.Seed != (Point{0, 0}) {
		t.Errorf("outer seed: got %v, want (0,0)", outer.Seed)
	}
	if inner.Seed != (Point{2, 2}) {
		t.Errorf("inner seed: got %v, want (2,2)", inner.Seed)
	}
	if inner.Bounds != (Bounds{2, 2, 5, 5}) {
		t.Errorf("inner bounds: got %v", inner.Bounds)
	}
	if inner.Color != "#C8C8C8" || inner.Background {
		t.Errorf("inner colour: got %s background=%v", inner.Color, inner.Background)
	}
}

func TestRegions_SeedFillsWholeRegion(t *testing.T) {
	b := ringCanvas(t)

	result, err := Regions(b, 1, 0)
	if err != nil {
		t.Fatalf("Regions failed: %v", err)
	}
	for _, r := range result.Regions {
		res, err := Fill(b.Clone(), FillRequest{X: r.Seed.X, Y: r.Seed.Y, Color: "#00FF00"}, noVariation)
		if err != nil {
			t.Fatalf("Fill failed: %v", err)
		}
		if res.Filled != r.Area {
			t.Errorf("region at %v: fill covered %d pixels, area is %d", r.Seed, res.Filled, r.Area)
		}
	}
}

func TestRegions_MinAreaAndLimit(t *testing.T) {
	b := ringCanvas(t)

	result, err := Regions(b, 10, 0)
	if err != nil {
		t.Fatalf("Regions failed: %v", err)
	}
	if result.Count != 1 || result.Skipped != 1 {
		t.Errorf("minArea 10: got count=%d skipped=%d, want 1 and 1", result.Count, result.Skipped)
	}

	result, err = Regions(b, 1, 1)
	if err != nil {
		t.Fatalf("Regions failed: %v", err)
	}
	if result.Count != 1 || result.Regions[0].Area != 24 {
		t.Errorf("limit 1: got %+v", result.Regions)
	}
}

func TestRegions_AllOutline(t *testing.T) {
	b := newCanvas(t, 3, 3, black)

	result, err := Regions(b, 1, 0)
	if err != nil {
		t.Fatalf("Regions failed: %v", err)
	}
	if result.Count != 0 || result.Regions == nil {
		t.Errorf("expected an empty, non-nil list, got %+v", result)
	}
}

func TestRegions_Background(t *testing.T) {
	b := newCanvas(t, 3, 1, canvas.White)
	mustSet(t, b, 1, 0, black)

	result, err := Regions(b, 1, 0)
	if err != nil {
		t.Fatalf("Regions failed: %v", err)
	}
	if result.Count != 2 {
		t.Fatalf("Count: got %d, want 2", result.Count)
	}
	for _, r := range result.Regions {
		if !r.Background || r.Color != "#FFFFFF" {
			t.Errorf("region %v: background=%v colour=%s", r.Seed, r.Background, r.Color)
		}
	}
}

func TestRegions_NilCanvas(t *testing.T) {
	if _, err := Regions(nil, 1, 0); !errors.Is(err, canvas.ErrUnavailable) {
		t.Errorf("got %v, want ErrUnavailable", err)
	}
}
