package canvas

import (
	"errors"
	"testing"
)

func TestSampleColor(t *testing.T) {
	b := newFilledBuffer(t, 10, 10, RGBA{255, 128, 64, 255})

	result, err := b.SampleColor(5, 5)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}

	if result.Hex != "#FF8040" {
		t.Errorf("Hex: got %s, want #FF8040", result.Hex)
	}
	if result.RGB != (RGBColor{255, 128, 64}) {
		t.Errorf("RGB: got %v", result.RGB)
	}
	if result.RGBA != (RGBA{255, 128, 64, 255}) {
		t.Errorf("RGBA: got %v", result.RGBA)
	}
	if result.X != 5 || result.Y != 5 {
		t.Errorf("position: got (%d,%d)", result.X, result.Y)
	}
}

func TestSampleColor_Flags(t *testing.T) {
	tests := []struct {
		name           string
		px             RGBA
		wantOutline    bool
		wantBackground bool
	}{
		{"black", RGBA{0, 0, 0, 255}, true, false},
		{"near black", RGBA{10, 10, 10, 255}, true, false},
		{"dark gray", RGBA{11, 10, 10, 255}, false, false},
		{"white", RGBA{255, 255, 255, 255}, false, true},
		{"near white", RGBA{245, 245, 245, 255}, false, true},
		{"light gray", RGBA{244, 250, 250, 255}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newFilledBuffer(t, 1, 1, tt.px)
			result, err := b.SampleColor(0, 0)
			if err != nil {
				t.Fatalf("SampleColor failed: %v", err)
			}
			if result.Outline != tt.wantOutline {
				t.Errorf("Outline: got %v, want %v", result.Outline, tt.wantOutline)
			}
			if result.Background != tt.wantBackground {
				t.Errorf("Background: got %v, want %v", result.Background, tt.wantBackground)
			}
		})
	}
}

func TestSampleColor_OutOfBounds(t *testing.T) {
	b := newFilledBuffer(t, 10, 10, White)
	if _, err := b.SampleColor(10, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("got %v, want ErrOutOfBounds", err)
	}
}

func TestHSLOf(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    HSLColor
	}{
		{"red", 255, 0, 0, HSLColor{0, 100, 50}},
		{"green", 0, 255, 0, HSLColor{120, 100, 50}},
		{"blue", 0, 0, 255, HSLColor{240, 100, 50}},
		{"white", 255, 255, 255, HSLColor{0, 0, 100}},
		{"black", 0, 0, 0, HSLColor{0, 0, 0}},
		{"gray", 128, 128, 128, HSLColor{0, 0, 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HSLOf(tt.r, tt.g, tt.b)
			if abs(got.H-tt.want.H) > 1 || abs(got.S-tt.want.S) > 1 || abs(got.L-tt.want.L) > 1 {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestHSLOf_RoundsHue(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		wantH   int
	}{
		{"hue 4.7 rounds up", 255, 20, 0, 5},
		{"hue 359.8 wraps to 0", 255, 0, 1, 0},
		{"hue 349.4 rounds down", 200, 30, 60, 349},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HSLOf(tt.r, tt.g, tt.b); got.H != tt.wantH {
				t.Errorf("H: got %d, want %d", got.H, tt.wantH)
			}
		})
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
