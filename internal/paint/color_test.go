package paint

import "testing"

func TestParseHex(t *testing.T) {
	tests := []struct {
		in     string
		want   Color
		wantOK bool
	}{
		{"#FF0000", Color{255, 0, 0}, true},
		{"#ff9900", Color{255, 153, 0}, true},
		{"33CC33", Color{51, 204, 51}, true},
		{"#3366Ff", Color{51, 102, 255}, true},
		{"#000000", Color{0, 0, 0}, true},
		{"#FFF", Color{}, false},
		{"FF00", Color{}, false},
		{"#GG0000", Color{}, false},
		{"##FF0000", Color{}, false},
		{"#FF0000 ", Color{}, false},
		{"red", Color{}, false},
		{"", Color{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseHex(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("ok: got %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestColor_Hex(t *testing.T) {
	c, ok := ParseHex("#9933ff")
	if !ok {
		t.Fatal("ParseHex failed")
	}
	if c.Hex() != "#9933FF" {
		t.Errorf("Hex: got %s, want #9933FF", c.Hex())
	}
	if o := c.Opaque(); o.A != 255 || o.R != 0x99 {
		t.Errorf("Opaque: got %v", o)
	}
}
