package canvas

import "testing"

func TestNewColorChannelOrder(t *testing.T) {
	c := NewColor(1, 2, 3, 4)
	if c.R != 1 || c.G != 2 || c.B != 3 || c.A != 4 {
		t.Errorf("NewColor(1,2,3,4) = %+v, want R=1 G=2 B=3 A=4", c)
	}
}

func TestColorFromHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want Color
	}{
		{"six digit", "ff0000", NewColor(255, 0, 0, 255)},
		{"six digit with hash", "#00ff00", NewColor(0, 255, 0, 255)},
		{"eight digit", "0000ff80", NewColor(0, 0, 255, 0x80)},
		{"three digit", "f0a", NewColor(0xff, 0, 0xaa, 255)},
		{"four digit", "f0a8", NewColor(0xff, 0, 0xaa, 0x88)},
		{"mixed case", "#AbCdEf", NewColor(0xab, 0xcd, 0xef, 255)},
		{"invalid", "zznope", NewColor(0, 0, 0, 255)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ColorFromHex(tt.hex)
			if got != tt.want {
				t.Errorf("ColorFromHex(%q) = %+v, want %+v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestColorWithAlpha(t *testing.T) {
	c := Red.WithAlpha(128)
	if c.R != 255 || c.A != 128 {
		t.Errorf("Red.WithAlpha(128) = %+v", c)
	}
	if Red.A != 255 {
		t.Error("WithAlpha mutated the receiver")
	}
}

func TestColorRoundTrip(t *testing.T) {
	orig := NewColor(10, 20, 30, 40)
	got := FromColor(orig.Color())
	if got != orig {
		t.Errorf("round trip = %+v, want %+v", got, orig)
	}
}
