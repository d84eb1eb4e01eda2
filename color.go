package canvas

import "image/color"

// Color is a four-channel 8-bit color.
//
// The channels are stored in BGRA field order, which is the order the
// widget layer historically serialized colors in. The rasterizer backend
// and the pixel buffer both consume RGBA order; the paint resolver
// performs the translation at that boundary. Never copy channel bytes
// across the boundary without going through the resolver.
type Color struct {
	B, G, R, A uint8
}

// NewColor creates a color from RGBA channel values.
func NewColor(r, g, b, a uint8) Color {
	return Color{B: b, G: g, R: r, A: a}
}

// ColorFromHex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with an
// optional '#' prefix. Invalid input yields opaque black.
func ColorFromHex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3: // RGB
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
		parseHex(hex[6:8], &a)
	default:
		return Color{A: 255}
	}

	return NewColor(uint8(r), uint8(g), uint8(b), uint8(a))
}

// parseHex is a helper for hex parsing.
func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return
		}
	}
}

// WithAlpha returns the color with its alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// Color converts to the standard color.Color interface.
func (c Color) Color() color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromColor converts a standard color.Color to Color.
func FromColor(c color.Color) Color {
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	return NewColor(nrgba.R, nrgba.G, nrgba.B, nrgba.A)
}

// Common colors.
var (
	Black       = NewColor(0, 0, 0, 255)
	White       = NewColor(255, 255, 255, 255)
	Red         = NewColor(255, 0, 0, 255)
	Green       = NewColor(0, 255, 0, 255)
	Blue        = NewColor(0, 0, 255, 255)
	Transparent = NewColor(0, 0, 0, 0)
)
