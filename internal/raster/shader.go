package raster

import (
	"errors"
	"math"
)

// RGBA is the rasterizer-native color: normalized, non-premultiplied
// channels in RGBA order.
type RGBA struct {
	R, G, B, A float64
}

// SpreadMode defines gradient behavior beyond the stop range.
type SpreadMode int

const (
	// SpreadPad clamps to the nearest stop color.
	SpreadPad SpreadMode = iota
	// SpreadRepeat tiles the gradient pattern.
	SpreadRepeat
)

// Stop is a gradient color stop. Offset is a fraction in [0, 1].
type Stop struct {
	Offset float64
	Color  RGBA
}

// Shader produces a color for a pixel position.
// Implementations must be usable from a single goroutine.
type Shader interface {
	ColorAt(x, y float64) RGBA
}

// Solid is a shader returning one color everywhere.
type Solid struct {
	Color RGBA
}

// NewSolid creates a solid shader.
func NewSolid(c RGBA) Solid {
	return Solid{Color: c}
}

// ColorAt implements Shader.
func (s Solid) ColorAt(_, _ float64) RGBA {
	return s.Color
}

// ErrDegenerateGradient is returned when a gradient definition cannot
// be rasterized (coincident endpoints or no stops).
var ErrDegenerateGradient = errors.New("raster: degenerate linear gradient")

// LinearGradient is a shader interpolating ordered stops along the axis
// from start to end. Stops are consumed in the order supplied.
type LinearGradient struct {
	start, end Point
	stops      []Stop
	spread     SpreadMode
	dx, dy     float64
	lenSq      float64
}

// NewLinearGradient creates a linear gradient shader. It rejects
// definitions that cannot produce a visible gradient: coincident
// endpoints or an empty stop list.
func NewLinearGradient(start, end Point, stops []Stop, spread SpreadMode) (*LinearGradient, error) {
	dx := end.X - start.X
	dy := end.Y - start.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 || len(stops) == 0 {
		return nil, ErrDegenerateGradient
	}
	return &LinearGradient{
		start:  start,
		end:    end,
		stops:  stops,
		spread: spread,
		dx:     dx,
		dy:     dy,
		lenSq:  lenSq,
	}, nil
}

// ColorAt implements Shader. The point is projected onto the gradient
// axis and the surrounding stops are interpolated.
func (g *LinearGradient) ColorAt(x, y float64) RGBA {
	t := ((x-g.start.X)*g.dx + (y-g.start.Y)*g.dy) / g.lenSq
	t = g.applySpread(t)

	stops := g.stops
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Offset {
		return last.Color
	}
	for i := 1; i < len(stops); i++ {
		if t <= stops[i].Offset {
			s0, s1 := stops[i-1], stops[i]
			if s1.Offset == s0.Offset {
				return s0.Color
			}
			local := (t - s0.Offset) / (s1.Offset - s0.Offset)
			return lerpColor(s0.Color, s1.Color, local)
		}
	}
	return last.Color
}

func (g *LinearGradient) applySpread(t float64) float64 {
	switch g.spread {
	case SpreadRepeat:
		t -= math.Floor(t)
		if t < 0 {
			t++
		}
	default: // SpreadPad
		if t < 0 {
			t = 0
		}
		if t > 1 {
			t = 1
		}
	}
	return t
}

// lerpColor interpolates two colors channel-wise.
func lerpColor(c0, c1 RGBA, t float64) RGBA {
	return RGBA{
		R: c0.R + t*(c1.R-c0.R),
		G: c0.G + t*(c1.G-c0.G),
		B: c0.B + t*(c1.B-c0.B),
		A: c0.A + t*(c1.A-c0.A),
	}
}
