package canvas

import (
	"math"
	"testing"

	"github.com/gocanvas/canvas/internal/raster"
)

func TestColorToRasterChannelOrder(t *testing.T) {
	// Color stores BGRA internally; the rasterizer color must come out
	// with channels matched by name, not by position.
	got := colorToRaster(NewColor(255, 0, 0, 255), 1)
	want := raster.RGBA{R: 1, G: 0, B: 0, A: 1}
	if got != want {
		t.Errorf("colorToRaster(red) = %+v, want %+v", got, want)
	}
}

func TestColorToRasterAlphaScale(t *testing.T) {
	got := colorToRaster(NewColor(0, 0, 0, 255), 0.5)
	if math.Abs(got.A-0.5) > 1e-9 {
		t.Errorf("alpha = %v, want 0.5", got.A)
	}
}

func TestResolveSolid(t *testing.T) {
	paint := resolvePaint(SolidColor{Color: Blue}, Rect(0, 0, 10, 10), 1)
	c := paint.Shader.ColorAt(5, 5)
	if c.B != 1 || c.R != 0 || c.A != 1 {
		t.Errorf("solid shader color = %+v, want blue", c)
	}
}

func TestResolveGradientEndsFrameRelative(t *testing.T) {
	brush := LinearGradient{
		Coords: GradientEnds{Start: Pt(0, 0), End: Pt(10, 0)},
		Stops: []GradientStop{
			{Position: 0, Color: Black},
			{Position: 1, Color: White},
		},
	}
	paint := resolvePaint(brush, Rect(100, 100, 10, 10), 1)

	// Gradient endpoints are offset by the frame position, so the axis
	// runs from x=100 to x=110.
	left := paint.Shader.ColorAt(100, 105)
	right := paint.Shader.ColorAt(110, 105)
	if left.R > 0.05 {
		t.Errorf("left edge = %+v, want black", left)
	}
	if right.R < 0.95 {
		t.Errorf("right edge = %+v, want white", right)
	}
}

func TestResolveGradientDirection(t *testing.T) {
	brush := LinearGradient{
		Coords: GradientDirection{Direction: ToRight},
		Stops: []GradientStop{
			{Position: 0, Color: Black},
			{Position: 1, Color: White},
		},
	}
	paint := resolvePaint(brush, Rect(0, 0, 100, 10), 1)
	mid := paint.Shader.ColorAt(50, 5)
	if math.Abs(mid.R-0.5) > 0.02 {
		t.Errorf("midpoint = %+v, want ~0.5 gray", mid)
	}
}

func TestResolveDegenerateGradientFallsBackToWhite(t *testing.T) {
	brush := LinearGradient{
		Coords: GradientEnds{Start: Pt(5, 5), End: Pt(5, 5)},
		Stops:  []GradientStop{{Position: 0, Color: Red}},
	}
	paint := resolvePaint(brush, Rect(0, 0, 10, 10), 1)
	c := paint.Shader.ColorAt(3, 3)
	if c.R != 1 || c.G != 1 || c.B != 1 || c.A != 1 {
		t.Errorf("degenerate fallback = %+v, want opaque white", c)
	}
}

func TestRemapStops(t *testing.T) {
	stops := []GradientStop{
		{Position: 0, Color: Black},
		{Position: 0.5, Color: Red},
		{Position: 1, Color: White},
	}

	t.Run("fractional positions pass through", func(t *testing.T) {
		got := remapStops(stops, 200, 1)
		want := []float64{0, 0.5, 1}
		for i, s := range got {
			if s.Offset != want[i] {
				t.Errorf("stop %d offset = %v, want %v", i, s.Offset, want[i])
			}
		}
	})

	t.Run("pixel positions divide by axis length", func(t *testing.T) {
		got := remapStops([]GradientStop{{Position: 50, Color: Red}}, 200, 1)
		if got[0].Offset != 0.25 {
			t.Errorf("offset = %v, want 0.25", got[0].Offset)
		}
	})

	t.Run("order is preserved", func(t *testing.T) {
		reversed := []GradientStop{
			{Position: 1, Color: White},
			{Position: 0, Color: Black},
		}
		got := remapStops(reversed, 100, 1)
		if got[0].Offset != 1 || got[1].Offset != 0 {
			t.Errorf("offsets = %v, %v; remap must not sort", got[0].Offset, got[1].Offset)
		}
	})
}

func TestGradientEndsFromAngle(t *testing.T) {
	// Angle zero points toward the frame's top; the vector length is
	// the inscribed circle radius.
	z := gradientEndsFromAngle(0, Sz(100, 60))
	if math.Abs(z.X) > 1e-9 || math.Abs(z.Y+30) > 1e-9 {
		t.Errorf("z(0) = %+v, want (0,-30)", z)
	}
	z = gradientEndsFromAngle(math.Pi/2, Sz(100, 60))
	if math.Abs(z.X-30) > 1e-9 || math.Abs(z.Y) > 1e-9 {
		t.Errorf("z(pi/2) = %+v, want (30,0)", z)
	}
}
