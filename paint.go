package canvas

import (
	"image"
	"image/color"
	"math"

	"github.com/gocanvas/canvas/internal/raster"
)

// Paint is a rasterizer-native paint: a resolved shader plus rendering
// flags. Paints are produced from abstract brushes by resolvePaint and
// consumed directly by the renderer.
type Paint struct {
	Shader    raster.Shader
	AntiAlias bool
}

// resolvePaint converts a brush into a rasterizer-native paint.
//
// frame is the geometric frame the brush applies to, normally the
// current path's bounding rectangle, so gradient coordinates are
// frame-relative. alpha is the context's global alpha multiplier.
//
// Resolution never fails: a degenerate gradient definition (for
// example a zero-length axis) falls back to an opaque white solid so
// the draw call still renders.
func resolvePaint(brush Brush, frame Rectangle, alpha float64) Paint {
	switch b := brush.(type) {
	case SolidColor:
		return Paint{Shader: raster.NewSolid(colorToRaster(b.Color, alpha)), AntiAlias: true}

	case LinearGradient:
		spread := raster.SpreadPad
		if b.Repeat {
			spread = raster.SpreadRepeat
		}
		start, end := resolveGradientAxis(b.Coords, frame)
		stops := remapStops(b.Stops, end.Distance(start), alpha)
		shader, err := raster.NewLinearGradient(
			raster.Point{X: start.X, Y: start.Y},
			raster.Point{X: end.X, Y: end.Y},
			stops,
			spread,
		)
		if err != nil {
			Logger().Warn("canvas: degenerate gradient, using white",
				"start", start, "end", end, "stops", len(b.Stops))
			return Paint{Shader: raster.NewSolid(raster.RGBA{R: 1, G: 1, B: 1, A: 1}), AntiAlias: true}
		}
		return Paint{Shader: shader, AntiAlias: true}
	}

	// Brush is sealed; a nil brush still must not fail a draw call.
	return Paint{Shader: raster.NewSolid(raster.RGBA{R: 1, G: 1, B: 1, A: 1}), AntiAlias: true}
}

// resolveGradientAxis converts abstract gradient coordinates into
// concrete start/end points for the given frame.
func resolveGradientAxis(coords GradientCoords, frame Rectangle) (start, end Point) {
	switch c := coords.(type) {
	case GradientEnds:
		return c.Start.Add(frame.Position), c.End.Add(frame.Position)

	case GradientAngle:
		z := gradientEndsFromAngle(c.Angle, frame.Size)
		disp := c.Displacement.Pixels(frame.Size)
		center := frame.Center()
		return center.Add(z.Neg()).Add(disp), center.Add(z).Add(disp)

	case GradientDirection:
		s, e := c.Direction.span(frame.Size.Width, frame.Size.Height)
		disp := c.Displacement.Pixels(frame.Size)
		return s.Add(frame.Position).Add(disp), e.Add(frame.Position).Add(disp)
	}
	return Point{}, Point{}
}

// gradientEndsFromAngle returns the half-axis vector of an angle-based
// gradient: a unit vector for the angle scaled by the radius of the
// circle inscribed in the frame. An angle of zero points toward the
// frame's top; positive angles rotate clockwise.
func gradientEndsFromAngle(angle float64, size Size) Point {
	r := math.Min(size.Width, size.Height) / 2
	return Pt(math.Sin(angle)*r, -math.Cos(angle)*r)
}

// remapStops converts gradient stops to rasterizer stops along the
// concrete axis span. Fractional positions in [0, 1] pass through
// unchanged; positions greater than 1 are pixel offsets along the axis
// and are remapped onto the span so stop spacing stays visually
// uniform regardless of endpoint distance. Stop order is preserved as
// supplied; the resolver never sorts.
func remapStops(stops []GradientStop, distance, alpha float64) []raster.Stop {
	out := make([]raster.Stop, 0, len(stops))
	for _, s := range stops {
		pos := s.Position
		if pos > 1 && distance > 0 {
			pos /= distance
		}
		out = append(out, raster.Stop{Offset: pos, Color: colorToRaster(s.Color, alpha)})
	}
	return out
}

// colorToRaster translates a Color to the rasterizer's native color,
// scaling the alpha channel by the global alpha.
//
// This is the channel-order boundary: Color stores BGRA, the
// rasterizer consumes RGBA. Translation goes by channel name, never by
// byte position.
func colorToRaster(c Color, alpha float64) raster.RGBA {
	return raster.RGBA{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255 * alpha,
	}
}

// shaderImage adapts a resolved paint to image.Image so glyph
// rasterization can composite text through arbitrary paints, gradients
// included.
type shaderImage struct {
	shader raster.Shader
}

func (s shaderImage) ColorModel() color.Model {
	return color.NRGBAModel
}

func (s shaderImage) Bounds() image.Rectangle {
	return image.Rect(math.MinInt32/2, math.MinInt32/2, math.MaxInt32/2, math.MaxInt32/2)
}

func (s shaderImage) At(x, y int) color.Color {
	c := s.shader.ColorAt(float64(x)+0.5, float64(y)+0.5)
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}
