package canvas

// Brush describes what to paint with.
// This is a sealed interface - only types in this package implement it.
//
// Supported brush types:
//   - SolidColor: a single solid color
//   - LinearGradient: a linear color transition along an axis
//
// Example usage:
//
//	ctx.SetFillStyle(canvas.SolidColor{Color: canvas.Red})
//	ctx.SetFillStyle(canvas.LinearGradient{
//		Coords: canvas.GradientEnds{Start: canvas.Pt(0, 0), End: canvas.Pt(100, 0)},
//		Stops: []canvas.GradientStop{
//			{Position: 0, Color: canvas.Red},
//			{Position: 1, Color: canvas.Blue},
//		},
//	})
type Brush interface {
	// brushMarker is an unexported method that seals this interface.
	brushMarker()
}

// SolidColor is a single-color brush.
type SolidColor struct {
	Color Color
}

func (SolidColor) brushMarker() {}

// GradientStop is a color at a position along the gradient axis.
// Position is a fraction in [0, 1]; insertion order defines
// interpolation order, the paint resolver never sorts stops.
type GradientStop struct {
	Position float64
	Color    Color
}

// LinearGradient is a brush painting a linear color transition.
//
// Coords selects how the gradient axis is specified; see GradientEnds,
// GradientAngle, and GradientDirection. Repeat selects the tiling
// behavior beyond the stop range: false pads (clamps to the nearest
// stop), true repeats the pattern.
type LinearGradient struct {
	Coords GradientCoords
	Stops  []GradientStop
	Repeat bool
}

func (LinearGradient) brushMarker() {}

// GradientCoords describes the gradient axis in abstract coordinates.
// This is a sealed interface - only types in this package implement it.
type GradientCoords interface {
	coordsMarker()
}

// GradientEnds specifies the axis by explicit endpoints, relative to
// the frame the brush is resolved against.
type GradientEnds struct {
	Start, End Point
}

func (GradientEnds) coordsMarker() {}

// GradientAngle specifies the axis by an angle in radians plus a
// displacement. An angle of zero points toward the top of the frame;
// positive angles rotate clockwise.
type GradientAngle struct {
	Angle        float64
	Displacement Displacement
}

func (GradientAngle) coordsMarker() {}

// GradientDirection specifies the axis by a named direction plus a
// displacement.
type GradientDirection struct {
	Direction    Direction
	Displacement Displacement
}

func (GradientDirection) coordsMarker() {}

// Direction is a named gradient direction.
type Direction int

const (
	ToTop Direction = iota
	ToTopRight
	ToRight
	ToBottomRight
	ToBottom
	ToBottomLeft
	ToLeft
	ToTopLeft
)

// span resolves the direction to a canonical start/end pair spanning a
// frame of the given width and height, origin at the frame's top-left.
func (d Direction) span(width, height float64) (start, end Point) {
	switch d {
	case ToTop:
		return Pt(width/2, height), Pt(width/2, 0)
	case ToTopRight:
		return Pt(0, height), Pt(width, 0)
	case ToRight:
		return Pt(0, height/2), Pt(width, height/2)
	case ToBottomRight:
		return Pt(0, 0), Pt(width, height)
	case ToBottom:
		return Pt(width/2, 0), Pt(width/2, height)
	case ToBottomLeft:
		return Pt(width, 0), Pt(0, height)
	case ToLeft:
		return Pt(width, height/2), Pt(0, height/2)
	case ToTopLeft:
		return Pt(width, height), Pt(0, 0)
	}
	return Point{}, Point{}
}

// Displacement shifts a gradient axis, expressed as a fraction of the
// frame size on each axis.
type Displacement struct {
	X, Y float64
}

// Pixels converts the displacement to pixels for a concrete frame size.
func (d Displacement) Pixels(size Size) Point {
	return Pt(d.X*size.Width, d.Y*size.Height)
}
