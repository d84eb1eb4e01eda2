// Package path provides internal path flattening for the rasterizer.
package path

import "math"

// Point represents a 2D point (internal copy to avoid an import cycle
// with the root package).
type Point struct {
	X, Y float64
}

// Tolerance is the maximum distance from the true curve accepted when
// flattening curves to line segments.
const Tolerance = 0.1

// Element represents an element in a path.
type Element interface {
	isElement()
}

// MoveTo starts a new subpath.
type MoveTo struct{ Point Point }

func (MoveTo) isElement() {}

// LineTo draws a line.
type LineTo struct{ Point Point }

func (LineTo) isElement() {}

// QuadTo draws a quadratic curve.
type QuadTo struct{ Control, Point Point }

func (QuadTo) isElement() {}

// CubicTo draws a cubic curve.
type CubicTo struct{ Control1, Control2, Point Point }

func (CubicTo) isElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isElement() {}

// Flatten converts a path with curves into one polyline per subpath.
// Keeping subpaths separate prevents spurious connecting edges between
// them during rasterization.
func Flatten(elements []Element) [][]Point {
	var subpaths [][]Point
	var current []Point
	var pos Point

	flush := func() {
		if len(current) >= 2 {
			subpaths = append(subpaths, current)
		}
		current = nil
	}

	// A drawing element right after Close starts a new subpath from the
	// current position, so it needs an implicit starting point.
	start := func() {
		if len(current) == 0 {
			current = append(current, pos)
		}
	}

	for _, elem := range elements {
		switch e := elem.(type) {
		case MoveTo:
			flush()
			pos = e.Point
			current = append(current, pos)

		case LineTo:
			start()
			pos = e.Point
			current = append(current, pos)

		case QuadTo:
			start()
			flattenQuadratic(pos, e.Control, e.Point, Tolerance, &current)
			pos = e.Point

		case CubicTo:
			start()
			flattenCubic(pos, e.Control1, e.Control2, e.Point, Tolerance, &current)
			pos = e.Point

		case Close:
			if len(current) > 0 {
				pos = current[0]
				current = append(current, pos)
			}
			flush()
		}
	}
	flush()

	return subpaths
}

// Lerp interpolates between two points.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Mul returns the point scaled by s.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Length returns the vector length.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// flattenQuadratic recursively subdivides a quadratic Bezier curve
// until the control point is within tolerance of the chord.
func flattenQuadratic(p0, p1, p2 Point, tolerance float64, points *[]Point) {
	if distanceToLine(p1, p0, p2) < tolerance {
		*points = append(*points, p2)
		return
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := q0.Lerp(q1, 0.5)

	flattenQuadratic(p0, q0, q2, tolerance, points)
	flattenQuadratic(q2, q1, p2, tolerance, points)
}

// flattenCubic recursively subdivides a cubic Bezier curve using
// de Casteljau's algorithm.
func flattenCubic(p0, p1, p2, p3 Point, tolerance float64, points *[]Point) {
	d1 := distanceToLine(p1, p0, p3)
	d2 := distanceToLine(p2, p0, p3)
	if math.Max(d1, d2) < tolerance {
		*points = append(*points, p3)
		return
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)

	flattenCubic(p0, q0, r0, s, tolerance, points)
	flattenCubic(s, r1, q2, p3, tolerance, points)
}

// distanceToLine returns the perpendicular distance from p to the
// segment (a, b).
func distanceToLine(p, a, b Point) float64 {
	ab := b.Sub(a)
	abLen := ab.Length()

	if abLen < 1e-10 {
		return p.Distance(a)
	}

	ap := p.Sub(a)
	t := ap.Dot(ab) / (abLen * abLen)

	if t < 0 {
		return p.Distance(a)
	}
	if t > 1 {
		return p.Distance(b)
	}

	return p.Distance(a.Add(ab.Mul(t)))
}
