package canvas

// PathRect accumulates a lazily-evaluated bounding rectangle over a
// sequence of path-construction operations, without rasterizing.
//
// The bound always equals the exact axis-aligned bounding box of every
// point passed to a record call since the last Reset. Curve control
// points count toward the bound even though the rendered curve stays
// within their convex hull; frame-relative gradient resolution depends
// on this over-approximation.
type PathRect struct {
	minX, minY float64
	maxX, maxY float64
	some       bool
}

// Rect returns the accumulated bounding rectangle by value, and whether
// any path operation has been recorded since the last Reset.
func (pr *PathRect) Rect() (Rectangle, bool) {
	if !pr.some {
		return Rectangle{}, false
	}
	return Rect(pr.minX, pr.minY, pr.maxX-pr.minX, pr.maxY-pr.minY), true
}

// Reset empties the tracker in O(1).
func (pr *PathRect) Reset() {
	*pr = PathRect{}
}

// include widens the bound to contain the point.
func (pr *PathRect) include(x, y float64) {
	if !pr.some {
		pr.minX, pr.maxX = x, x
		pr.minY, pr.maxY = y, y
		pr.some = true
		return
	}
	if x < pr.minX {
		pr.minX = x
	}
	if x > pr.maxX {
		pr.maxX = x
	}
	if y < pr.minY {
		pr.minY = y
	}
	if y > pr.maxY {
		pr.maxY = y
	}
}

// RecordMoveTo records the start of a new subpath.
func (pr *PathRect) RecordMoveTo(x, y float64) {
	pr.include(x, y)
}

// RecordLineTo records a straight segment endpoint.
func (pr *PathRect) RecordLineTo(x, y float64) {
	pr.include(x, y)
}

// RecordRect records a full rectangle.
func (pr *PathRect) RecordRect(x, y, width, height float64) {
	pr.include(x, y)
	pr.include(x+width, y+height)
}

// RecordCubicTo records a cubic curve by its control points and endpoint.
func (pr *PathRect) RecordCubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	pr.include(c1x, c1y)
	pr.include(c2x, c2y)
	pr.include(x, y)
}

// RecordQuadraticTo records a quadratic curve by its control point and
// endpoint.
func (pr *PathRect) RecordQuadraticTo(cx, cy, x, y float64) {
	pr.include(cx, cy)
	pr.include(x, y)
}

// RecordArc records a circular arc. The full circumscribing square
// (center ± radius on both axes) is unioned regardless of the angular
// sweep; frame-relative gradients rely on this simplification.
func (pr *PathRect) RecordArc(x, y, radius, startAngle, endAngle float64) {
	pr.include(x-radius, y-radius)
	pr.include(x+radius, y+radius)
}

// RecordClose records a subpath close. Closing adds no geometry.
func (pr *PathRect) RecordClose() {}

// RecordClip records a clip marker. Clipping adds no geometry.
func (pr *PathRect) RecordClip() {}
