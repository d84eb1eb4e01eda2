package canvas

import "math"

const (
	tau    = 2 * math.Pi
	halfPi = math.Pi / 2

	// circleK is the control-point offset of the standard cubic Bezier
	// approximation of a quarter circle, 4/3*(sqrt(2)-1).
	circleK = 0.552284749831
)

// appendArc appends a circular arc centered at (x, y) to the path,
// traversed from startAngle to endAngle in increasing-angle direction
// (radians; negative angles wrap by a full turn).
//
// Arcs are built quadrant-aligned: partial quadrants use arcFragment,
// while each quadrant boundary fully contained in the sweep emits a
// fixed cubic with offset circleK*radius. The fixed cubics keep the
// approximation numerically stable at exact quadrant boundaries.
//
// When the total sweep is less than a full turn, the path starts and
// ends with a straight line through the center, forming a pie slice.
func appendArc(p *Path, x, y, radius, startAngle, endAngle float64) {
	if math.Signbit(startAngle) {
		startAngle = tau - -startAngle
	}
	if math.Signbit(endAngle) {
		endAngle = tau - -endAngle
	}
	premultK := circleK * radius
	startSin, startCos := math.Sincos(startAngle)
	if endAngle-startAngle < tau {
		p.MoveTo(x, y)
		p.LineTo(x+startCos*radius, y+startSin*radius)
	} else {
		p.MoveTo(x+startCos*radius, y+startSin*radius)
	}
	if endAngle-startAngle < halfPi {
		arcFragment(p, x, y, radius, startAngle, endAngle)
		p.LineTo(x, y)
		return
	} else if math.Mod(startAngle, halfPi) > epsilon {
		// Close the partial quadrant up to the next multiple of 90°.
		arcFragment(p, x, y, radius, startAngle, startAngle+halfPi-math.Mod(startAngle, halfPi))
	}
	// Emit the four quadrant cubics contained in [startAngle, endAngle].
	if startAngle <= 0 && endAngle >= halfPi {
		p.CubicTo(x+radius, y+premultK, x+premultK, y+radius, x, y+radius)
	}
	if startAngle <= halfPi && endAngle >= math.Pi {
		p.CubicTo(x-premultK, y+radius, x-radius, y+premultK, x-radius, y)
	}
	if startAngle <= math.Pi && endAngle >= math.Pi+halfPi {
		p.CubicTo(x-radius, y-premultK, x-premultK, y-radius, x, y-radius)
	}
	if startAngle <= math.Pi+halfPi && endAngle >= tau {
		p.CubicTo(x+premultK, y-radius, x+radius, y-premultK, x+radius, y)
	}
	arcFragment(p, x, y, radius, endAngle-math.Mod(endAngle, halfPi), endAngle)
	if endAngle-startAngle < tau {
		p.LineTo(x, y)
	}
}

const epsilon = 2.220446049250313e-16

// arcFragment appends a single cubic approximating an arc segment of at
// most 90°. It derives unit tangent directions at both fragment ends
// and solves a quadratic for the control-point scale k so the cubic
// reproduces the arc's tangents at both endpoints. A non-positive
// discriminant means a degenerate or zero-sweep fragment; nothing is
// emitted in that case.
func arcFragment(p *Path, x, y, radius, startAngle, endAngle float64) {
	endSin, endCos := math.Sincos(endAngle)
	endX := x + endCos*radius
	endY := y + endSin*radius
	startSin, startCos := math.Sincos(startAngle)
	startX := x + startCos*radius
	startY := y + startSin*radius

	t1x := y - startY
	t1y := startX - x
	t2x := endY - y
	t2y := x - endX
	dx := (startX+endX)/2 - x
	dy := (startY+endY)/2 - y
	tx := 3.0 / 8.0 * (t1x + t2x)
	ty := 3.0 / 8.0 * (t1y + t2y)
	a := tx*tx + ty*ty
	b := dx*tx + dy*ty
	c := dx*dx + dy*dy - radius*radius

	d := b*b - a*c
	if d > 0 {
		k := (math.Sqrt(d) - b) / a
		p.CubicTo(
			startX+k*t1x,
			startY+k*t1y,
			endX+k*t2x,
			endY+k*t2y,
			x+endCos*radius,
			y+endSin*radius,
		)
	}
}
