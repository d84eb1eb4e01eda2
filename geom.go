package canvas

import "math"

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Neg returns the point with both components negated.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Lerp performs linear interpolation between two points.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Size represents a 2D extent.
type Size struct {
	Width, Height float64
}

// Sz is a convenience function to create a Size.
func Sz(w, h float64) Size {
	return Size{Width: w, Height: h}
}

// Rectangle is an axis-aligned rectangle described by its top-left
// position and size.
type Rectangle struct {
	Position Point
	Size     Size
}

// Rect is a convenience function to create a Rectangle.
func Rect(x, y, w, h float64) Rectangle {
	return Rectangle{Position: Pt(x, y), Size: Sz(w, h)}
}

// X returns the left edge of the rectangle.
func (r Rectangle) X() float64 { return r.Position.X }

// Y returns the top edge of the rectangle.
func (r Rectangle) Y() float64 { return r.Position.Y }

// Width returns the rectangle width.
func (r Rectangle) Width() float64 { return r.Size.Width }

// Height returns the rectangle height.
func (r Rectangle) Height() float64 { return r.Size.Height }

// Center returns the center point of the rectangle.
func (r Rectangle) Center() Point {
	return Pt(r.Position.X+r.Size.Width/2, r.Position.Y+r.Size.Height/2)
}

// Contains reports whether the point lies inside the rectangle.
func (r Rectangle) Contains(p Point) bool {
	return p.X >= r.Position.X && p.X <= r.Position.X+r.Size.Width &&
		p.Y >= r.Position.Y && p.Y <= r.Position.Y+r.Size.Height
}

// Union returns the smallest rectangle containing both r and s.
func (r Rectangle) Union(s Rectangle) Rectangle {
	x0 := math.Min(r.Position.X, s.Position.X)
	y0 := math.Min(r.Position.Y, s.Position.Y)
	x1 := math.Max(r.Position.X+r.Size.Width, s.Position.X+s.Size.Width)
	y1 := math.Max(r.Position.Y+r.Size.Height, s.Position.Y+s.Size.Height)
	return Rect(x0, y0, x1-x0, y1-y0)
}
