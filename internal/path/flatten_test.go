package path

import (
	"math"
	"testing"
)

func TestFlattenLines(t *testing.T) {
	elements := []Element{
		MoveTo{Point: Point{X: 0, Y: 0}},
		LineTo{Point: Point{X: 10, Y: 0}},
		LineTo{Point: Point{X: 10, Y: 10}},
		Close{},
	}
	subpaths := Flatten(elements)
	if len(subpaths) != 1 {
		t.Fatalf("subpath count = %d, want 1", len(subpaths))
	}
	points := subpaths[0]
	if points[0] != (Point{X: 0, Y: 0}) {
		t.Errorf("first point = %+v", points[0])
	}
	// Close appends the subpath start.
	if points[len(points)-1] != (Point{X: 0, Y: 0}) {
		t.Errorf("last point = %+v, want subpath start", points[len(points)-1])
	}
}

// Each MoveTo starts an independent polyline; subpaths must never be
// connected by phantom segments.
func TestFlattenSeparatesSubpaths(t *testing.T) {
	elements := []Element{
		MoveTo{Point: Point{X: 0, Y: 0}},
		LineTo{Point: Point{X: 10, Y: 0}},
		MoveTo{Point: Point{X: 50, Y: 50}},
		LineTo{Point: Point{X: 60, Y: 50}},
	}
	subpaths := Flatten(elements)
	if len(subpaths) != 2 {
		t.Fatalf("subpath count = %d, want 2", len(subpaths))
	}
	if len(subpaths[0]) != 2 || len(subpaths[1]) != 2 {
		t.Errorf("subpath lengths = %d, %d, want 2, 2", len(subpaths[0]), len(subpaths[1]))
	}
}

// A segment drawn right after Close starts a fresh subpath from the
// closed subpath's start point instead of being dropped.
func TestFlattenSegmentAfterClose(t *testing.T) {
	elements := []Element{
		MoveTo{Point: Point{X: 0, Y: 0}},
		LineTo{Point: Point{X: 10, Y: 0}},
		LineTo{Point: Point{X: 10, Y: 10}},
		Close{},
		LineTo{Point: Point{X: 20, Y: 20}},
	}
	subpaths := Flatten(elements)
	if len(subpaths) != 2 {
		t.Fatalf("subpath count = %d, want 2", len(subpaths))
	}
	tail := subpaths[1]
	if len(tail) != 2 {
		t.Fatalf("trailing subpath length = %d, want 2", len(tail))
	}
	if tail[0] != (Point{X: 0, Y: 0}) || tail[1] != (Point{X: 20, Y: 20}) {
		t.Errorf("trailing subpath = %+v, want (0,0) -> (20,20)", tail)
	}
}

func TestFlattenQuadratic(t *testing.T) {
	elements := []Element{
		MoveTo{Point: Point{X: 0, Y: 0}},
		QuadTo{Control: Point{X: 50, Y: 100}, Point: Point{X: 100, Y: 0}},
	}
	points := Flatten(elements)[0]
	if len(points) < 4 {
		t.Fatalf("curve flattened to %d points, want several", len(points))
	}
	last := points[len(points)-1]
	if last != (Point{X: 100, Y: 0}) {
		t.Errorf("curve end = %+v, want (100,0)", last)
	}
	// The flattened polyline must stay near the curve; for this
	// symmetric quadratic the apex is at y = 50.
	maxY := 0.0
	for _, p := range points {
		maxY = math.Max(maxY, p.Y)
	}
	if math.Abs(maxY-50) > 1 {
		t.Errorf("apex = %v, want ~50", maxY)
	}
}

func TestFlattenCubic(t *testing.T) {
	elements := []Element{
		MoveTo{Point: Point{X: 0, Y: 0}},
		CubicTo{
			Control1: Point{X: 0, Y: 100},
			Control2: Point{X: 100, Y: 100},
			Point:    Point{X: 100, Y: 0},
		},
	}
	points := Flatten(elements)[0]
	last := points[len(points)-1]
	if last != (Point{X: 100, Y: 0}) {
		t.Errorf("curve end = %+v, want (100,0)", last)
	}
	// Adjacent points stay within a tolerance-bounded deviation: the
	// midpoint of this symmetric cubic is at y = 75.
	midY := 0.0
	for _, p := range points {
		midY = math.Max(midY, p.Y)
	}
	if math.Abs(midY-75) > 1 {
		t.Errorf("apex = %v, want ~75", midY)
	}
}

func TestFlattenEmpty(t *testing.T) {
	if got := Flatten(nil); len(got) != 0 {
		t.Errorf("Flatten(nil) = %v, want empty", got)
	}
	// A bare MoveTo has no drawable geometry and is dropped.
	got := Flatten([]Element{MoveTo{Point: Point{X: 1, Y: 2}}})
	if len(got) != 0 {
		t.Errorf("Flatten(MoveTo) = %v, want empty", got)
	}
}
