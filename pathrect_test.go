package canvas

import (
	"math"
	"testing"
)

func TestPathRectEmpty(t *testing.T) {
	var pr PathRect
	if _, ok := pr.Rect(); ok {
		t.Error("fresh tracker reports a bound")
	}
	pr.RecordClose()
	pr.RecordClip()
	if _, ok := pr.Rect(); ok {
		t.Error("Close/Clip markers must not create a bound")
	}
}

func TestPathRectUnion(t *testing.T) {
	var pr PathRect
	pr.RecordMoveTo(10, 10)
	pr.RecordLineTo(30, 50)
	pr.RecordLineTo(-5, 20)

	r, ok := pr.Rect()
	if !ok {
		t.Fatal("no bound after recording")
	}
	if r.X() != -5 || r.Y() != 10 || r.Width() != 35 || r.Height() != 40 {
		t.Errorf("bound = %+v, want (-5,10,35,40)", r)
	}
}

func TestPathRectRect(t *testing.T) {
	var pr PathRect
	pr.RecordRect(5, 5, 10, 20)
	r, _ := pr.Rect()
	if r.X() != 5 || r.Y() != 5 || r.Width() != 10 || r.Height() != 20 {
		t.Errorf("bound = %+v, want (5,5,10,20)", r)
	}
}

func TestPathRectCurveIncludesControls(t *testing.T) {
	var pr PathRect
	pr.RecordMoveTo(0, 0)
	pr.RecordCubicTo(50, -10, 60, 110, 100, 100)
	r, _ := pr.Rect()
	// Control points are unioned directly; the bound is conservative.
	if r.Y() != -10 || r.Height() != 120 {
		t.Errorf("bound = %+v, want y=-10 height=120", r)
	}
}

// An arc always contributes the full circumscribing square of its
// circle, regardless of sweep.
func TestPathRectArcFullSquare(t *testing.T) {
	var pr PathRect
	// A quarter sweep still records the whole circle's square.
	pr.RecordArc(50, 50, 10, 0, math.Pi/2)
	r, _ := pr.Rect()
	if r.X() != 40 || r.Y() != 40 || r.Width() != 20 || r.Height() != 20 {
		t.Errorf("arc bound = %+v, want (40,40,20,20)", r)
	}

	var full PathRect
	full.RecordArc(50, 50, 10, 0, 2*math.Pi)
	if fr, _ := full.Rect(); fr != r {
		t.Errorf("full-circle bound = %+v, want %+v (sweep must not matter)", fr, r)
	}
}

func TestPathRectReset(t *testing.T) {
	var pr PathRect
	pr.RecordMoveTo(1, 2)
	pr.Reset()
	if _, ok := pr.Rect(); ok {
		t.Error("bound survives Reset")
	}
	pr.RecordMoveTo(7, 8)
	r, ok := pr.Rect()
	if !ok || r.X() != 7 || r.Y() != 8 {
		t.Errorf("bound after reuse = %+v, ok=%v", r, ok)
	}
}
