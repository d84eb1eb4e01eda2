package raster

import (
	"math"
	"testing"
)

// testSurface accumulates blended coverage per pixel.
type testSurface struct {
	width, height int
	cov           []float64
	colors        []RGBA
}

func newTestSurface(w, h int) *testSurface {
	return &testSurface{
		width:  w,
		height: h,
		cov:    make([]float64, w*h),
		colors: make([]RGBA, w*h),
	}
}

func (s *testSurface) Width() int  { return s.width }
func (s *testSurface) Height() int { return s.height }

func (s *testSurface) BlendPixel(x, y int, c RGBA, coverage float64) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		panic("blend out of bounds")
	}
	i := y*s.width + x
	s.cov[i] += coverage
	s.colors[i] = c
}

func (s *testSurface) coverageAt(x, y int) float64 {
	return s.cov[y*s.width+x]
}

// testAlpha is a minimal AlphaSurface.
type testAlpha struct {
	width, height int
	cov           []float64
}

func newTestAlpha(w, h int) *testAlpha {
	return &testAlpha{width: w, height: h, cov: make([]float64, w*h)}
}

func (a *testAlpha) Width() int  { return a.width }
func (a *testAlpha) Height() int { return a.height }

func (a *testAlpha) AddCoverage(x, y int, coverage float64) {
	a.cov[y*a.width+x] += coverage
}

func square(x, y, w, h float64) []Point {
	return []Point{
		{X: x, Y: y},
		{X: x + w, Y: y},
		{X: x + w, Y: y + h},
		{X: x, Y: y + h},
	}
}

func TestFillSquare(t *testing.T) {
	r := New(20, 20)
	dst := newTestSurface(20, 20)
	shader := NewSolid(RGBA{R: 1, A: 1})

	r.Fill(dst, [][]Point{square(5, 5, 10, 10)}, FillRuleNonZero, shader, nil)

	if got := dst.coverageAt(10, 10); math.Abs(got-1) > 1e-9 {
		t.Errorf("interior coverage = %v, want 1", got)
	}
	if got := dst.coverageAt(2, 2); got != 0 {
		t.Errorf("exterior coverage = %v, want 0", got)
	}
	// Pixel-aligned edges are fully covered up to the boundary.
	if got := dst.coverageAt(5, 10); math.Abs(got-1) > 1e-9 {
		t.Errorf("edge coverage = %v, want 1", got)
	}
	if got := dst.coverageAt(4, 10); got != 0 {
		t.Errorf("just outside coverage = %v, want 0", got)
	}
}

func TestFillAntiAliasedEdge(t *testing.T) {
	r := New(20, 20)
	dst := newTestSurface(20, 20)
	shader := NewSolid(RGBA{A: 1})

	// A half-pixel offset square leaves fractional coverage at both
	// vertical edges.
	r.Fill(dst, [][]Point{square(5.5, 5, 10, 10)}, FillRuleNonZero, shader, nil)

	if got := dst.coverageAt(5, 10); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("left fringe = %v, want 0.5", got)
	}
	if got := dst.coverageAt(15, 10); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("right fringe = %v, want 0.5", got)
	}
	if got := dst.coverageAt(10, 10); math.Abs(got-1) > 1e-9 {
		t.Errorf("interior = %v, want 1", got)
	}
}

// A square with a same-direction inner square stays filled under
// non-zero but the hole opens under even-odd.
func TestFillRules(t *testing.T) {
	outer := square(0, 0, 20, 20)
	inner := square(5, 5, 10, 10)
	subpaths := [][]Point{outer, inner}

	t.Run("non-zero keeps overlap", func(t *testing.T) {
		r := New(20, 20)
		dst := newTestSurface(20, 20)
		r.Fill(dst, subpaths, FillRuleNonZero, NewSolid(RGBA{A: 1}), nil)
		if got := dst.coverageAt(10, 10); math.Abs(got-1) > 1e-9 {
			t.Errorf("overlap coverage = %v, want 1", got)
		}
	})

	t.Run("even-odd opens hole", func(t *testing.T) {
		r := New(20, 20)
		dst := newTestSurface(20, 20)
		r.Fill(dst, subpaths, FillRuleEvenOdd, NewSolid(RGBA{A: 1}), nil)
		if got := dst.coverageAt(10, 10); got != 0 {
			t.Errorf("hole coverage = %v, want 0", got)
		}
		if got := dst.coverageAt(2, 10); math.Abs(got-1) > 1e-9 {
			t.Errorf("ring coverage = %v, want 1", got)
		}
	})
}

func TestFillOpenSubpathImplicitlyClosed(t *testing.T) {
	r := New(20, 20)
	dst := newTestSurface(20, 20)
	// Triangle without an explicit closing point.
	tri := []Point{{X: 0, Y: 0}, {X: 16, Y: 0}, {X: 16, Y: 16}}
	r.Fill(dst, [][]Point{tri}, FillRuleEvenOdd, NewSolid(RGBA{A: 1}), nil)

	if got := dst.coverageAt(14, 2); math.Abs(got-1) > 1e-9 {
		t.Errorf("interior coverage = %v, want 1", got)
	}
	if got := dst.coverageAt(2, 14); got != 0 {
		t.Errorf("exterior coverage = %v, want 0", got)
	}
}

func TestFillWithClip(t *testing.T) {
	r := New(20, 20)
	dst := newTestSurface(20, 20)

	clip := newTestAlpha(20, 20)
	r.FillAlpha(clip, [][]Point{square(0, 0, 10, 20)}, FillRuleEvenOdd)

	r.Fill(dst, [][]Point{square(0, 0, 20, 20)}, FillRuleNonZero, NewSolid(RGBA{A: 1}), alphaClip{clip})

	if got := dst.coverageAt(5, 10); math.Abs(got-1) > 1e-9 {
		t.Errorf("inside clip = %v, want 1", got)
	}
	if got := dst.coverageAt(15, 10); got != 0 {
		t.Errorf("outside clip = %v, want 0", got)
	}
}

// alphaClip adapts testAlpha to the Clip interface.
type alphaClip struct {
	a *testAlpha
}

func (c alphaClip) At(x, y int) uint8 {
	v := c.a.cov[y*c.a.width+x] * 255
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

func TestStrokeLine(t *testing.T) {
	r := New(20, 20)
	dst := newTestSurface(20, 20)
	line := []Point{{X: 2, Y: 10}, {X: 18, Y: 10}}

	r.Stroke(dst, [][]Point{line}, 4, NewSolid(RGBA{A: 1}), nil)

	// The stroke spans y in [8, 12).
	if got := dst.coverageAt(10, 10); math.Abs(got-1) > 1e-9 {
		t.Errorf("stroke center = %v, want 1", got)
	}
	if got := dst.coverageAt(10, 9); math.Abs(got-1) > 1e-9 {
		t.Errorf("stroke body = %v, want 1", got)
	}
	if got := dst.coverageAt(10, 5); got != 0 {
		t.Errorf("above stroke = %v, want 0", got)
	}
}

func TestStrokeMinimumWidth(t *testing.T) {
	r := New(20, 20)
	dst := newTestSurface(20, 20)
	line := []Point{{X: 2, Y: 10}, {X: 18, Y: 10}}

	// Sub-pixel widths are clamped to one pixel.
	r.Stroke(dst, [][]Point{line}, 0.1, NewSolid(RGBA{A: 1}), nil)
	if got := dst.coverageAt(10, 9); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("hairline top half = %v, want 0.5", got)
	}
	if got := dst.coverageAt(10, 10); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("hairline bottom half = %v, want 0.5", got)
	}
}

func TestFillEmpty(t *testing.T) {
	r := New(20, 20)
	dst := newTestSurface(20, 20)
	r.Fill(dst, nil, FillRuleNonZero, NewSolid(RGBA{A: 1}), nil)
	r.Fill(dst, [][]Point{{{X: 1, Y: 1}}}, FillRuleNonZero, NewSolid(RGBA{A: 1}), nil)
	for _, c := range dst.cov {
		if c != 0 {
			t.Fatal("empty fill produced coverage")
		}
	}
}

func TestRasterizerResize(t *testing.T) {
	r := New(10, 10)
	r.Resize(40, 40)
	dst := newTestSurface(40, 40)
	r.Fill(dst, [][]Point{square(30, 30, 5, 5)}, FillRuleNonZero, NewSolid(RGBA{A: 1}), nil)
	if got := dst.coverageAt(32, 32); math.Abs(got-1) > 1e-9 {
		t.Errorf("coverage after resize = %v, want 1", got)
	}
}
