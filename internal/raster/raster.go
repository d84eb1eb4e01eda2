// Package raster provides anti-aliased scanline rasterization of
// flattened 2D paths with shader-driven coloring.
package raster

import "math"

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// Surface is a color render target addressed by pixel.
type Surface interface {
	Width() int
	Height() int
	// BlendPixel source-over blends c into the pixel with the given
	// coverage in [0, 1].
	BlendPixel(x, y int, c RGBA, coverage float64)
}

// AlphaSurface is a coverage render target, used to build clip masks.
type AlphaSurface interface {
	Width() int
	Height() int
	AddCoverage(x, y int, coverage float64)
}

// Clip limits rendering by a per-pixel alpha mask. A nil Clip means
// no clipping.
type Clip interface {
	At(x, y int) uint8
}

// supersamples is the number of vertical subsamples per pixel row.
// Horizontal coverage is computed analytically per span, so total
// coverage resolution is supersamples vertically and continuous
// horizontally.
const supersamples = 4

// Rasterizer performs anti-aliased scanline rasterization.
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	width  int
	height int
	aet    *activeEdgeTable
	cov    []float64 // per-row coverage accumulator
}

// New creates a rasterizer for targets of the given dimensions.
func New(width, height int) *Rasterizer {
	return &Rasterizer{
		width:  width,
		height: height,
		aet:    newActiveEdgeTable(),
		cov:    make([]float64, width),
	}
}

// Resize adjusts the rasterizer to a new target size.
func (r *Rasterizer) Resize(width, height int) {
	r.width = width
	r.height = height
	r.cov = make([]float64, width)
}

// Fill rasterizes the subpath polylines as a filled shape.
func (r *Rasterizer) Fill(dst Surface, subpaths [][]Point, rule FillRule, shader Shader, clip Clip) {
	edges := buildEdges(subpaths, true)
	r.fillEdges(edges, rule, dst.Width(), dst.Height(), func(x, y int, cov float64) {
		if clip != nil {
			cov *= float64(clip.At(x, y)) / 255
			if cov <= 0 {
				return
			}
		}
		dst.BlendPixel(x, y, shader.ColorAt(float64(x)+0.5, float64(y)+0.5), cov)
	})
}

// FillAlpha rasterizes the subpath polylines as coverage into an alpha
// surface. Used to build clip masks.
func (r *Rasterizer) FillAlpha(dst AlphaSurface, subpaths [][]Point, rule FillRule) {
	edges := buildEdges(subpaths, true)
	r.fillEdges(edges, rule, dst.Width(), dst.Height(), dst.AddCoverage)
}

// Stroke rasterizes the subpath polylines as stroked lines of the given
// width. Widths below one pixel are clamped to a one-pixel hairline.
// Each segment expands to a quad; the quads are filled in one pass
// with the non-zero rule so overlapping joints do not double-blend.
func (r *Rasterizer) Stroke(dst Surface, subpaths [][]Point, lineWidth float64, shader Shader, clip Clip) {
	if lineWidth < 1 {
		lineWidth = 1
	}
	half := lineWidth / 2

	var quads [][]Point
	for _, points := range subpaths {
		for i := 0; i+1 < len(points); i++ {
			p0, p1 := points[i], points[i+1]
			dx := p1.X - p0.X
			dy := p1.Y - p0.Y
			length := math.Sqrt(dx*dx + dy*dy)
			if length < 1e-3 {
				continue
			}
			nx := -dy / length * half
			ny := dx / length * half
			quads = append(quads, []Point{
				{X: p0.X + nx, Y: p0.Y + ny},
				{X: p0.X - nx, Y: p0.Y - ny},
				{X: p1.X - nx, Y: p1.Y - ny},
				{X: p1.X + nx, Y: p1.Y + ny},
				{X: p0.X + nx, Y: p0.Y + ny},
			})
		}
	}

	r.Fill(dst, quads, FillRuleNonZero, shader, clip)
}

// buildEdges converts subpath polylines into non-horizontal edges.
// When close is true, open subpaths get an implicit closing edge so
// fills behave as if every subpath were closed.
func buildEdges(subpaths [][]Point, close bool) []Edge {
	var edges []Edge
	for _, points := range subpaths {
		if len(points) < 2 {
			continue
		}
		for i := 0; i+1 < len(points); i++ {
			appendEdge(&edges, points[i], points[i+1])
		}
		if close {
			first, last := points[0], points[len(points)-1]
			if first != last {
				appendEdge(&edges, last, first)
			}
		}
	}
	return edges
}

func appendEdge(edges *[]Edge, p0, p1 Point) {
	// Horizontal edges never cross a scanline.
	if math.Abs(p1.Y-p0.Y) < 1e-9 {
		return
	}
	*edges = append(*edges, NewEdge(p0, p1))
}

// fillEdges runs the supersampled scanline loop and calls blit for each
// covered pixel with its accumulated coverage in [0, 1].
func (r *Rasterizer) fillEdges(edges []Edge, rule FillRule, width, height int, blit func(x, y int, cov float64)) {
	if len(edges) == 0 {
		return
	}
	if width > r.width || len(r.cov) < width {
		r.cov = make([]float64, width)
	}

	yMin := math.MaxFloat64
	yMax := -math.MaxFloat64
	xMin := math.MaxFloat64
	xMax := -math.MaxFloat64
	for _, e := range edges {
		yMin = math.Min(yMin, e.y0)
		yMax = math.Max(yMax, e.y1)
		xMin = math.Min(xMin, math.Min(e.x0, e.x1))
		xMax = math.Max(xMax, math.Max(e.x0, e.x1))
	}

	yMinInt := clampInt(int(math.Floor(yMin)), 0, height)
	yMaxInt := clampInt(int(math.Ceil(yMax)), 0, height)
	xMinInt := clampInt(int(math.Floor(xMin)), 0, width)
	xMaxInt := clampInt(int(math.Ceil(xMax)), 0, width)
	if yMinInt >= yMaxInt || xMinInt >= xMaxInt {
		return
	}

	cov := r.cov
	for y := yMinInt; y < yMaxInt; y++ {
		for x := xMinInt; x < xMaxInt; x++ {
			cov[x] = 0
		}

		covered := false
		for s := 0; s < supersamples; s++ {
			scanY := float64(y) + (float64(s)+0.5)/supersamples
			r.aet.Clear()
			for _, e := range edges {
				if e.y0 <= scanY && scanY < e.y1 {
					r.aet.AddAtY(e, scanY)
				}
			}
			if len(r.aet.crossings) == 0 {
				continue
			}
			r.aet.Sort()

			if rule == FillRuleNonZero {
				covered = r.spansNonZero(cov, xMinInt, xMaxInt) || covered
			} else {
				covered = r.spansEvenOdd(cov, xMinInt, xMaxInt) || covered
			}
		}
		if !covered {
			continue
		}

		for x := xMinInt; x < xMaxInt; x++ {
			c := cov[x]
			if c <= 0 {
				continue
			}
			if c > 1 {
				c = 1
			}
			blit(x, y, c)
		}
	}
}

// spansNonZero accumulates span coverage using the non-zero rule.
func (r *Rasterizer) spansNonZero(cov []float64, xMin, xMax int) bool {
	covered := false
	winding := 0
	var x1 float64
	for _, cr := range r.aet.crossings {
		if winding == 0 {
			x1 = cr.x
		}
		winding += cr.dir
		if winding == 0 {
			covered = addSpanCoverage(cov, x1, cr.x, xMin, xMax) || covered
		}
	}
	return covered
}

// spansEvenOdd accumulates span coverage using the even-odd rule.
func (r *Rasterizer) spansEvenOdd(cov []float64, xMin, xMax int) bool {
	covered := false
	cs := r.aet.crossings
	for i := 0; i+1 < len(cs); i += 2 {
		covered = addSpanCoverage(cov, cs[i].x, cs[i+1].x, xMin, xMax) || covered
	}
	return covered
}

// addSpanCoverage adds one subsample's worth of coverage for the span
// [x1, x2), with analytic fractional coverage at the span ends.
func addSpanCoverage(cov []float64, x1, x2 float64, xMin, xMax int) bool {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if x1 < float64(xMin) {
		x1 = float64(xMin)
	}
	if x2 > float64(xMax) {
		x2 = float64(xMax)
	}
	if x1 >= x2 {
		return false
	}

	const weight = 1.0 / supersamples
	ix1 := int(math.Floor(x1))
	ix2 := int(math.Ceil(x2))
	for x := ix1; x < ix2; x++ {
		l := math.Max(x1, float64(x))
		h := math.Min(x2, float64(x+1))
		if h > l {
			cov[x] += (h - l) * weight
		}
	}
	return true
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
