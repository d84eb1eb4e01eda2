package canvas

import (
	ipath "github.com/gocanvas/canvas/internal/path"
	"github.com/gocanvas/canvas/internal/raster"
)

// SoftwareRenderer is the default CPU scanline rasterizer backend.
type SoftwareRenderer struct {
	rasterizer *raster.Rasterizer
}

// NewSoftwareRenderer creates a software renderer for targets of the
// given dimensions.
func NewSoftwareRenderer(width, height int) *SoftwareRenderer {
	return &SoftwareRenderer{
		rasterizer: raster.New(width, height),
	}
}

// Fill implements Renderer. Paths are filled with the even-odd rule.
func (r *SoftwareRenderer) Fill(pixmap *Pixmap, path *Path, paint Paint, clip *Mask) {
	subpaths := flattenPath(path)
	r.rasterizer.Fill(&pixmapSurface{pixmap}, subpaths, raster.FillRuleEvenOdd, paint.Shader, clipOf(clip))
}

// Stroke implements Renderer.
func (r *SoftwareRenderer) Stroke(pixmap *Pixmap, path *Path, paint Paint, lineWidth float64, clip *Mask) {
	subpaths := flattenPath(path)
	r.rasterizer.Stroke(&pixmapSurface{pixmap}, subpaths, lineWidth, paint.Shader, clipOf(clip))
}

// FillMask implements Renderer.
func (r *SoftwareRenderer) FillMask(mask *Mask, path *Path) {
	subpaths := flattenPath(path)
	r.rasterizer.FillAlpha(mask, subpaths, raster.FillRuleEvenOdd)
}

// Resize implements Renderer.
func (r *SoftwareRenderer) Resize(width, height int) {
	r.rasterizer.Resize(width, height)
}

// clipOf converts a possibly-nil *Mask into the rasterizer's Clip.
// A plain conversion would turn a nil *Mask into a non-nil interface.
func clipOf(m *Mask) raster.Clip {
	if m == nil {
		return nil
	}
	return m
}

// flattenPath converts path elements to the internal representation and
// flattens curves into per-subpath polylines.
func flattenPath(p *Path) [][]raster.Point {
	elements := make([]ipath.Element, 0, len(p.Elements()))
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			elements = append(elements, ipath.MoveTo{Point: ipath.Point{X: e.Point.X, Y: e.Point.Y}})
		case LineTo:
			elements = append(elements, ipath.LineTo{Point: ipath.Point{X: e.Point.X, Y: e.Point.Y}})
		case QuadTo:
			elements = append(elements, ipath.QuadTo{
				Control: ipath.Point{X: e.Control.X, Y: e.Control.Y},
				Point:   ipath.Point{X: e.Point.X, Y: e.Point.Y},
			})
		case CubicTo:
			elements = append(elements, ipath.CubicTo{
				Control1: ipath.Point{X: e.Control1.X, Y: e.Control1.Y},
				Control2: ipath.Point{X: e.Control2.X, Y: e.Control2.Y},
				Point:    ipath.Point{X: e.Point.X, Y: e.Point.Y},
			})
		case Close:
			elements = append(elements, ipath.Close{})
		}
	}

	flattened := ipath.Flatten(elements)
	subpaths := make([][]raster.Point, len(flattened))
	for i, sub := range flattened {
		points := make([]raster.Point, len(sub))
		for j, pt := range sub {
			points[j] = raster.Point{X: pt.X, Y: pt.Y}
		}
		subpaths[i] = points
	}
	return subpaths
}

// pixmapSurface adapts Pixmap to the rasterizer's Surface interface.
type pixmapSurface struct {
	pixmap *Pixmap
}

func (s *pixmapSurface) Width() int  { return s.pixmap.Width() }
func (s *pixmapSurface) Height() int { return s.pixmap.Height() }

// BlendPixel source-over blends c into the pixel, scaling the source
// alpha by the anti-aliasing coverage.
func (s *pixmapSurface) BlendPixel(x, y int, c raster.RGBA, coverage float64) {
	p := s.pixmap
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}

	srcA := c.A * coverage
	if srcA <= 0 {
		return
	}

	i := (y*p.width + x) * 4
	if srcA >= 1 {
		p.data[i+0] = uint8(clamp255(c.R * 255))
		p.data[i+1] = uint8(clamp255(c.G * 255))
		p.data[i+2] = uint8(clamp255(c.B * 255))
		p.data[i+3] = 255
		return
	}

	dstA := float64(p.data[i+3]) / 255
	outA := srcA + dstA*(1-srcA)
	if outA <= 0 {
		return
	}
	blend := func(src float64, dst uint8) uint8 {
		v := (src*255*srcA + float64(dst)*dstA*(1-srcA)) / outA
		return uint8(clamp255(v))
	}
	p.data[i+0] = blend(c.R, p.data[i+0])
	p.data[i+1] = blend(c.G, p.data[i+1])
	p.data[i+2] = blend(c.B, p.data[i+2])
	p.data[i+3] = uint8(clamp255(outA * 255))
}
