package canvas

// Mask is a per-pixel alpha mask used for clipping. Values range from
// 0 (fully clipped) to 255 (fully visible).
//
// Mask implements the rasterizer's Clip and AlphaSurface interfaces:
// it is built by rasterizing a path's coverage and consumed by the
// software renderer when blending.
type Mask struct {
	width  int
	height int
	data   []uint8
}

// NewMask creates an empty (fully clipped) mask.
func NewMask(width, height int) *Mask {
	return &Mask{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height.
func (m *Mask) Height() int { return m.height }

// At returns the mask value at (x, y), 0 outside the mask bounds.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.data[y*m.width+x]
}

// AddCoverage accumulates rasterized coverage at (x, y).
func (m *Mask) AddCoverage(x, y int, coverage float64) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	i := y*m.width + x
	v := float64(m.data[i]) + coverage*255
	if v > 255 {
		v = 255
	}
	m.data[i] = uint8(v)
}

// Intersect returns a new mask holding the per-pixel minimum of both
// masks. Intersecting with nil returns m unchanged: nested clips only
// ever narrow the visible region.
func (m *Mask) Intersect(other *Mask) *Mask {
	if other == nil {
		return m
	}
	out := NewMask(m.width, m.height)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			a := m.At(x, y)
			b := other.At(x, y)
			if b < a {
				a = b
			}
			out.data[y*m.width+x] = a
		}
	}
	return out
}
