package raster

// Point represents a 2D point (internal copy to avoid an import cycle).
type Point struct {
	X, Y float64
}

// Edge is a non-horizontal line segment prepared for scanline
// rasterization, stored with y0 < y1.
type Edge struct {
	x0, y0 float64
	x1, y1 float64
	dir    int // winding direction before normalization: +1 or -1
}

// NewEdge creates an edge from two points.
func NewEdge(p0, p1 Point) Edge {
	dir := 1
	if p0.Y > p1.Y {
		dir = -1
		p0, p1 = p1, p0
	}
	return Edge{
		x0:  p0.X,
		y0:  p0.Y,
		x1:  p1.X,
		y1:  p1.Y,
		dir: dir,
	}
}

// XAtY returns the x coordinate where the edge crosses the given y.
func (e *Edge) XAtY(y float64) float64 {
	if e.y1 == e.y0 {
		return e.x0
	}
	t := (y - e.y0) / (e.y1 - e.y0)
	return e.x0 + (e.x1-e.x0)*t
}

// crossing is an edge intersection with a specific scanline.
type crossing struct {
	x   float64
	dir int
}

// activeEdgeTable collects and orders the crossings of one scanline.
type activeEdgeTable struct {
	crossings []crossing
}

func newActiveEdgeTable() *activeEdgeTable {
	return &activeEdgeTable{
		crossings: make([]crossing, 0, 32),
	}
}

// AddAtY records an edge crossing at the given scanline y.
func (aet *activeEdgeTable) AddAtY(e Edge, y float64) {
	aet.crossings = append(aet.crossings, crossing{x: e.XAtY(y), dir: e.dir})
}

// Sort orders the crossings by x (insertion sort, lists are small).
func (aet *activeEdgeTable) Sort() {
	cs := aet.crossings
	for i := 1; i < len(cs); i++ {
		key := cs[i]
		j := i - 1
		for j >= 0 && cs[j].x > key.x {
			cs[j+1] = cs[j]
			j--
		}
		cs[j+1] = key
	}
}

// Clear empties the table, keeping capacity.
func (aet *activeEdgeTable) Clear() {
	aet.crossings = aet.crossings[:0]
}
