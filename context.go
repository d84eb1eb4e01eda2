package canvas

import (
	"image"
	"io"

	"github.com/gocanvas/canvas/text"
)

// RenderContext is a retained-state 2D drawing context.
//
// It owns a pixel buffer, a current path under construction, a mutable
// drawing configuration, and a save/restore stack. Drawing operations
// never return errors: invalid input degrades visually and the context
// stays usable. Only construction and Resize can fail, and only on
// non-positive dimensions.
//
// A RenderContext is not safe for concurrent use.
type RenderContext struct {
	width    int
	height   int
	pixmap   *Pixmap
	renderer Renderer

	background Color
	config     RenderConfig

	// Path under construction and its running bounding box.
	path     *Path
	pathRect PathRect

	// Clipping
	clipsCount int
	clipMask   *Mask

	transform Matrix
	states    []savedState

	fonts map[string]*text.Font
}

// New creates a render context with the given dimensions.
// Optional Option arguments can be used for dependency injection:
//
//	// Default software rendering
//	ctx, err := canvas.New(800, 600)
//
//	// Custom renderer
//	ctx, err := canvas.New(800, 600, canvas.WithRenderer(myRenderer))
func New(width, height int, opts ...Option) (*RenderContext, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	pixmap := options.pixmap
	if pixmap == nil {
		var err error
		pixmap, err = NewPixmap(width, height)
		if err != nil {
			return nil, err
		}
	}

	renderer := options.renderer
	if renderer == nil {
		renderer = NewSoftwareRenderer(width, height)
	}

	return &RenderContext{
		width:      width,
		height:     height,
		pixmap:     pixmap,
		renderer:   renderer,
		background: options.background,
		config:     defaultRenderConfig(),
		path:       NewPath(),
		transform:  Identity(),
		states:     make([]savedState, 0, 8),
		fonts:      make(map[string]*text.Font),
	}, nil
}

// Width returns the width of the drawing surface in pixels.
func (rc *RenderContext) Width() int {
	return rc.width
}

// Height returns the height of the drawing surface in pixels.
func (rc *RenderContext) Height() int {
	return rc.height
}

// Data returns the raw RGBA pixel buffer.
func (rc *RenderContext) Data() []uint8 {
	return rc.pixmap.Data()
}

// Pixmap returns the underlying pixel buffer.
func (rc *RenderContext) Pixmap() *Pixmap {
	return rc.pixmap
}

// Resize reallocates the drawing surface to the new dimensions.
//
// The current path and its bounding box are reset atomically with the
// buffer swap, and any clip masks are discarded since they no longer
// match the surface. The drawing configuration and the save/restore
// stack are preserved.
func (rc *RenderContext) Resize(width, height int) error {
	pixmap, err := NewPixmap(width, height)
	if err != nil {
		return err
	}
	rc.width = width
	rc.height = height
	rc.pixmap = pixmap
	rc.renderer.Resize(width, height)
	rc.path.Clear()
	rc.pathRect.Reset()
	rc.clipMask = nil
	rc.clipsCount = 0
	Logger().Debug("canvas: resized", "width", width, "height", height)
	return nil
}

// Start begins a frame by filling the surface with the background
// color.
func (rc *RenderContext) Start() {
	rc.pixmap.Clear(rc.background)
}

// SetBackground sets the color Start fills the surface with.
func (rc *RenderContext) SetBackground(c Color) {
	rc.background = c
}

// Clear paints the entire surface with the brush, replacing previous
// content. Unlike Fill it ignores the current path, clip masks, and
// the global alpha.
func (rc *RenderContext) Clear(brush Brush) {
	frame := Rect(0, 0, float64(rc.width), float64(rc.height))
	paint := resolvePaint(brush, frame, 1)
	p := NewPath()
	p.Rect(frame.X(), frame.Y(), frame.Width(), frame.Height())
	rc.pixmap.Clear(Transparent)
	rc.renderer.Fill(rc.pixmap, p, paint, nil)
}

// --- Path construction ---

// BeginPath discards the current path and starts a new one.
func (rc *RenderContext) BeginPath() {
	rc.path.Clear()
	rc.pathRect.Reset()
}

// MoveTo starts a new subpath at (x, y).
func (rc *RenderContext) MoveTo(x, y float64) {
	rc.path.MoveTo(x, y)
	rc.pathRect.RecordMoveTo(x, y)
}

// LineTo adds a line from the current point to (x, y).
func (rc *RenderContext) LineTo(x, y float64) {
	rc.path.LineTo(x, y)
	rc.pathRect.RecordLineTo(x, y)
}

// QuadraticTo adds a quadratic Bezier curve with control point
// (cx, cy) ending at (x, y).
func (rc *RenderContext) QuadraticTo(cx, cy, x, y float64) {
	rc.path.QuadraticTo(cx, cy, x, y)
	rc.pathRect.RecordQuadraticTo(cx, cy, x, y)
}

// CubicTo adds a cubic Bezier curve with control points (c1x, c1y)
// and (c2x, c2y) ending at (x, y).
func (rc *RenderContext) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	rc.path.CubicTo(c1x, c1y, c2x, c2y, x, y)
	rc.pathRect.RecordCubicTo(c1x, c1y, c2x, c2y, x, y)
}

// Rect adds an axis-aligned rectangle as a closed subpath.
func (rc *RenderContext) Rect(x, y, width, height float64) {
	rc.path.Rect(x, y, width, height)
	rc.pathRect.RecordRect(x, y, width, height)
}

// Arc adds a circular arc centered at (x, y) with the given radius,
// from startAngle to endAngle in radians, sweeping clockwise. When the
// path already has a current point, a line connects it to the arc's
// start; a sweep of less than a full circle is closed back to the
// center, pie-slice style.
//
// The bounding box records the full circumscribing square of the
// circle, not the tight extent of the partial sweep.
func (rc *RenderContext) Arc(x, y, radius, startAngle, endAngle float64) {
	appendArc(rc.path, x, y, radius, startAngle, endAngle)
	rc.pathRect.RecordArc(x, y, radius, startAngle, endAngle)
}

// ClosePath closes the current subpath with a line back to its start.
func (rc *RenderContext) ClosePath() {
	rc.path.Close()
	rc.pathRect.RecordClose()
}

// --- Painting ---

// Fill fills the current path with the fill style using the even-odd
// rule. The path is kept, so it can be filled and stroked in sequence.
// Nothing happens when no path geometry has been recorded.
func (rc *RenderContext) Fill() {
	bound, ok := rc.pathRect.Rect()
	if !ok {
		return
	}
	paint := resolvePaint(rc.config.FillStyle, bound, rc.config.Alpha)
	rc.renderer.Fill(rc.pixmap, rc.path, paint, rc.clipMask)
}

// Stroke outlines the current path with the stroke style at the
// current line width. The path is kept. Nothing happens when no path
// geometry has been recorded.
func (rc *RenderContext) Stroke() {
	bound, ok := rc.pathRect.Rect()
	if !ok {
		return
	}
	paint := resolvePaint(rc.config.StrokeStyle, bound, rc.config.Alpha)
	rc.renderer.Stroke(rc.pixmap, rc.path, paint, rc.config.LineWidth, rc.clipMask)
}

// FillRect fills an axis-aligned rectangle with the fill style without
// touching the current path. Non-positive extents draw nothing.
func (rc *RenderContext) FillRect(x, y, width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	frame := Rect(x, y, width, height)
	paint := resolvePaint(rc.config.FillStyle, frame, rc.config.Alpha)
	p := NewPath()
	p.Rect(x, y, width, height)
	rc.renderer.Fill(rc.pixmap, p, paint, rc.clipMask)
}

// StrokeRect outlines an axis-aligned rectangle with the stroke style
// at the current line width without touching the current path.
// Non-positive extents draw nothing.
func (rc *RenderContext) StrokeRect(x, y, width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	frame := Rect(x, y, width, height)
	paint := resolvePaint(rc.config.StrokeStyle, frame, rc.config.Alpha)
	p := NewPath()
	p.Rect(x, y, width, height)
	rc.renderer.Stroke(rc.pixmap, p, paint, rc.config.LineWidth, rc.clipMask)
}

// Clip intersects the clip region with the current path's coverage.
// Subsequent fills and strokes are masked by the intersection. The
// path itself is kept. Clips accumulate until a matching Restore.
// Clipping to an empty path is a no-op.
func (rc *RenderContext) Clip() {
	if _, ok := rc.pathRect.Rect(); !ok {
		return
	}
	mask := NewMask(rc.width, rc.height)
	rc.renderer.FillMask(mask, rc.path)
	rc.clipMask = mask.Intersect(rc.clipMask)
	rc.clipsCount++
	rc.pathRect.RecordClip()
}

// --- Text ---

// RegisterFont parses the font data and registers it under the family
// name. An empty family uses the name detected from the font's own
// metadata. Registering an already-present family is a no-op; data
// that fails to parse is skipped with a warning.
func (rc *RenderContext) RegisterFont(family string, data []byte) {
	if family != "" {
		if _, ok := rc.fonts[family]; ok {
			return
		}
	}
	font, err := text.Parse(data)
	if err != nil {
		Logger().Warn("canvas: font registration skipped", "family", family, "error", err)
		return
	}
	if family == "" {
		family = font.Family()
		if family == "" {
			Logger().Warn("canvas: font has no detectable family name, skipped")
			return
		}
		if _, ok := rc.fonts[family]; ok {
			return
		}
	}
	rc.fonts[family] = font
}

// FillText draws the string with its top-left corner at (x, y) using
// the fill style and the current font configuration. Empty strings and
// unregistered font families draw nothing.
func (rc *RenderContext) FillText(s string, x, y float64) {
	if s == "" {
		return
	}
	font, ok := rc.fonts[rc.config.Font.Family]
	if !ok {
		return
	}
	w, h := font.Measure(s, rc.config.Font.Size)
	frame := Rect(x, y, w, h)
	paint := resolvePaint(rc.config.FillStyle, frame, rc.config.Alpha)
	font.Render(rc.pixmap, shaderImage{shader: paint.Shader}, x, y, rc.config.Font.Size, s)
}

// MeasureText measures the string under the current font
// configuration. Empty strings and unregistered families measure zero.
func (rc *RenderContext) MeasureText(s string) TextMetrics {
	return rc.Measure(s, rc.config.Font.Size, rc.config.Font.Family)
}

// Measure measures the string at an explicit size and family without
// changing the context's font configuration.
func (rc *RenderContext) Measure(s string, size float64, family string) TextMetrics {
	font, ok := rc.fonts[family]
	if !ok {
		return TextMetrics{}
	}
	w, h := font.Measure(s, size)
	return TextMetrics{Width: w, Height: h}
}

// --- Images ---

// DrawImage blits the image onto the surface with its top-left corner
// at (x, y). Coordinates are truncated to integers; no scaling is
// applied and regions outside the surface are clipped.
func (rc *RenderContext) DrawImage(img *Image, x, y float64) {
	if img == nil {
		return
	}
	rc.pixmap.Blit(img.Data(), img.Width(), img.Height(), int(x), int(y))
}

// DrawRenderTarget blits an off-screen render target onto the surface
// with its top-left corner at (x, y).
func (rc *RenderContext) DrawRenderTarget(target *RenderTarget, x, y float64) {
	if target == nil {
		return
	}
	rc.pixmap.Blit(target.Data(), target.Width(), target.Height(), int(x), int(y))
}

// --- State stack ---

// Save pushes a snapshot of the drawing state: configuration, path
// bounding box, clip state, and transform. The pixel buffer and the
// path geometry itself are not saved.
func (rc *RenderContext) Save() {
	rc.states = append(rc.states, savedState{
		config:     rc.config,
		pathRect:   rc.pathRect,
		clipsCount: rc.clipsCount,
		clipMask:   rc.clipMask,
		transform:  rc.transform,
	})
}

// Restore pops the most recent snapshot and reinstates it, dropping
// any clips added since the matching Save. Restore on an empty stack
// is a no-op.
func (rc *RenderContext) Restore() {
	n := len(rc.states)
	if n == 0 {
		return
	}
	state := rc.states[n-1]
	rc.states = rc.states[:n-1]
	rc.config = state.config
	rc.pathRect = state.pathRect
	rc.clipsCount = state.clipsCount
	rc.clipMask = state.clipMask
	rc.transform = state.transform
}

// --- Configuration setters ---

// SetFillStyle sets the brush used by Fill, FillRect, and FillText.
func (rc *RenderContext) SetFillStyle(brush Brush) {
	rc.config.FillStyle = brush
}

// SetStrokeStyle sets the brush used by Stroke and StrokeRect.
func (rc *RenderContext) SetStrokeStyle(brush Brush) {
	rc.config.StrokeStyle = brush
}

// SetLineWidth sets the stroke width in pixels. Widths below one pixel
// are rendered as a one-pixel hairline; anti-aliasing coverage does
// not thin the stroke further.
func (rc *RenderContext) SetLineWidth(width float64) {
	rc.config.LineWidth = width
}

// SetAlpha sets the global alpha multiplier applied to all paints.
func (rc *RenderContext) SetAlpha(alpha float64) {
	rc.config.Alpha = alpha
}

// SetFontFamily selects the registered font family for text
// operations.
func (rc *RenderContext) SetFontFamily(family string) {
	rc.config.Font.Family = family
}

// SetFontSize sets the font size in pixels.
func (rc *RenderContext) SetFontSize(size float64) {
	rc.config.Font.Size = size
}

// --- Transform ---

// SetTransform replaces the current transformation matrix. The matrix
// participates in save/restore but the software backend draws in
// device coordinates.
func (rc *RenderContext) SetTransform(m Matrix) {
	rc.transform = m
}

// GetTransform returns the current transformation matrix.
func (rc *RenderContext) GetTransform() Matrix {
	return rc.transform
}

// Translate appends a translation to the current transform.
func (rc *RenderContext) Translate(x, y float64) {
	rc.transform = rc.transform.Multiply(Translation(x, y))
}

// Scale appends a scale to the current transform.
func (rc *RenderContext) Scale(x, y float64) {
	rc.transform = rc.transform.Multiply(Scaling(x, y))
}

// Rotate appends a clockwise rotation in radians to the current
// transform.
func (rc *RenderContext) Rotate(angle float64) {
	rc.transform = rc.transform.Multiply(Rotation(angle))
}

// --- Output ---

// Image returns a copy of the surface as a standard image.
func (rc *RenderContext) Image() *image.NRGBA {
	return rc.pixmap.ToImage()
}

// SavePNG writes the surface to a PNG file.
func (rc *RenderContext) SavePNG(path string) error {
	return rc.pixmap.SavePNG(path)
}

// EncodePNG writes the surface as PNG to the given writer.
func (rc *RenderContext) EncodePNG(w io.Writer) error {
	return rc.pixmap.EncodePNG(w)
}
