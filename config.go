package canvas

// FontConfig selects the font used by text operations.
type FontConfig struct {
	Family string
	Size   float64
}

// RenderConfig is the mutable drawing configuration of a render
// context. It is mutated only through the context's setters and read
// by the paint resolver and text layout.
type RenderConfig struct {
	FillStyle   Brush
	StrokeStyle Brush
	LineWidth   float64
	Alpha       float64
	Font        FontConfig
}

// defaultRenderConfig returns the configuration a fresh context starts
// with: opaque black styles, hairline width, full alpha.
func defaultRenderConfig() RenderConfig {
	return RenderConfig{
		FillStyle:   SolidColor{Color: Black},
		StrokeStyle: SolidColor{Color: Black},
		LineWidth:   1,
		Alpha:       1,
		Font:        FontConfig{Size: 14},
	}
}

// savedState is an immutable snapshot of the drawing state at the
// moment Save was called. Snapshots are owned exclusively by the state
// stack; Restore pops and discards them.
type savedState struct {
	config     RenderConfig
	pathRect   PathRect
	clipsCount int
	clipMask   *Mask
	transform  Matrix
}

// TextMetrics reports the extent of a measured string under a font
// configuration. Metrics are recomputed per call, never cached across
// font state mutations.
type TextMetrics struct {
	Width  float64
	Height float64
}
