package canvas

// Option configures a RenderContext during creation.
//
// Example:
//
//	// Default software rendering
//	ctx, err := canvas.New(800, 600)
//
//	// Custom renderer (dependency injection)
//	ctx, err := canvas.New(800, 600, canvas.WithRenderer(myRenderer))
type Option func(*contextOptions)

// contextOptions holds optional configuration for context creation.
type contextOptions struct {
	renderer   Renderer
	pixmap     *Pixmap
	background Color
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{
		background: Transparent,
	}
}

// WithRenderer sets a custom rasterizer backend for the context.
func WithRenderer(r Renderer) Option {
	return func(o *contextOptions) {
		o.renderer = r
	}
}

// WithPixmap sets a custom pixel buffer for the context. The pixmap
// dimensions should match the context dimensions.
func WithPixmap(pm *Pixmap) Option {
	return func(o *contextOptions) {
		o.pixmap = pm
	}
}

// WithBackground sets the background color used by Start.
func WithBackground(c Color) Option {
	return func(o *contextOptions) {
		o.background = c
	}
}
