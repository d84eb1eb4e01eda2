package canvas

// Renderer rasterizes finished paths into a pixmap. The render context
// depends on this interface only, so alternative backends can be
// injected with WithRenderer.
//
// Fill uses the even-odd fill rule. clip may be nil, meaning no
// clipping. Implementations never return errors: per the drawing
// error policy, rasterization failures degrade visually.
type Renderer interface {
	// Fill rasterizes the path filled with the paint.
	Fill(pixmap *Pixmap, path *Path, paint Paint, clip *Mask)

	// Stroke rasterizes the path outlined with the paint at the given
	// line width. Widths below one pixel render as a one-pixel
	// hairline.
	Stroke(pixmap *Pixmap, path *Path, paint Paint, lineWidth float64, clip *Mask)

	// FillMask rasterizes the path's coverage into an alpha mask.
	FillMask(mask *Mask, path *Path)

	// Resize adjusts internal buffers to a new target size.
	Resize(width, height int)
}
