package canvas

import (
	"image"
	_ "image/png" // register PNG decoding for LoadImage
	"os"
)

// Image is an immutable RGBA pixel rectangle suitable for blitting
// onto a render context. The pixel data uses the same RGBA byte order
// as the context's pixel buffer, so blits are plain bounds-checked
// copies with source-over blending.
type Image struct {
	width  int
	height int
	data   []uint8
}

// NewImage creates an empty image.
func NewImage(width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, errInvalidDimensions
	}
	return &Image{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}, nil
}

// ImageFromImage converts a standard image.Image.
func ImageFromImage(img image.Image) *Image {
	pm := FromImage(img)
	return &Image{width: pm.width, height: pm.height, data: pm.data}
}

// LoadImage reads and decodes an image file (PNG).
func LoadImage(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return ImageFromImage(img), nil
}

// Width returns the image width in pixels.
func (i *Image) Width() int { return i.width }

// Height returns the image height in pixels.
func (i *Image) Height() int { return i.height }

// Data returns the raw pixel data in RGBA byte order.
func (i *Image) Data() []uint8 { return i.data }

// SetPixel sets a single pixel. Out-of-bounds coordinates are ignored.
func (i *Image) SetPixel(x, y int, c Color) {
	if x < 0 || x >= i.width || y < 0 || y >= i.height {
		return
	}
	o := (y*i.width + x) * 4
	i.data[o+0] = c.R
	i.data[o+1] = c.G
	i.data[o+2] = c.B
	i.data[o+3] = c.A
}

// RenderTarget is an off-screen RGBA buffer that external producers
// (pipelines, embedded renderers) draw into before the result is
// blitted onto a render context.
type RenderTarget struct {
	width  int
	height int
	data   []uint8
}

// NewRenderTarget creates an empty render target.
func NewRenderTarget(width, height int) (*RenderTarget, error) {
	if width <= 0 || height <= 0 {
		return nil, errInvalidDimensions
	}
	return &RenderTarget{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}, nil
}

// Width returns the target width in pixels.
func (t *RenderTarget) Width() int { return t.width }

// Height returns the target height in pixels.
func (t *RenderTarget) Height() int { return t.height }

// Data returns the raw pixel data in RGBA byte order. The slice
// aliases the target's storage; writes are visible to later blits.
func (t *RenderTarget) Data() []uint8 { return t.data }

// SetPixel sets a single pixel. Out-of-bounds coordinates are ignored.
func (t *RenderTarget) SetPixel(x, y int, c Color) {
	if x < 0 || x >= t.width || y < 0 || y >= t.height {
		return
	}
	o := (y*t.width + x) * 4
	t.data[o+0] = c.R
	t.data[o+1] = c.G
	t.data[o+2] = c.B
	t.data[o+3] = c.A
}
