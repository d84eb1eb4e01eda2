package canvas

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
)

// errInvalidDimensions is returned when a pixel buffer cannot be
// created at the requested size.
var errInvalidDimensions = errors.New("canvas: width and height must be positive")

// Pixmap is a rectangular pixel buffer.
//
// The raw byte buffer is laid out in RGBA order, 4 bytes per pixel,
// rows top to bottom. Note this differs from the Color type's internal
// BGRA channel order; conversions go through SetPixel/PixelAt or the
// paint resolver.
//
// Pixmap implements image.Image and draw.Image over non-premultiplied
// storage.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a pixmap with the given dimensions.
func NewPixmap(width, height int) (*Pixmap, error) {
	if width <= 0 || height <= 0 {
		return nil, errInvalidDimensions
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}, nil
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data in RGBA byte order.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel. Out-of-bounds coordinates
// are ignored.
func (p *Pixmap) SetPixel(x, y int, c Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = c.A
}

// PixelAt returns the color of a single pixel. Out-of-bounds
// coordinates yield Transparent.
func (p *Pixmap) PixelAt(x, y int) Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return NewColor(p.data[i+0], p.data[i+1], p.data[i+2], p.data[i+3])
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c Color) {
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
		p.data[i+3] = c.A
	}
}

// Blit copies a source RGBA buffer of the given dimensions onto the
// pixmap at (x, y) with source-over blending, no scaling. The copy is
// bounds-checked on both ends; rows and columns falling outside either
// buffer are skipped.
func (p *Pixmap) Blit(src []uint8, srcWidth, srcHeight, x, y int) {
	if srcWidth <= 0 || srcHeight <= 0 || len(src) < srcWidth*srcHeight*4 {
		return
	}
	for sy := 0; sy < srcHeight; sy++ {
		dy := y + sy
		if dy < 0 || dy >= p.height {
			continue
		}
		for sx := 0; sx < srcWidth; sx++ {
			dx := x + sx
			if dx < 0 || dx >= p.width {
				continue
			}
			si := (sy*srcWidth + sx) * 4
			sa := src[si+3]
			if sa == 0 {
				continue
			}
			di := (dy*p.width + dx) * 4
			if sa == 255 {
				copy(p.data[di:di+4], src[si:si+4])
				continue
			}
			p.blendBytes(di, src[si], src[si+1], src[si+2], sa)
		}
	}
}

// blendBytes source-over blends a non-premultiplied source pixel into
// the buffer at byte offset di.
func (p *Pixmap) blendBytes(di int, sr, sg, sb, sa uint8) {
	srcA := float64(sa) / 255
	dstA := float64(p.data[di+3]) / 255
	outA := srcA + dstA*(1-srcA)
	if outA <= 0 {
		p.data[di+0] = 0
		p.data[di+1] = 0
		p.data[di+2] = 0
		p.data[di+3] = 0
		return
	}
	blend := func(s, d uint8) uint8 {
		v := (float64(s)*srcA + float64(d)*dstA*(1-srcA)) / outA
		return uint8(clamp255(v))
	}
	p.data[di+0] = blend(sr, p.data[di+0])
	p.data[di+1] = blend(sg, p.data[di+1])
	p.data[di+2] = blend(sb, p.data[di+2])
	p.data[di+3] = uint8(clamp255(outA * 255))
}

func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// ColorModel implements image.Image.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements image.Image.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// At implements image.Image.
func (p *Pixmap) At(x, y int) color.Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.NRGBA{}
	}
	i := (y*p.width + x) * 4
	return color.NRGBA{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Set implements draw.Image.
func (p *Pixmap) Set(x, y int, c color.Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	i := (y*p.width + x) * 4
	p.data[i+0] = nrgba.R
	p.data[i+1] = nrgba.G
	p.data[i+2] = nrgba.B
	p.data[i+3] = nrgba.A
}

// FillSpan overwrites the pixels [x1, x2) on row y with the color.
// The span is clamped to the buffer; no blending is performed.
func (p *Pixmap) FillSpan(x1, x2, y int, c Color) {
	if y < 0 || y >= p.height {
		return
	}
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if x1 < 0 {
		x1 = 0
	}
	if x2 > p.width {
		x2 = p.width
	}
	i := (y*p.width + x1) * 4
	for x := x1; x < x2; x++ {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
		p.data[i+3] = c.A
		i += 4
	}
}

// ToImage copies the pixmap into a standard image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	pm := &Pixmap{
		width:  bounds.Dx(),
		height: bounds.Dy(),
		data:   make([]uint8, bounds.Dx()*bounds.Dy()*4),
	}
	for y := 0; y < pm.height; y++ {
		for x := 0; x < pm.width; x++ {
			pm.SetPixel(x, y, FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y)))
		}
	}
	return pm
}

// SavePNG writes the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, p.ToImage())
}

// EncodePNG writes the pixmap as PNG to the given writer.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	return png.Encode(w, p.ToImage())
}
