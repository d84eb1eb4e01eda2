// Package text implements the font service used by the render context:
// parsing font files and measuring and rasterizing strings.
//
// Glyph rasterization uses golang.org/x/image/font/opentype; family
// metadata comes from github.com/go-text/typesetting. The package has
// no dependency on the root canvas package: rendering targets any
// draw.Image and paints through any image.Image source, so gradient
// paints work for text the same way they do for shapes.
package text

import (
	"bytes"
	"errors"
	"image"
	"image/draw"
	"sync"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// ErrEmptyFontData is returned when Parse is given no data.
var ErrEmptyFontData = errors.New("text: empty font data")

// Font is a parsed font file. One Font serves measurement and
// rendering at any size; faces are cached per size.
//
// A Font is safe for concurrent measurement but rendering must be
// externally serialized together with its target buffer.
type Font struct {
	otf    *opentype.Font
	family string

	mu    sync.Mutex
	faces map[float64]font.Face
}

// Parse parses TTF or OTF font data.
//
// The family name is read from the font's own name table when
// possible; callers registering fonts without an explicit family can
// rely on it.
func Parse(data []byte) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	otf, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}

	family := ""
	if face, err := gotext.ParseTTF(bytes.NewReader(data)); err == nil {
		family = face.Describe().Family
	}

	return &Font{
		otf:    otf,
		family: family,
		faces:  make(map[float64]font.Face),
	}, nil
}

// Family returns the font's family name, or "" when the name table
// could not be read.
func (f *Font) Family() string {
	return f.family
}

// face returns a cached face for the size.
func (f *Font) face(size float64) (font.Face, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if face, ok := f.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(f.otf, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	f.faces[size] = face
	return face, nil
}

// Measure returns the width and height of the string at the given
// size. Width is the advance of the string; height is the face's
// ascent plus descent. Empty strings measure zero.
func (f *Font) Measure(s string, size float64) (width, height float64) {
	if s == "" {
		return 0, 0
	}
	face, err := f.face(size)
	if err != nil {
		return 0, 0
	}
	advance := font.MeasureString(face, s)
	metrics := face.Metrics()
	return fixedToFloat(advance), fixedToFloat(metrics.Ascent + metrics.Descent)
}

// Render draws the string into dst with its text box's top-left corner
// at (x, y), blending glyph coverage with colors sampled from src at
// the destination coordinates.
func (f *Font) Render(dst draw.Image, src image.Image, x, y, size float64, s string) {
	if s == "" {
		return
	}
	face, err := f.face(size)
	if err != nil {
		return
	}
	metrics := face.Metrics()
	drawer := &font.Drawer{
		Dst:  dst,
		Src:  src,
		Face: face,
		Dot: fixed.Point26_6{
			X: floatToFixed(x),
			Y: floatToFixed(y) + metrics.Ascent,
		},
	}
	drawer.DrawString(s)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
