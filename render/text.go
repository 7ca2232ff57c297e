package render

import (
	"image"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

var (
	fontOnce   sync.Once
	letterFont *sfnt.Font
)

func parsedFont() *sfnt.Font {
	fontOnce.Do(func() {
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			// goregular.TTF is embedded in the binary; a parse failure
			// means the toolchain is broken, not the caller.
			panic("render: parsing embedded font: " + err.Error())
		}
		letterFont = f
	})
	return letterFont
}

// drawLetter draws a single glyph centered on centerX with its bottom edge
// sitting on bottomY. A fresh face is created per call so frames stay
// reentrant; faces hold mutable shaping buffers.
func drawLetter(dst *image.Paletted, letter rune, centerX, bottomY, size float64, src image.Image) {
	face, err := opentype.NewFace(parsedFont(), &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		panic("render: creating font face: " + err.Error())
	}
	defer face.Close()

	d := &font.Drawer{
		Dst:  dst,
		Src:  src,
		Face: face,
	}

	s := string(letter)
	advance := d.MeasureString(s)
	baseline := fixed.I(int(bottomY)) - face.Metrics().Descent
	d.Dot = fixed.Point26_6{
		X: fixed.I(int(centerX)) - advance/2,
		Y: baseline,
	}
	d.DrawString(s)
}
