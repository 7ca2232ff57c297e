package render

import (
	"image"
	"image/color"
	"math"
)

// Canvas is the minimal drawing surface the renderer needs. Keeping the
// raster backend behind this interface means the figure code never touches
// pixels directly and the backend stays swappable.
type Canvas interface {
	Fill(c color.Color)
	Line(x0, y0, x1, y1 float64, c color.Color, width float64)
	Polyline(pts []Point, c color.Color, width float64)
	CircleOutline(cx, cy, r float64, c color.Color, width float64)
	HalfDiscDown(cx, cy, r float64, c color.Color)
	Image() *image.Paletted
}

// Point is a 2D coordinate in canvas space.
type Point struct {
	X, Y float64
}

// paletted rasterizes onto an indexed-color image so frames can go straight
// into the GIF encoder without quantization.
type paletted struct {
	img *image.Paletted
}

func newCanvas(w, h int, pal color.Palette) *paletted {
	return &paletted{img: image.NewPaletted(image.Rect(0, 0, w, h), pal)}
}

func (p *paletted) Image() *image.Paletted { return p.img }

func (p *paletted) Fill(c color.Color) {
	idx := uint8(p.img.Palette.Index(c))
	for i := range p.img.Pix {
		p.img.Pix[i] = idx
	}
}

// Line draws a stroked segment with round caps. Every pixel within half the
// stroke width of the segment is set.
func (p *paletted) Line(x0, y0, x1, y1 float64, c color.Color, width float64) {
	idx := uint8(p.img.Palette.Index(c))
	half := width / 2

	minX := int(math.Floor(math.Min(x0, x1) - half - 1))
	maxX := int(math.Ceil(math.Max(x0, x1) + half + 1))
	minY := int(math.Floor(math.Min(y0, y1) - half - 1))
	maxY := int(math.Ceil(math.Max(y0, y1) + half + 1))

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if !(image.Point{X: x, Y: y}.In(p.img.Rect)) {
				continue
			}
			if segmentDistance(float64(x), float64(y), x0, y0, x1, y1) <= half {
				p.img.SetColorIndex(x, y, idx)
			}
		}
	}
}

// Polyline draws connected segments with round joints at the interior points.
func (p *paletted) Polyline(pts []Point, c color.Color, width float64) {
	for i := 0; i+1 < len(pts); i++ {
		p.Line(pts[i].X, pts[i].Y, pts[i+1].X, pts[i+1].Y, c, width)
	}
	for i := 1; i+1 < len(pts); i++ {
		p.disc(pts[i].X, pts[i].Y, width/2, c)
	}
}

func (p *paletted) CircleOutline(cx, cy, r float64, c color.Color, width float64) {
	idx := uint8(p.img.Palette.Index(c))
	half := width / 2
	outer := r + half

	for y := int(math.Floor(cy - outer - 1)); y <= int(math.Ceil(cy+outer+1)); y++ {
		for x := int(math.Floor(cx - outer - 1)); x <= int(math.Ceil(cx+outer+1)); x++ {
			if !(image.Point{X: x, Y: y}.In(p.img.Rect)) {
				continue
			}
			d := math.Hypot(float64(x)-cx, float64(y)-cy)
			if d >= r-half && d <= r+half {
				p.img.SetColorIndex(x, y, idx)
			}
		}
	}
}

// HalfDiscDown fills the lower half of a disc, flat edge up. Used for the
// sunglasses lenses.
func (p *paletted) HalfDiscDown(cx, cy, r float64, c color.Color) {
	idx := uint8(p.img.Palette.Index(c))
	for y := int(math.Floor(cy)); y <= int(math.Ceil(cy+r+1)); y++ {
		for x := int(math.Floor(cx - r - 1)); x <= int(math.Ceil(cx+r+1)); x++ {
			if !(image.Point{X: x, Y: y}.In(p.img.Rect)) {
				continue
			}
			if float64(y) >= cy && math.Hypot(float64(x)-cx, float64(y)-cy) <= r {
				p.img.SetColorIndex(x, y, idx)
			}
		}
	}
}

func (p *paletted) disc(cx, cy, r float64, c color.Color) {
	idx := uint8(p.img.Palette.Index(c))
	for y := int(math.Floor(cy - r - 1)); y <= int(math.Ceil(cy+r+1)); y++ {
		for x := int(math.Floor(cx - r - 1)); x <= int(math.Ceil(cx+r+1)); x++ {
			if !(image.Point{X: x, Y: y}.In(p.img.Rect)) {
				continue
			}
			if math.Hypot(float64(x)-cx, float64(y)-cy) <= r {
				p.img.SetColorIndex(x, y, idx)
			}
		}
	}
}

// segmentDistance returns the distance from (px,py) to the segment
// (x0,y0)-(x1,y1).
func segmentDistance(px, py, x0, y0, x1, y1 float64) float64 {
	dx := x1 - x0
	dy := y1 - y0
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Hypot(px-x0, py-y0)
	}
	t := ((px-x0)*dx + (py-y0)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(px-(x0+t*dx), py-(y0+t*dy))
}
