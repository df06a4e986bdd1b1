// Package icon renders the archive-arrow extension icon: a teal rounded
// rectangle with a white downward arrow, drawn onto a transparent square
// canvas. All geometry derives from the pixel size by integer division, so
// every size in a set renders the same proportions.
package icon

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"
)

// Stock colors matching the published extension assets.
var (
	DefaultBackground = color.NRGBA{R: 0x10, G: 0xa3, B: 0x7f, A: 0xff} // teal
	DefaultArrow      = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff} // white
)

// Palette holds the two fill colors used by the icon.
type Palette struct {
	Background color.NRGBA
	Arrow      color.NRGBA
}

// DefaultPalette returns the stock teal-and-white palette.
func DefaultPalette() Palette {
	return Palette{Background: DefaultBackground, Arrow: DefaultArrow}
}

// Geometry is the derived pixel layout for one icon size. Every field is
// computed from Size by integer division; see Compute.
type Geometry struct {
	Size    int
	Padding int // inset of the rounded rectangle on all four sides
	Radius  int // corner radius of the rounded rectangle

	ArrowW int // bounding box of the arrow glyph, centered on the canvas
	ArrowH int

	ShaftW      int // width of the vertical bar
	ShaftTop    int
	ShaftBottom int // also the top edge of the head triangle

	HeadLeft   int
	HeadRight  int
	HeadBottom int // apex of the head triangle, at x = CenterX

	CenterX int
	CenterY int
}

// Compute derives the icon geometry for a given pixel size.
func Compute(size int) Geometry {
	cx, cy := size/2, size/2
	aw, ah := size/3, size/3
	return Geometry{
		Size:        size,
		Padding:     size / 8,
		Radius:      size / 4,
		ArrowW:      aw,
		ArrowH:      ah,
		ShaftW:      aw / 3,
		ShaftTop:    cy - ah/2,
		ShaftBottom: cy + ah/6,
		HeadLeft:    cx - aw/2,
		HeadRight:   cx + aw/2,
		HeadBottom:  cy + ah/2,
		CenterX:     cx,
		CenterY:     cy,
	}
}

// Draw renders the icon at the given size. The canvas starts fully
// transparent; the rounded rectangle is filled first, then the arrow shaft
// and head on top, so the arrow wins on overlap. Output is a pure function
// of size and palette.
func Draw(size int, p Palette) *image.NRGBA {
	g := Compute(size)
	img := image.NewNRGBA(image.Rect(0, 0, size, size))

	drawRoundedRect(img, g, p.Background)
	drawShaft(img, g, p.Arrow)
	drawHead(img, g, p.Arrow)
	return img
}

// drawRoundedRect fills the background shape using a signed-distance
// function, blending a half-pixel band at the edge for antialiasing.
func drawRoundedRect(img *image.NRGBA, g Geometry, c color.NRGBA) {
	half := float64(g.Size) / 2
	ext := float64(g.Size-2*g.Padding) / 2
	r := float64(g.Radius)
	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			d := roundedBoxSDF(float64(x)+0.5-half, float64(y)+0.5-half, ext, ext, r)
			if d <= -0.5 {
				img.SetNRGBA(x, y, c)
			} else if d < 0.5 {
				blend(img, x, y, c, 0.5-d)
			}
		}
	}
}

// drawShaft fills the vertical bar of the arrow. Coordinates are inclusive
// pixel positions, so the path extends one pixel past the max on each axis;
// a shaft of width 0 still lands as a one-pixel column.
func drawShaft(img *image.NRGBA, g Geometry, c color.NRGBA) {
	x0 := float32(g.CenterX - g.ShaftW/2)
	x1 := float32(g.CenterX + g.ShaftW/2 + 1)
	y0 := float32(g.ShaftTop)
	y1 := float32(g.ShaftBottom + 1)

	var r vector.Rasterizer
	r.Reset(g.Size, g.Size)
	r.MoveTo(x0, y0)
	r.LineTo(x1, y0)
	r.LineTo(x1, y1)
	r.LineTo(x0, y1)
	r.ClosePath()
	r.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{})
}

// drawHead fills the downward triangle below the shaft, apex centered.
func drawHead(img *image.NRGBA, g Geometry, c color.NRGBA) {
	top := float32(g.ShaftBottom)

	var r vector.Rasterizer
	r.Reset(g.Size, g.Size)
	r.MoveTo(float32(g.HeadLeft), top)
	r.LineTo(float32(g.HeadRight+1), top)
	r.LineTo(float32(g.CenterX)+0.5, float32(g.HeadBottom+1))
	r.ClosePath()
	r.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{})
}

// roundedBoxSDF returns the signed distance from (px, py) to a rounded rect
// centered at the origin with half-extents (bx, by) and corner radius r.
// Negative = inside, positive = outside.
func roundedBoxSDF(px, py, bx, by, r float64) float64 {
	qx := math.Abs(px) - bx + r
	qy := math.Abs(py) - by + r
	return math.Sqrt(math.Max(qx, 0)*math.Max(qx, 0)+math.Max(qy, 0)*math.Max(qy, 0)) +
		math.Min(math.Max(qx, qy), 0) - r
}

// blend alpha-composites color c at the given coverage over the existing
// pixel.
func blend(img *image.NRGBA, x, y int, c color.NRGBA, coverage float64) {
	if coverage <= 0 {
		return
	}
	coverage = math.Min(coverage, 1)

	dst := img.NRGBAAt(x, y)
	sa := float64(c.A) / 255.0 * coverage
	da := float64(dst.A) / 255.0
	oa := sa + da*(1-sa)
	if oa == 0 {
		return
	}

	img.SetNRGBA(x, y, color.NRGBA{
		R: uint8(math.Round((float64(c.R)*sa + float64(dst.R)*da*(1-sa)) / oa)),
		G: uint8(math.Round((float64(c.G)*sa + float64(dst.G)*da*(1-sa)) / oa)),
		B: uint8(math.Round((float64(c.B)*sa + float64(dst.B)*da*(1-sa)) / oa)),
		A: uint8(math.Round(oa * 255)),
	})
}
