package export

import (
	"bytes"
	"fmt"

	svg "github.com/ajstarks/svgo"

	"github.com/Mavwarf/icongen/internal/icon"
	"github.com/Mavwarf/icongen/internal/paths"
)

// SVGSize is the viewBox used for the vector master. 128 is the largest
// raster size, so the SVG shares its exact integer geometry.
const SVGSize = 128

// WriteSVG emits a scalable version of the icon using the same derived
// geometry as the raster renderer, with the inclusive-coordinate widths the
// raster shapes use.
func WriteSVG(path string, size int, pal icon.Palette) error {
	g := icon.Compute(size)

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Startview(size, size, 0, 0, size, size)

	canvas.Roundrect(g.Padding, g.Padding, size-2*g.Padding, size-2*g.Padding,
		g.Radius, g.Radius, "fill:"+icon.Hex(pal.Background))

	arrow := "fill:" + icon.Hex(pal.Arrow)
	canvas.Rect(g.CenterX-g.ShaftW/2, g.ShaftTop,
		2*(g.ShaftW/2)+1, g.ShaftBottom+1-g.ShaftTop, arrow)
	canvas.Polygon(
		[]int{g.HeadLeft, g.HeadRight + 1, g.CenterX},
		[]int{g.ShaftBottom, g.ShaftBottom, g.HeadBottom + 1},
		arrow)

	canvas.End()

	if err := paths.AtomicWrite(path, buf.Bytes()); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
