package render

import (
	"bytes"
	"fmt"
	"image/color"

	svg "github.com/ajstarks/svgo"

	"github.com/qrforge/qrforge/internal/config"
	"github.com/qrforge/qrforge/internal/matrix"
)

// svgRenderer emits one rect per dark module over a light symbol area.
// Icons are not embedded in vector output; use a raster format for that.
type svgRenderer struct{}

func (s *svgRenderer) Render(m matrix.Matrix, opts config.EncodeOptions) ([]byte, error) {
	quiet := quietZoneModules
	if opts.NoPadding {
		quiet = 0
	}
	symbolEdge := m.Size() * opts.ModuleSize
	total := symbolEdge + 2*quiet*opts.ModuleSize
	offset := quiet * opts.ModuleSize

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(total, total)
	canvas.Rect(0, 0, total, total, "fill:"+hexRGB(opts.Background))
	canvas.Rect(offset, offset, symbolEdge, symbolEdge, "fill:"+hexRGB(opts.Light))
	darkStyle := "fill:" + hexRGB(opts.Dark)
	for y := 0; y < m.Size(); y++ {
		for x := 0; x < m.Size(); x++ {
			if m.Dark(x, y) {
				canvas.Rect(offset+x*opts.ModuleSize, offset+y*opts.ModuleSize,
					opts.ModuleSize, opts.ModuleSize, darkStyle)
			}
		}
	}
	canvas.End()
	return buf.Bytes(), nil
}

func hexRGB(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
