package render

import (
	"strings"

	"github.com/qrforge/qrforge/internal/config"
	"github.com/qrforge/qrforge/internal/matrix"
)

// textRenderer writes the symbol as a character grid. Colors and module
// size do not apply; the no-padding flag still controls the quiet zone.
type textRenderer struct{}

const (
	darkCell  = "██" // two full blocks approximate a square module
	lightCell = "  "
)

func (t *textRenderer) Render(m matrix.Matrix, opts config.EncodeOptions) ([]byte, error) {
	quiet := quietZoneModules
	if opts.NoPadding {
		quiet = 0
	}
	width := m.Size() + 2*quiet

	var sb strings.Builder
	sb.Grow((width*len(lightCell) + 1) * width)
	for y := -quiet; y < m.Size()+quiet; y++ {
		for x := -quiet; x < m.Size()+quiet; x++ {
			if m.Dark(x, y) {
				sb.WriteString(darkCell)
			} else {
				sb.WriteString(lightCell)
			}
		}
		sb.WriteByte('\n')
	}
	return []byte(sb.String()), nil
}
