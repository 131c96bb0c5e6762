package render

import (
	"bytes"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"

	"github.com/qrforge/qrforge/internal/config"
	"github.com/qrforge/qrforge/internal/matrix"
)

// pdfRenderer rasterizes the symbol and imports it as a single-page PDF.
type pdfRenderer struct{}

func (p *pdfRenderer) Render(m matrix.Matrix, opts config.EncodeOptions) ([]byte, error) {
	img, err := Rasterize(m, opts)
	if err != nil {
		return nil, err
	}
	var page bytes.Buffer
	if err := encodePNG(&page, img); err != nil {
		return nil, err
	}

	var out bytes.Buffer
	imp := pdfcpu.DefaultImportConfig()
	if err := api.ImportImages(nil, &out, []io.Reader{bytes.NewReader(page.Bytes())}, imp, nil); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
