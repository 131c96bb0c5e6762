package render

import (
	"bytes"
	"image"
	"image/draw"
	"image/gif"
	"image/png"
	"io"

	"github.com/disintegration/imaging"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/qrforge/qrforge/internal/config"
	"github.com/qrforge/qrforge/internal/matrix"
)

// quietZoneModules is the standard QR quiet zone width.
const quietZoneModules = 4

// rasterRenderer draws the matrix into pixels and hands the result to a
// format-specific encoder.
type rasterRenderer struct {
	encode func(io.Writer, image.Image) error
}

func (r *rasterRenderer) Render(m matrix.Matrix, opts config.EncodeOptions) ([]byte, error) {
	img, err := Rasterize(m, opts)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := r.encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Rasterize draws the symbol with the configured colors, module size and
// quiet zone, overlaying the icon when one is configured.
func Rasterize(m matrix.Matrix, opts config.EncodeOptions) (image.Image, error) {
	quiet := quietZoneModules
	if opts.NoPadding {
		quiet = 0
	}
	symbolEdge := m.Size() * opts.ModuleSize
	total := symbolEdge + 2*quiet*opts.ModuleSize

	img := image.NewNRGBA(image.Rect(0, 0, total, total))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	offset := quiet * opts.ModuleSize
	symbolArea := image.Rect(offset, offset, offset+symbolEdge, offset+symbolEdge)
	draw.Draw(img, symbolArea, image.NewUniform(opts.Light), image.Point{}, draw.Src)

	dark := image.NewUniform(opts.Dark)
	for y := 0; y < m.Size(); y++ {
		for x := 0; x < m.Size(); x++ {
			if !m.Dark(x, y) {
				continue
			}
			px := offset + x*opts.ModuleSize
			py := offset + y*opts.ModuleSize
			draw.Draw(img, image.Rect(px, py, px+opts.ModuleSize, py+opts.ModuleSize), dark, image.Point{}, draw.Src)
		}
	}

	if opts.IconPath == "" {
		return img, nil
	}
	return overlayIcon(img, symbolEdge, opts)
}

// overlayIcon composites the configured icon onto the symbol center with
// its background box and border.
func overlayIcon(img *image.NRGBA, symbolEdge int, opts config.EncodeOptions) (image.Image, error) {
	icon, err := imaging.Open(opts.IconPath)
	if err != nil {
		return nil, err
	}

	edge := symbolEdge * opts.IconSizePercent / 100
	if edge < 1 {
		edge = 1
	}
	resized := imaging.Resize(icon, edge, edge, imaging.Lanczos)

	background := opts.IconBackground
	if background == nil {
		background = opts.Light
	}
	bw := opts.IconBorderWidth
	boxW := resized.Bounds().Dx() + 2*bw
	boxH := resized.Bounds().Dy() + 2*bw
	cx, cy := img.Bounds().Dx()/2, img.Bounds().Dy()/2
	box := image.Rect(cx-boxW/2, cy-boxH/2, cx-boxW/2+boxW, cy-boxH/2+boxH)
	draw.Draw(img, box, image.NewUniform(background), image.Point{}, draw.Src)

	return imaging.OverlayCenter(img, resized, 1.0), nil
}

func encodePNG(w io.Writer, img image.Image) error { return png.Encode(w, img) }

func encodeBMP(w io.Writer, img image.Image) error { return bmp.Encode(w, img) }

func encodeGIF(w io.Writer, img image.Image) error {
	return gif.Encode(w, img, &gif.Options{NumColors: 256})
}

func encodeTIFF(w io.Writer, img image.Image) error { return tiff.Encode(w, img, nil) }
