package render

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qrforge/qrforge/internal/config"
	"github.com/qrforge/qrforge/internal/matrix"
)

func testMatrix(t *testing.T) matrix.Matrix {
	t.Helper()
	m, err := matrix.Generate("Hello, World!", config.LevelMedium)
	require.NoError(t, err)
	return m
}

func TestNormalizeExt(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{".png", ".png"},
		{".PNG", ".png"},
		{"png", ".png"},
		{" .Svg ", ".svg"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizeExt(tt.input))
	}
}

func TestRegistrySupported(t *testing.T) {
	reg := NewRegistry()
	supported := reg.Supported()
	for _, ext := range []string{".txt", ".png", ".bmp", ".gif", ".tif", ".svg", ".pdf"} {
		assert.Contains(t, supported, ext)
	}
	assert.IsNonDecreasing(t, supported)
}

func TestRegistryLookupUnsupported(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Lookup(".webp")
	var ufe *UnsupportedFormatError
	require.ErrorAs(t, err, &ufe)
	assert.Equal(t, ".webp", ufe.Ext)
	assert.Equal(t, reg.Supported(), ufe.Supported)
	assert.Contains(t, err.Error(), ".png")
}

func TestRegistryPlatformFiltering(t *testing.T) {
	// a candidate restricted to another GOOS must not be registered
	c := candidate{platforms: []string{"someos"}}
	assert.False(t, c.availableOn("linux"))
	assert.True(t, c.availableOn("someos"))

	all := candidate{}
	assert.True(t, all.availableOn("linux"))

	// current candidates are pure Go; every platform gets the full set
	reg := newRegistryFor("plan9")
	assert.Equal(t, NewRegistry().Supported(), reg.Supported())
}

func TestRasterizeDimensions(t *testing.T) {
	m := testMatrix(t)
	opts := config.DefaultEncodeOptions()
	opts.ModuleSize = 3

	img, err := Rasterize(m, opts)
	require.NoError(t, err)
	expected := (m.Size() + 2*quietZoneModules) * 3
	assert.Equal(t, expected, img.Bounds().Dx())
	assert.Equal(t, expected, img.Bounds().Dy())

	opts.NoPadding = true
	img, err = Rasterize(m, opts)
	require.NoError(t, err)
	assert.Equal(t, m.Size()*3, img.Bounds().Dx())
}

func TestRasterizeQuietZoneUsesBackground(t *testing.T) {
	m := testMatrix(t)
	opts := config.DefaultEncodeOptions()
	opts.Background, _ = config.ParseColor("#336699")

	img, err := Rasterize(m, opts)
	require.NoError(t, err)
	r, g, b, _ := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(0x33), r>>8)
	assert.Equal(t, uint32(0x66), g>>8)
	assert.Equal(t, uint32(0x99), b>>8)
}

func TestPNGRendererProducesDecodableImage(t *testing.T) {
	m := testMatrix(t)
	reg := NewRegistry()
	renderer, err := reg.Lookup(".png")
	require.NoError(t, err)

	data, err := renderer.Render(m, config.DefaultEncodeOptions())
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Positive(t, img.Bounds().Dx())
}

func TestRasterFormatsNonEmpty(t *testing.T) {
	m := testMatrix(t)
	reg := NewRegistry()
	for _, ext := range []string{".bmp", ".gif", ".tif", ".pdf"} {
		t.Run(ext, func(t *testing.T) {
			renderer, err := reg.Lookup(ext)
			require.NoError(t, err)
			data, err := renderer.Render(m, config.DefaultEncodeOptions())
			require.NoError(t, err)
			assert.NotEmpty(t, data)
		})
	}
}

func TestTextRenderer(t *testing.T) {
	m := testMatrix(t)
	reg := NewRegistry()
	renderer, err := reg.Lookup(".txt")
	require.NoError(t, err)

	opts := config.DefaultEncodeOptions()
	data, err := renderer.Render(m, opts)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	assert.Len(t, lines, m.Size()+2*quietZoneModules)
	// the quiet zone rows contain no dark cells
	assert.NotContains(t, lines[0], "█")

	opts.NoPadding = true
	data, err = renderer.Render(m, opts)
	require.NoError(t, err)
	lines = strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	assert.Len(t, lines, m.Size())
}

func TestSVGRenderer(t *testing.T) {
	m := testMatrix(t)
	reg := NewRegistry()
	renderer, err := reg.Lookup(".svg")
	require.NoError(t, err)

	opts := config.DefaultEncodeOptions()
	opts.Dark, _ = config.ParseColor("#112233")
	data, err := renderer.Render(m, opts)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "fill:#112233")
	assert.Contains(t, out, "</svg>")
}
