package testutil

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolidImage(t *testing.T) {
	img := SolidImage(8, 6, color.RGBA{1, 2, 3, 0xff})
	assert.Equal(t, 8, img.Bounds().Dx())
	assert.Equal(t, 6, img.Bounds().Dy())
	r, g, b, _ := img.At(7, 5).RGBA()
	assert.Equal(t, uint32(1), r>>8)
	assert.Equal(t, uint32(2), g>>8)
	assert.Equal(t, uint32(3), b>>8)
}

func TestWritePNGRoundTrips(t *testing.T) {
	path := WritePNG(t, SolidImage(4, 4, color.Black))
	assert.FileExists(t, path)
}

func TestBlankPNGDecodes(t *testing.T) {
	data := BlankPNG(t, 10, 10)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 10, img.Bounds().Dx())
}
