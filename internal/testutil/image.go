// Package testutil provides image fixtures shared by the encode, render
// and decode tests.
package testutil

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// SolidImage returns a w by h image filled with c.
func SolidImage(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// WritePNG encodes img into a fresh temp file and returns its path.
func WritePNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

// IconPNG writes a small solid-color icon suitable for overlay tests.
func IconPNG(t *testing.T, c color.Color) string {
	t.Helper()
	return WritePNG(t, SolidImage(32, 32, c))
}

// BlankPNG returns PNG bytes of a plain white image, i.e. an image that
// contains no code.
func BlankPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, SolidImage(w, h, color.White)))
	return buf.Bytes()
}
