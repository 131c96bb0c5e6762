package decode

import (
	"bytes"
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"unicode/utf16"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// Recognizer is the native recognition primitive boundary. Both methods
// fill out with the decoded text as UTF-16 code units and return:
//
//   - a negative status: the decoder failed unexpectedly
//   - zero: no code was found (a normal outcome)
//   - a positive count n: the text is n units long; out holds the first
//     n units only when n fits, otherwise out is untouched and the
//     caller retries with a buffer of exactly n units
//
// I/O errors reading a file path are returned unmodified through err and
// are distinct from the negative status.
type Recognizer interface {
	DecodeFromFile(path string, out []uint16) (int, error)
	DecodeFromImage(data []byte, out []uint16) (int, error)
}

// statusFailed is the sentinel for unexpected decoder failures.
const statusFailed = -1

// zxingRecognizer reads QR symbols with the gozxing port of ZXing.
type zxingRecognizer struct{}

// NewRecognizer returns the production recognition primitive.
func NewRecognizer() Recognizer { return &zxingRecognizer{} }

func (z *zxingRecognizer) DecodeFromFile(path string, out []uint16) (int, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: reading a user-provided image path is the operation
	if err != nil {
		return 0, err
	}
	return z.DecodeFromImage(data, out)
}

func (z *zxingRecognizer) DecodeFromImage(data []byte, out []uint16) (int, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		slog.Debug("recognizer: image decode failed", "error", err)
		return statusFailed, nil
	}

	source := gozxing.NewLuminanceSourceFromImage(img)
	bitmap, err := gozxing.NewBinaryBitmap(gozxing.NewHybridBinarizer(source))
	if err != nil {
		slog.Debug("recognizer: binarization failed", "error", err)
		return statusFailed, nil
	}

	// A fresh reader per call keeps the primitive safe for concurrent use.
	reader := qrcode.NewQRCodeReader()
	hints := map[gozxing.DecodeHintType]interface{}{
		gozxing.DecodeHintType_TRY_HARDER: true,
	}
	result, err := reader.Decode(bitmap, hints)
	if err != nil {
		var nfe gozxing.NotFoundException
		if errors.As(err, &nfe) {
			return 0, nil
		}
		slog.Debug("recognizer: symbol read failed", "error", err)
		return statusFailed, nil
	}

	units := utf16.Encode([]rune(result.GetText()))
	if len(units) <= len(out) {
		copy(out, units)
	}
	return len(units), nil
}
