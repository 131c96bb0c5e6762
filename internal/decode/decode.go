// Package decode recovers text from images containing a QR symbol. The
// text length is unknown until the recognition primitive runs, so the
// boundary negotiates buffer space in at most two calls: a fixed scratch
// buffer first, then a pooled buffer of the exact reported size.
package decode

import (
	"fmt"
	"unicode/utf16"

	"github.com/qrforge/qrforge/internal/mempool"
)

// scratchUnits sizes the first-call buffer. It covers the overwhelming
// majority of real-world payloads without touching the pool.
const scratchUnits = 1024

// NativeDecodeError reports an unexpected failure inside the recognition
// primitive. It is never used for the "no code found" outcome.
type NativeDecodeError struct {
	Status int
}

func (e *NativeDecodeError) Error() string {
	return fmt.Sprintf("native decoder failed with status %d", e.Status)
}

// CountMismatchError reports a primitive that asked for one buffer size
// on the first call and then claimed a larger text on the second. The
// protocol defines the second call as final, so this is a contract
// violation by the primitive, not a retryable condition.
type CountMismatchError struct {
	Reported int
	Provided int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("decoder reported %d units after being given the %d it asked for", e.Reported, e.Provided)
}

// Decoder wraps a Recognizer with the buffer-negotiation protocol.
type Decoder struct {
	rec Recognizer
}

// New returns a Decoder backed by the production recognizer.
func New() *Decoder { return &Decoder{rec: NewRecognizer()} }

// NewWithRecognizer returns a Decoder over the given primitive.
func NewWithRecognizer(rec Recognizer) *Decoder { return &Decoder{rec: rec} }

// DecodeFile reads the image at path and returns the decoded text.
// found reports whether a code was present; its absence is not an error.
func (d *Decoder) DecodeFile(path string) (text string, found bool, err error) {
	return d.negotiate(func(out []uint16) (int, error) {
		return d.rec.DecodeFromFile(path, out)
	})
}

// DecodeImage decodes a code from in-memory image bytes.
func (d *Decoder) DecodeImage(data []byte) (text string, found bool, err error) {
	return d.negotiate(func(out []uint16) (int, error) {
		return d.rec.DecodeFromImage(data, out)
	})
}

// negotiate runs the two-phase protocol. The primitive reports the exact
// unit count on the first call, so the second call with an exact-size
// buffer is always sufficient; no third call is ever made.
func (d *Decoder) negotiate(call func(out []uint16) (int, error)) (string, bool, error) {
	var scratch [scratchUnits]uint16
	n, err := call(scratch[:])
	switch {
	case err != nil:
		return "", false, err
	case n < 0:
		return "", false, &NativeDecodeError{Status: n}
	case n == 0:
		return "", false, nil
	case n <= scratchUnits:
		return string(utf16.Decode(scratch[:n])), true, nil
	}

	// Scratch was too small; rent exactly n units and call again. The
	// pool scrubs the buffer on return so the decoded text cannot leak
	// to the next borrower.
	buf := mempool.GetUint16(n)
	defer mempool.PutUint16(buf)

	n2, err := call(buf)
	switch {
	case err != nil:
		return "", false, err
	case n2 < 0:
		return "", false, &NativeDecodeError{Status: n2}
	case n2 == 0:
		return "", false, nil
	case n2 > len(buf):
		return "", false, &CountMismatchError{Reported: n2, Provided: len(buf)}
	}
	return string(utf16.Decode(buf[:n2])), true, nil
}
