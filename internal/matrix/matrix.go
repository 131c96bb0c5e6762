// Package matrix wraps QR symbol generation behind a small provider
// boundary. The error-correction mathematics live entirely in the
// underlying library; callers only see the resulting module grid.
package matrix

import (
	"fmt"

	qrcodegen "github.com/skip2/go-qrcode"

	"github.com/qrforge/qrforge/internal/config"
)

// Matrix is an immutable square grid of modules. True means a dark module.
// It never includes the quiet zone; renderers add that themselves.
type Matrix struct {
	modules [][]bool
	size    int
}

// Size returns the number of modules along one edge.
func (m Matrix) Size() int { return m.size }

// Dark reports whether the module at (x, y) is dark. Coordinates outside
// the grid are light.
func (m Matrix) Dark(x, y int) bool {
	if x < 0 || y < 0 || x >= m.size || y >= m.size {
		return false
	}
	return m.modules[y][x]
}

// FromModules builds a Matrix from a row-major module grid. Rows must all
// have the same length as the row count.
func FromModules(modules [][]bool) (Matrix, error) {
	n := len(modules)
	for _, row := range modules {
		if len(row) != n {
			return Matrix{}, fmt.Errorf("matrix rows must form a square grid: got row of %d in a %d-row grid", len(row), n)
		}
	}
	return Matrix{modules: modules, size: n}, nil
}

// Generate produces the symbol matrix for text at the given
// error-correction level.
func Generate(text string, level config.ECCLevel) (Matrix, error) {
	code, err := qrcodegen.New(text, recoveryLevel(level))
	if err != nil {
		return Matrix{}, fmt.Errorf("symbol generation failed: %w", err)
	}
	code.DisableBorder = true
	return FromModules(code.Bitmap())
}

func recoveryLevel(level config.ECCLevel) qrcodegen.RecoveryLevel {
	switch level {
	case config.LevelLow:
		return qrcodegen.Low
	case config.LevelQuartile:
		return qrcodegen.High
	case config.LevelHigh:
		return qrcodegen.Highest
	default:
		return qrcodegen.Medium
	}
}
