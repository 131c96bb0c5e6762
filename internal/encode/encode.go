// Package encode orchestrates one QR encode call: validate options,
// obtain the symbol matrix, compute icon/error-correction diagnostics,
// and dispatch to the renderer for the requested output format.
package encode

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/qrforge/qrforge/internal/config"
	"github.com/qrforge/qrforge/internal/matrix"
	"github.com/qrforge/qrforge/internal/render"
)

// Severity grades an advisory diagnostic. Diagnostics never abort an
// encode; both tiers are informational.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "ERROR"
	default:
		return "WARNING"
	}
}

// Diagnostic is an advisory message about the encode, currently always
// concerning the icon's consumption of the error-correction budget.
type Diagnostic struct {
	Severity Severity
	Message  string
}

// Encoder runs the encode pipeline against a renderer registry.
type Encoder struct {
	registry *render.Registry
}

// New returns an Encoder backed by the platform's default registry.
func New() *Encoder {
	return &Encoder{registry: render.DefaultRegistry()}
}

// NewWithRegistry returns an Encoder using the given registry.
func NewWithRegistry(reg *render.Registry) *Encoder {
	return &Encoder{registry: reg}
}

// Encode renders text as a QR symbol in the format named by extension or
// token ("png", ".svg", ...). Validation and renderer lookup both happen
// before the symbol provider is invoked, so no external work runs for a
// request that cannot complete.
func (e *Encoder) Encode(text, format string, opts config.EncodeOptions) ([]byte, []Diagnostic, error) {
	if err := opts.Validate(); err != nil {
		return nil, nil, err
	}
	renderer, err := e.registry.Lookup(format)
	if err != nil {
		return nil, nil, err
	}

	m, err := matrix.Generate(text, opts.Level)
	if err != nil {
		return nil, nil, err
	}

	diags := diagnose(opts)

	data, err := renderer.Render(m, opts)
	if err != nil {
		return nil, diags, err
	}
	return data, diags, nil
}

// EncodeToFile encodes to the format implied by the path's extension and
// writes the result. The file is only opened after rendering succeeds, so
// a failed encode never creates or truncates it; a successful write
// replaces any previous content entirely.
func (e *Encoder) EncodeToFile(text, path string, opts config.EncodeOptions) ([]Diagnostic, error) {
	data, diags, err := e.Encode(text, filepath.Ext(path), opts)
	if err != nil {
		return diags, err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // G306: rendered output is not sensitive
		return diags, err
	}
	return diags, nil
}

// diagnose reports how the configured icon relates to the symbol's
// error-correction budget. Advisory only.
func diagnose(opts config.EncodeOptions) []Diagnostic {
	if opts.IconPath == "" {
		return nil
	}
	recovery := opts.Level.RecoveryPercent()
	margin := opts.RecoveryMargin()
	switch {
	case opts.IconSizePercent > recovery:
		return []Diagnostic{{
			Severity: SeverityError,
			Message: fmt.Sprintf(
				"icon obscures %d%% of the symbol but %s error correction recovers at most %d%%; the code may not scan",
				opts.IconSizePercent, opts.Level, recovery),
		}}
	case margin < 5:
		return []Diagnostic{{
			Severity: SeverityWarning,
			Message: fmt.Sprintf(
				"icon leaves only %d percentage point(s) of error-correction margin; consider a smaller icon or a higher level",
				margin),
		}}
	default:
		return nil
	}
}
