package config

import (
	"fmt"
	"image/color"
	"strings"
)

// ECCLevel selects the QR error-correction level, trading symbol size
// for tolerance to damaged or obscured modules.
type ECCLevel int

const (
	LevelLow      ECCLevel = iota // ~7% recoverable
	LevelMedium                   // ~15% recoverable
	LevelQuartile                 // ~25% recoverable
	LevelHigh                     // ~30% recoverable
)

// RecoveryPercent returns the nominal percentage of the symbol that can
// be lost and still be recovered at this level.
func (l ECCLevel) RecoveryPercent() int {
	switch l {
	case LevelLow:
		return 7
	case LevelMedium:
		return 15
	case LevelQuartile:
		return 25
	case LevelHigh:
		return 30
	default:
		return 0
	}
}

func (l ECCLevel) String() string {
	switch l {
	case LevelLow:
		return "low"
	case LevelMedium:
		return "medium"
	case LevelQuartile:
		return "quartile"
	case LevelHigh:
		return "high"
	default:
		return fmt.Sprintf("ECCLevel(%d)", int(l))
	}
}

// ParseECCLevel converts a user-supplied level name ("low"/"l", "medium"/"m",
// "quartile"/"q", "high"/"h") into an ECCLevel.
func ParseECCLevel(s string) (ECCLevel, error) {
	switch strings.ToLower(s) {
	case "low", "l":
		return LevelLow, nil
	case "medium", "m":
		return LevelMedium, nil
	case "quartile", "q":
		return LevelQuartile, nil
	case "high", "h":
		return LevelHigh, nil
	default:
		return 0, &ValidationError{Field: "ecc-level", Err: fmt.Errorf("unknown level %q (valid: low, medium, quartile, high)", s)}
	}
}

// EncodeOptions controls symbol generation and rendering for one encode call.
// Zero values are not usable; start from DefaultEncodeOptions.
type EncodeOptions struct {
	// Light and Dark are the module colors. Background fills the quiet zone
	// and any area outside the symbol.
	Light      color.Color
	Dark       color.Color
	Background color.Color

	// ModuleSize is the rendered size of one module in pixels. Minimum 1.
	ModuleSize int

	// NoPadding suppresses the quiet zone around the symbol.
	NoPadding bool

	// Level is the error-correction level used for symbol generation.
	Level ECCLevel

	// IconPath optionally names an image to overlay on the symbol center.
	IconPath string

	// IconSizePercent is the icon edge length as a percentage of the
	// rendered symbol edge. Valid range is 1 through 99.
	IconSizePercent int

	// IconBorderWidth is the solid border drawn around the icon, in pixels.
	// Minimum 1.
	IconBorderWidth int

	// IconBackground fills the box behind the icon and its border.
	// When nil, Light is used.
	IconBackground color.Color
}

// DefaultEncodeOptions returns options matching the CLI defaults:
// black-on-white modules, 10px modules, medium error correction, and a
// 15% icon budget should an icon be supplied.
func DefaultEncodeOptions() EncodeOptions {
	return EncodeOptions{
		Light:           color.White,
		Dark:            color.Black,
		Background:      color.White,
		ModuleSize:      10,
		Level:           LevelMedium,
		IconSizePercent: 15,
		IconBorderWidth: 2,
	}
}

// ValidationError reports a configuration invariant violation. It is
// always raised before any symbol generation or rendering work begins.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Validate checks the option invariants. Icon bounds are enforced whether
// or not an icon is configured so that bad values surface early.
func (o *EncodeOptions) Validate() error {
	if o.ModuleSize < 1 {
		return &ValidationError{Field: "module-size", Err: fmt.Errorf("%d is below the minimum of 1", o.ModuleSize)}
	}
	if o.IconSizePercent < 1 || o.IconSizePercent > 99 {
		return &ValidationError{Field: "icon-size-percent", Err: fmt.Errorf("%d is outside the valid range [1,99]", o.IconSizePercent)}
	}
	if o.IconBorderWidth < 1 {
		return &ValidationError{Field: "icon-border-width", Err: fmt.Errorf("%d is below the minimum of 1", o.IconBorderWidth)}
	}
	if o.Light == nil || o.Dark == nil || o.Background == nil {
		return &ValidationError{Field: "colors", Err: fmt.Errorf("light, dark and background colors must all be set")}
	}
	return nil
}

// RecoveryMargin returns the error-correction budget left after the icon
// obscures its share of the symbol: RecoveryPercent(level) minus
// IconSizePercent. Negative means the icon exceeds what the level can
// recover. Diagnostic only; it never blocks encoding.
func (o *EncodeOptions) RecoveryMargin() int {
	return o.Level.RecoveryPercent() - o.IconSizePercent
}
