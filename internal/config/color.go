package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// namedColors covers the names the CLI accepts for color flags.
var namedColors = map[string]color.RGBA{
	"black":   {0x00, 0x00, 0x00, 0xff},
	"white":   {0xff, 0xff, 0xff, 0xff},
	"red":     {0xff, 0x00, 0x00, 0xff},
	"green":   {0x00, 0x80, 0x00, 0xff},
	"blue":    {0x00, 0x00, 0xff, 0xff},
	"yellow":  {0xff, 0xff, 0x00, 0xff},
	"cyan":    {0x00, 0xff, 0xff, 0xff},
	"magenta": {0xff, 0x00, 0xff, 0xff},
	"gray":    {0x80, 0x80, 0x80, 0xff},
	"orange":  {0xff, 0xa5, 0x00, 0xff},
}

// ParseColor accepts a named color or a hex literal in #RGB, #RRGGBB or
// #RRGGBBAA form and returns the corresponding RGBA value.
func ParseColor(s string) (color.RGBA, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[name]; ok {
		return c, nil
	}
	hex := strings.TrimPrefix(name, "#")
	if hex == name {
		return color.RGBA{}, fmt.Errorf("unknown color %q (use a name or #RRGGBB)", s)
	}

	var r, g, b, a uint64
	var err error
	switch len(hex) {
	case 3:
		if r, g, b, err = parseHexTriplet(hex, 1); err != nil {
			return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		// expand each nibble: "abc" means "aabbcc"
		r, g, b = r*0x11, g*0x11, b*0x11
		a = 0xff
	case 6:
		if r, g, b, err = parseHexTriplet(hex, 2); err != nil {
			return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		a = 0xff
	case 8:
		if r, g, b, err = parseHexTriplet(hex, 2); err != nil {
			return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		if a, err = strconv.ParseUint(hex[6:8], 16, 8); err != nil {
			return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
	default:
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: expected 3, 6 or 8 hex digits", s)
	}

	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}, nil
}

func parseHexTriplet(hex string, width int) (r, g, b uint64, err error) {
	if r, err = strconv.ParseUint(hex[0:width], 16, 8); err != nil {
		return 0, 0, 0, err
	}
	if g, err = strconv.ParseUint(hex[width:2*width], 16, 8); err != nil {
		return 0, 0, 0, err
	}
	b, err = strconv.ParseUint(hex[2*width:3*width], 16, 8)
	return r, g, b, err
}
