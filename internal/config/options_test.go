package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestECCLevelRecoveryPercent(t *testing.T) {
	tests := []struct {
		level    ECCLevel
		expected int
	}{
		{LevelLow, 7},
		{LevelMedium, 15},
		{LevelQuartile, 25},
		{LevelHigh, 30},
		{ECCLevel(99), 0},
	}
	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.level.RecoveryPercent())
		})
	}
}

func TestParseECCLevel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ECCLevel
		wantErr bool
	}{
		{"long low", "low", LevelLow, false},
		{"short medium", "m", LevelMedium, false},
		{"mixed case quartile", "Quartile", LevelQuartile, false},
		{"short high upper", "H", LevelHigh, false},
		{"unknown", "extreme", 0, true},
		{"empty", "", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseECCLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				var verr *ValidationError
				assert.True(t, errors.As(err, &verr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeOptionsValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(o *EncodeOptions)
		wantField string
	}{
		{"defaults are valid", func(o *EncodeOptions) {}, ""},
		{"module size zero", func(o *EncodeOptions) { o.ModuleSize = 0 }, "module-size"},
		{"module size negative", func(o *EncodeOptions) { o.ModuleSize = -3 }, "module-size"},
		{"icon size zero", func(o *EncodeOptions) { o.IconSizePercent = 0 }, "icon-size-percent"},
		{"icon size 100", func(o *EncodeOptions) { o.IconSizePercent = 100 }, "icon-size-percent"},
		{"icon size negative", func(o *EncodeOptions) { o.IconSizePercent = -1 }, "icon-size-percent"},
		{"icon size upper bound ok", func(o *EncodeOptions) { o.IconSizePercent = 99 }, ""},
		{"icon size lower bound ok", func(o *EncodeOptions) { o.IconSizePercent = 1 }, ""},
		{"border zero", func(o *EncodeOptions) { o.IconBorderWidth = 0 }, "icon-border-width"},
		{"nil dark color", func(o *EncodeOptions) { o.Dark = nil }, "colors"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultEncodeOptions()
			tt.mutate(&opts)
			err := opts.Validate()
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestRecoveryMargin(t *testing.T) {
	opts := DefaultEncodeOptions()
	opts.Level = LevelHigh
	opts.IconSizePercent = 25
	assert.Equal(t, 5, opts.RecoveryMargin())

	opts.Level = LevelLow
	opts.IconSizePercent = 50
	assert.Equal(t, -43, opts.RecoveryMargin())
}
