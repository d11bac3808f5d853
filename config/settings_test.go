package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKernelSettings_Validate(t *testing.T) {
	tests := []struct {
		name           string
		settings       KernelSettings
		expectedErrors int
		description    string
	}{
		{
			name:           "defaults are valid",
			settings:       DefaultKernelSettings(),
			expectedErrors: 0,
			description:    "Default settings should validate cleanly",
		},
		{
			name:           "empty modes are valid before defaults",
			settings:       KernelSettings{Threshold: 2},
			expectedErrors: 0,
			description:    "Empty modes fall back to defaults",
		},
		{
			name:           "substring df with documents filter",
			settings:       KernelSettings{Threshold: 2, FilterMode: FilterModeDocuments, DFMode: DFModeSubstring, Tokenizer: "BPE"},
			expectedErrors: 0,
			description:    "Alternative modes and case-insensitive tokenizer names are accepted",
		},
		{
			name:           "negative threshold fails",
			settings:       KernelSettings{Threshold: -1},
			expectedErrors: 1,
			description:    "Threshold must not be negative",
		},
		{
			name:           "every field invalid",
			settings:       KernelSettings{Threshold: -5, FilterMode: "tokens", DFMode: "regex", Tokenizer: "nltk"},
			expectedErrors: 4,
			description:    "Each invalid field produces its own message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errors := tt.settings.Validate()
			assert.Len(t, errors, tt.expectedErrors, tt.description)
		})
	}
}

func TestKernelSettings_ApplyDefaults(t *testing.T) {
	settings := KernelSettings{Threshold: 2}
	settings.ApplyDefaults()

	assert.Equal(t, 2, settings.Threshold)
	assert.Equal(t, FilterModeOccurrences, settings.FilterMode)
	assert.Equal(t, DFModeToken, settings.DFMode)
	assert.Equal(t, TokenizerWord, settings.Tokenizer)
	require.NotNil(t, settings.Lowercase)
	assert.True(t, *settings.Lowercase)

	lowercase := false
	custom := KernelSettings{FilterMode: FilterModeDocuments, Lowercase: &lowercase}
	custom.ApplyDefaults()
	assert.Equal(t, FilterModeDocuments, custom.FilterMode)
	assert.False(t, custom.LowercaseEnabled())
}

func TestDefaultKernelSettings(t *testing.T) {
	settings := DefaultKernelSettings()
	assert.Equal(t, DefaultThreshold, settings.Threshold)
	assert.False(t, settings.Normalize)
	assert.True(t, settings.LowercaseEnabled())
}

func TestKernelSettings_Clone(t *testing.T) {
	original := DefaultKernelSettings()
	clone := original.Clone()

	*clone.Lowercase = false
	assert.True(t, original.LowercaseEnabled(), "Clone must not share the Lowercase pointer")
	assert.False(t, clone.LowercaseEnabled())
}

func TestKernelSettings_LowercaseEnabled(t *testing.T) {
	lowercase := false
	tests := []struct {
		name     string
		settings KernelSettings
		want     bool
	}{
		{"unset defaults to true", KernelSettings{}, true},
		{"explicit false", KernelSettings{Lowercase: &lowercase}, false},
		{"defaults", DefaultKernelSettings(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.settings.LowercaseEnabled())
		})
	}

	// Callable directly on returned values, not only on variables.
	assert.True(t, DefaultKernelSettings().LowercaseEnabled())
	assert.False(t, KernelSettings{Lowercase: &lowercase}.LowercaseEnabled())
}
