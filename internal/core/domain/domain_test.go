package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildforge/forge/internal/core/domain"
)

func TestParseTarget(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   domain.Target
		wantOK bool
	}{
		{name: "lowercase", input: "android", want: domain.TargetAndroid, wantOK: true},
		{name: "uppercase", input: "ANDROID", want: domain.TargetAndroid, wantOK: true},
		{name: "mixed case", input: "WindowsDesktop", want: domain.TargetWindowsDesktop, wantOK: true},
		{name: "active sentinel", input: "active", want: domain.TargetActive, wantOK: true},
		{name: "ios", input: "iOS", want: domain.TargetIOS, wantOK: true},
		{name: "unknown", input: "playstation7", wantOK: false},
		{name: "empty", input: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := domain.ParseTarget(tt.input)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestTargetNames_RoundTrip(t *testing.T) {
	names := domain.TargetNames()
	require.NotEmpty(t, names)

	for _, name := range names {
		got, ok := domain.ParseTarget(name)
		require.True(t, ok, "name %q should parse", name)
		assert.Equal(t, name, got.String())
	}
}

func TestTarget_FolderProducing(t *testing.T) {
	assert.True(t, domain.TargetIOS.FolderProducing())
	assert.False(t, domain.TargetAndroid.FolderProducing())
	assert.False(t, domain.TargetWindowsDesktop.FolderProducing())
	assert.False(t, domain.TargetActive.FolderProducing())
}

func TestParseStrippingLevel(t *testing.T) {
	for _, name := range []string{"disabled", "low", "medium", "high"} {
		level, ok := domain.ParseStrippingLevel(name)
		require.True(t, ok)
		assert.Equal(t, name, level.String())
	}

	_, ok := domain.ParseStrippingLevel("maximum")
	assert.False(t, ok)
}
