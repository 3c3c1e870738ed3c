package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "test-key")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.Gemini.APIKey)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "gemini-1.5-flash", cfg.Gemini.Model)
	assert.Equal(t, "https://generativelanguage.googleapis.com", cfg.Gemini.BaseURL)
	assert.Equal(t, "https://loremflickr.com", cfg.Image.FallbackBaseURL)
	assert.Equal(t, 640, cfg.Image.Width)
	assert.Equal(t, 420, cfg.Image.Height)
	assert.Equal(t, "indian paneer", cfg.Image.QuerySuffix)
	assert.Empty(t, cfg.Image.PexelsAPIKey)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "test-key")
	t.Setenv("PEXELS_API_KEY", "pexels-key")
	t.Setenv("PORT", "8081")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "pexels-key", cfg.Image.PexelsAPIKey)
	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfigRequiresGoogleKey(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GOOGLE_API_KEY")
}

func TestMaskAPIKey(t *testing.T) {
	assert.Equal(t, "****", MaskAPIKey("short"))
	assert.Equal(t, "abcd...wxyz", MaskAPIKey("abcdefghijklmnopqrstuvwxyz"))
}
