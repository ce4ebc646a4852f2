package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/debater-ai/debater-agent/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "gemini-2.5-flash", cfg.ModelName)
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.False(t, cfg.UseMockLLM)
}

func TestLoadMissingKeyFails(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("DEBATER_USE_MOCK_LLM", "")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestLoadMockModeNeedsNoKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("DEBATER_USE_MOCK_LLM", "1")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.True(t, cfg.UseMockLLM)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "k")
	t.Setenv("DEBATER_PORT", "9000")
	t.Setenv("DEBATER_MODEL_NAME", "gemini-2.5-pro")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "gemini-2.5-pro", cfg.ModelName)
}
