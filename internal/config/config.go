package config

import (
	"fmt"
	"os"
)

type Config struct {
	Port string

	// APIKey is the completion-service credential. Required unless
	// UseMockLLM is set; missing it is a startup failure, never a
	// per-call one.
	APIKey    string
	ModelName string

	UseMockLLM bool
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBoolEnv(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v == "1" || v == "true" || v == "TRUE"
}

// Load reads all env vars and builds the config.
func Load() (*Config, error) {
	cfg := &Config{
		Port:       getEnv("DEBATER_PORT", "8080"),
		APIKey:     getEnv("GEMINI_API_KEY", ""),
		ModelName:  getEnv("DEBATER_MODEL_NAME", "gemini-2.5-flash"),
		UseMockLLM: getBoolEnv("DEBATER_USE_MOCK_LLM", false),
	}

	if !cfg.UseMockLLM && cfg.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set (or set DEBATER_USE_MOCK_LLM=1)")
	}

	return cfg, nil
}
