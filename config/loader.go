package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

const (
	// DefaultConfigPath is used when PILOT_CONFIG is not set.
	DefaultConfigPath = "pilot.json"

	DefaultPort            = 8620
	DefaultModel           = "gpt-4o-mini"
	DefaultSessionTTLHours = 720 // 30 days
)

// Load reads the service configuration from PILOT_CONFIG (or ./pilot.json).
// A missing file is not an error: defaults are returned so the service can
// start from environment variables alone.
func Load() (*Config, error) {
	path := os.Getenv("PILOT_CONFIG")
	if path == "" {
		path = DefaultConfigPath
	}

	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			applyEnv(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	applyDefaults(cfg)
	applyEnv(cfg)
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{Port: DefaultPort},
		LLM:    LLMConfig{Model: DefaultModel},
		Redis:  RedisConfig{SessionTTLHours: DefaultSessionTTLHours},
	}
}

// applyDefaults backfills zero values left by a partial config file.
func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultPort
	}
	if cfg.LLM.Model == "" {
		cfg.LLM.Model = DefaultModel
	}
	if cfg.Redis.SessionTTLHours == 0 {
		cfg.Redis.SessionTTLHours = DefaultSessionTTLHours
	}
}

// applyEnv lets the environment override credentials so the API key never
// has to live in the config file.
func applyEnv(cfg *Config) {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		cfg.LLM.APIKey = key
	}
	if url := os.Getenv("OPENAI_BASE_URL"); url != "" && cfg.LLM.BaseURL == "" {
		cfg.LLM.BaseURL = url
	}
}
