package config

// Config is the full service configuration loaded from pilot.json.
type Config struct {
	Server ServerConfig `json:"server"`
	LLM    LLMConfig    `json:"llm"`
	Redis  RedisConfig  `json:"redis"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Port int `json:"port"`
}

// LLMConfig holds the chat-completion provider settings. APIKey may be left
// empty in the file and supplied via the OPENAI_API_KEY environment variable.
type LLMConfig struct {
	Model   string `json:"model"`
	APIKey  string `json:"api_key,omitempty"`
	BaseURL string `json:"base_url,omitempty"`
}

// RedisConfig holds the optional session cache settings. An empty Addr
// disables the Redis-backed cache and the service falls back to an
// in-memory store.
type RedisConfig struct {
	Addr            string `json:"addr"`
	DB              int    `json:"db"`
	SessionTTLHours int    `json:"session_ttl_hours"`
}

// GetSanitized returns the configuration as a map with credentials removed,
// safe to include in status reports.
func (c *Config) GetSanitized() map[string]interface{} {
	return map[string]interface{}{
		"server": map[string]interface{}{
			"port": c.Server.Port,
		},
		"llm": map[string]interface{}{
			"model":    c.LLM.Model,
			"base_url": c.LLM.BaseURL,
		},
		"redis": map[string]interface{}{
			"addr":              c.Redis.Addr,
			"db":                c.Redis.DB,
			"session_ttl_hours": c.Redis.SessionTTLHours,
		},
	}
}
